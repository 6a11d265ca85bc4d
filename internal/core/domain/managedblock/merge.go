package managedblock

import "strings"

// span is the byte range of a managed block, from the start of the begin
// marker's line to the end of the end marker's line (excluding its line
// terminator).
type span struct {
	start, end int
}

// Merge returns content with block in place of the existing managed block.
// When no begin/end pair is found, block is appended after one blank line.
//
// Content outside the block is preserved byte for byte, except that blank
// lines directly before the block collapse to at most one. Merge applied to
// its own output with the same block returns the same text.
func Merge(content, beginMarker, endMarker, block string) string {
	s, ok := findBlock(content, beginMarker, endMarker)
	if !ok {
		// Trailing blank lines collapse into the single separator line.
		return appendBlock(content, block)
	}

	before, after := content[:s.start], content[s.end:]

	var b strings.Builder
	b.Grow(len(content) + len(block))
	trimmed := strings.TrimRight(before, "\n")
	if trimmed != "" {
		b.WriteString(trimmed)
		b.WriteString("\n")
		if len(before)-len(trimmed) > 1 {
			b.WriteString("\n")
		}
	}
	b.WriteString(block)
	b.WriteString(after)
	return b.String()
}

func appendBlock(content, block string) string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return block + "\n"
	}
	return trimmed + "\n\n" + block + "\n"
}

// Extract returns the text of the managed block (markers included) if a
// begin/end pair is present.
func Extract(content, beginMarker, endMarker string) (string, bool) {
	s, ok := findBlock(content, beginMarker, endMarker)
	if !ok {
		return "", false
	}
	return content[s.start:s.end], true
}

// findBlock pairs the first end marker that has a begin marker somewhere
// before it with the nearest such begin marker. Duplicate begin marker lines
// directly above it are part of the block. A stray end marker above every
// begin marker is skipped, so a reversed pair reads as "not found".
func findBlock(content, beginMarker, endMarker string) (span, bool) {
	if beginMarker == "" || endMarker == "" {
		return span{}, false
	}
	offset := 0
	for {
		i := strings.Index(content[offset:], endMarker)
		if i < 0 {
			return span{}, false
		}
		endPos := offset + i
		if beginPos := strings.LastIndex(content[:endPos], beginMarker); beginPos >= 0 {
			start := lineStart(content, beginPos)
			for start > 0 {
				prev := lineStart(content, start-1)
				if strings.TrimSpace(content[prev:start]) != beginMarker {
					break
				}
				start = prev
			}
			return span{
				start: start,
				end:   lineEnd(content, endPos+len(endMarker)),
			}, true
		}
		offset = endPos + len(endMarker)
	}
}

func lineStart(content string, pos int) int {
	return strings.LastIndexByte(content[:pos], '\n') + 1
}

// lineEnd returns the index of the line terminator at or after pos ("\n" or
// the "\r\n" pair), or len(content) on the last line.
func lineEnd(content string, pos int) int {
	i := strings.IndexByte(content[pos:], '\n')
	if i < 0 {
		return len(content)
	}
	end := pos + i
	if end > pos && content[end-1] == '\r' {
		end--
	}
	return end
}
