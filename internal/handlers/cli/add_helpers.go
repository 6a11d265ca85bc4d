package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/akash-sh/akash/internal/core/domain/alias"
	"github.com/akash-sh/akash/internal/handlers/ui"
	"github.com/cockroachdb/errors"
)

// ErrFZFNotFound indicates that the fzf binary was not found in PATH.
var ErrFZFNotFound = errors.New("fzf binary not found in PATH")

// ErrFZFCancelled indicates that the user cancelled the fzf selection (e.g., by pressing Esc or Ctrl-C).
var ErrFZFCancelled = errors.New("fzf selection cancelled by user")

func fzfLine(a alias.Alias) string {
	return a.Name + "  ->  " + a.Command
}

func selectAliasesViaFZF(candidates []alias.Alias) ([]alias.Alias, error) {
	fzfPath, err := exec.LookPath("fzf")
	if err != nil {
		return nil, ErrFZFNotFound
	}
	if len(candidates) == 0 {
		return []alias.Alias{}, nil
	}

	var input bytes.Buffer
	byLine := make(map[string]alias.Alias, len(candidates))
	for _, c := range candidates {
		line := fzfLine(c)
		byLine[line] = c
		input.WriteString(line + "\n")
	}

	fzfCmd := exec.Command(fzfPath, "--multi", "--ansi", "--prompt", "Select aliases (TAB to multi-select, Enter to confirm) > ")
	fzfCmd.Stdin = &input
	var stdout, stderr bytes.Buffer
	fzfCmd.Stdout = &stdout
	fzfCmd.Stderr = &stderr

	if err := fzfCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// 130: Esc or Ctrl-C. 1 with no output: nothing selected.
			if exitErr.ExitCode() == 130 {
				return nil, ErrFZFCancelled
			}
			if exitErr.ExitCode() == 1 && strings.TrimSpace(stdout.String()) == "" {
				return []alias.Alias{}, nil
			}
		}
		return nil, errors.Wrapf(err, "fzf execution failed (stderr: %s)", strings.TrimSpace(stderr.String()))
	}

	var chosen []alias.Alias
	for _, line := range strings.Split(strings.TrimSpace(stdout.String()), "\n") {
		if a, ok := byLine[strings.TrimSpace(line)]; ok {
			chosen = append(chosen, a)
		}
	}
	return chosen, nil
}

func displayCandidatesForNumericSelection(w io.Writer, candidates []alias.Alias) {
	fmt.Fprintln(w, ui.PromptColor("Select aliases to add (e.g., 1,3-5, or 'all', 'none'):"))
	for i, c := range candidates {
		fmt.Fprintf(w, "%d. %s -> %s\n", i+1, ui.AliasNameColor(c.Name), ui.AliasCmdColor(c.Command))
	}
}

// parseNumericSelectionInput turns "1,3-5", "all" or "none" into unique
// 0-based indices in input order.
func parseNumericSelectionInput(input string, count int) ([]int, error) {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	switch trimmed {
	case "none", "":
		return []int{}, nil
	case "all":
		indices := make([]int, count)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	var selections []int
	for _, part := range strings.Split(trimmed, ",") {
		part = strings.TrimSpace(part)
		if startStr, endStr, isRange := strings.Cut(part, "-"); isRange {
			start, err1 := strconv.Atoi(strings.TrimSpace(startStr))
			end, err2 := strconv.Atoi(strings.TrimSpace(endStr))
			if err1 != nil || err2 != nil || start <= 0 || end < start || end > count {
				return nil, errors.Newf("invalid range or number (max %d): %s", count, part)
			}
			for i := start; i <= end; i++ {
				selections = append(selections, i-1)
			}
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num <= 0 || num > count {
			return nil, errors.Newf("invalid number (max %d): %s", count, part)
		}
		selections = append(selections, num-1)
	}

	seen := make(map[int]bool, len(selections))
	unique := make([]int, 0, len(selections))
	for _, idx := range selections {
		if !seen[idx] {
			seen[idx] = true
			unique = append(unique, idx)
		}
	}
	return unique, nil
}

func selectAliasesNumerically(r *bufio.Reader, w io.Writer, candidates []alias.Alias) ([]alias.Alias, error) {
	if len(candidates) == 0 {
		return []alias.Alias{}, nil
	}
	displayCandidatesForNumericSelection(w, candidates)
	fmt.Fprint(w, ui.PromptColor("Your choice: "))
	input, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return nil, errors.Wrap(err, "failed to read selection")
	}

	indices, err := parseNumericSelectionInput(input, len(candidates))
	if err != nil {
		return nil, errors.Wrap(err, "invalid selection input")
	}
	chosen := make([]alias.Alias, 0, len(indices))
	for _, idx := range indices {
		chosen = append(chosen, candidates[idx])
	}
	return chosen, nil
}

// confirm asks a yes/no question. Anything but y/yes is a no.
func confirm(r *bufio.Reader, w io.Writer, question string) (bool, error) {
	fmt.Fprint(w, ui.PromptColor(question+" (yes/no): "))
	input, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return false, errors.Wrap(err, "failed to read user input")
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "yes" || input == "y", nil
}
