package ui

import "github.com/fatih/color"

// General purpose colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	CodeColor    = color.New(color.FgWhite).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc()
)

// Alias colors
var (
	AliasNameColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	AliasCmdColor  = color.New(color.FgWhite).SprintFunc()
)

// Shell and file colors
var (
	ShellColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	PathColor  = color.New(color.FgBlue).SprintFunc()
)

var HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()

// DisableColors turns off ANSI output, e.g. for tests or --no-color.
func DisableColors() {
	color.NoColor = true
}
