package dialect

import "strings"

type powerShellDialect struct{}

func (powerShellDialect) Kind() Kind            { return PowerShell }
func (powerShellDialect) Name() string          { return "PowerShell" }
func (powerShellDialect) CommentPrefix() string { return "#" }

// AliasLine uses Set-Alias for bare command names. Set-Alias cannot carry
// arguments or pipelines, so anything with a space, pipe or semicolon is
// wrapped in a function instead.
func (powerShellDialect) AliasLine(name, command string) string {
	if strings.ContainsAny(command, " |;") {
		return "function " + name + " { " + command + " }"
	}
	return "Set-Alias -Name " + name + " -Value " + command
}

func (powerShellDialect) ConfigPathIn(home string) string {
	return joinHome(home, "Documents", "PowerShell", "Microsoft.PowerShell_profile.ps1")
}

func (powerShellDialect) ReloadInstructions() string {
	return "Restart PowerShell or run: . $PROFILE"
}
