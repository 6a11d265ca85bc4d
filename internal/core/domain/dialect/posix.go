package dialect

import "strings"

// posixAlias renders `alias name='command'`. Inside single quotes nothing is
// special except the quote itself, so each ' becomes '\'' (close, escaped
// quote, reopen).
func posixAlias(name, command string) string {
	return "alias " + name + "='" + strings.ReplaceAll(command, "'", `'\''`) + "'"
}

type bashDialect struct{}

func (bashDialect) Kind() Kind                            { return Bash }
func (bashDialect) Name() string                          { return "Bash" }
func (bashDialect) CommentPrefix() string                 { return "#" }
func (bashDialect) AliasLine(name, command string) string { return posixAlias(name, command) }
func (bashDialect) ConfigPathIn(home string) string       { return joinHome(home, ".bashrc") }

func (bashDialect) ReloadInstructions() string {
	return "Restart your terminal or run: source ~/.bashrc or exec bash"
}

type zshDialect struct{}

func (zshDialect) Kind() Kind                            { return Zsh }
func (zshDialect) Name() string                          { return "Zsh" }
func (zshDialect) CommentPrefix() string                 { return "#" }
func (zshDialect) AliasLine(name, command string) string { return posixAlias(name, command) }
func (zshDialect) ConfigPathIn(home string) string       { return joinHome(home, ".zshrc") }

func (zshDialect) ReloadInstructions() string {
	return "Restart your terminal or run: source ~/.zshrc"
}
