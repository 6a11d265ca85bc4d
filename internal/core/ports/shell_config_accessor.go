package ports

/*
ShellConfigAccessor reads and writes whole shell startup files. This is a
driven port implemented by a filesystem repository.
*/
type ShellConfigAccessor interface {
	/*
	   Read returns the file's content, or "" when the file does not exist.
	*/
	Read(path string) (string, error)

	/*
	   Write replaces the file with content in one step, creating parent
	   directories as needed. A failure leaves the previous file untouched.
	*/
	Write(path, content string) error
}
