package ports

// CmdRunner executes shell commands and returns captured output.
type CmdRunner interface {
	Run(cmd string, args ...string) (stdout string, stderr string, err error)
}

// FileReader exposes read access to file contents.
type FileReader interface {
	ReadFile(file string) []byte
}

// Globber expands filesystem patterns into matching paths.
type Globber interface {
	Glob(pattern string) ([]string, error)
}
