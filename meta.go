package onlyargs

import (
	"fmt"
	"os"
)

// Meta holds the application identity used by help and version output.
// The parsing core never touches it; mains and generated help text do.
type Meta struct {
	Name        string
	Version     string
	Description string
}

// VersionLine returns "name vVERSION".
func (m Meta) VersionLine() string {
	return fmt.Sprintf("%s v%s", m.Name, m.Version)
}

// Header returns the version line followed by the description, suitable as
// the first lines of a help text.
func (m Meta) Header() string {
	if m.Description == "" {
		return m.VersionLine() + "\n"
	}
	return m.VersionLine() + "\n" + m.Description + "\n"
}

// ShowVersionAndExit prints the version line to stderr and exits with
// status 0.
func (m Meta) ShowVersionAndExit() {
	fmt.Fprintln(os.Stderr, m.VersionLine())
	os.Exit(0)
}

// ShowHelpAndExit prints a help text to stderr and exits with status 0.
func ShowHelpAndExit(help string) {
	fmt.Fprintln(os.Stderr, help)
	os.Exit(0)
}
