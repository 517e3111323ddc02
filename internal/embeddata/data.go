package embeddata

import (
	"embed"
	"io/fs"
)

//go:embed about.md
var embeddedFS embed.FS

// FS returns the embedded filesystem with access to about.md.
func FS() fs.FS {
	return embeddedFS
}

// ReadAboutMD returns the contents of about.md.
func ReadAboutMD() ([]byte, error) {
	return embeddedFS.ReadFile("about.md")
}
