// Package assets embeds the default word list shipped with the binary.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt
var FS embed.FS

// WordList opens the embedded default word list.
func WordList() (fs.File, error) {
	return FS.Open("words.txt")
}
