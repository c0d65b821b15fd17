// Package assets embeds the game's definition files.
package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed data
var data embed.FS

// Data returns the embedded definition tree rooted at its data directory.
func Data() fs.FS {
	sub, err := fs.Sub(data, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Open returns the definition tree in dir, or the embedded one when dir is
// empty.
func Open(dir string) fs.FS {
	if dir == "" {
		return Data()
	}
	return os.DirFS(dir)
}
