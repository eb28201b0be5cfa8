// Package assets embeds the default GLSL shader sources.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed shaders/*
var files embed.FS

// Shaders returns the embedded shader directory; file names are used as-is by scenes.
func Shaders() fs.FS {
	sub, err := fs.Sub(files, "shaders")
	if err != nil {
		panic(err)
	}
	return sub
}
