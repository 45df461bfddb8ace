package web

import (
	"embed"
	"io/fs"
	"path"
)

//go:embed templates/*
var embeddedTemplates embed.FS

// templateEmbedFS serves the 'templates' directory of an embed.FS.
type templateEmbedFS struct {
	content embed.FS
}

// Open opens the named file from the 'templates' directory.
func (e templateEmbedFS) Open(name string) (fs.File, error) {
	return e.content.Open(path.Join("templates", name))
}
