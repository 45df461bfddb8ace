package asset

import (
	"embed"
	"errors"
	"io/fs"
)

var (
	//go:embed dist/*
	embeddedDist embed.FS

	// dist is embeddedDist without the dist prefix.
	dist = mustSub(embeddedDist, "dist")

	// ErrNoSource is returned if a bundle has no source file system.
	ErrNoSource = errors.New("bundle has no source file system")
)

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}

	return sub
}
