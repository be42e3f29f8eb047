// Package web provides the site's embedded assets: the seed content that
// the content store loads at startup and the static files served at /static/.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:static
var StaticFS embed.FS

//go:embed content
var contentFS embed.FS

// ContentFS returns the seed content rooted so that it holds the projects/
// and blog/ directories directly.
func ContentFS() fs.FS {
	sub, err := fs.Sub(contentFS, "content")
	if err != nil {
		// Only possible if the embed directive above is wrong.
		panic(err)
	}
	return sub
}
