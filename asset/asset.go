// Package asset describes the static files shipped with the navbar theme.
//
// A Bundle is a plain descriptor: where the files come from, where they are
// published, which of them are published at all. Copying files is left to
// the static file publisher of the host application.
package asset

import (
	"io/fs"
	"path"
	"strings"

	"github.com/moby/patternmatcher"
	"github.com/pkg/errors"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Bundle describes a set of css and js files.
type Bundle struct {
	// BasePath is the directory the files are published to.
	BasePath string
	// BaseURL is the url the published files are served from.
	BaseURL string
	// SourcePath is the original location of the files.
	SourcePath string

	CSS []string
	JS  []string

	// Only lists the patterns of files to publish. Empty publishes everything.
	Only []string

	// Source holds the files relative to SourcePath.
	Source fs.FS
}

// MinifiedTailwindDark is the bundle of the dark tailwind theme.
func MinifiedTailwindDark() Bundle {
	return Bundle{
		BasePath:   "@assets",
		BaseURL:    "@assetsUrl",
		SourcePath: "@npm/tailwindcss/dist",
		CSS:        []string{"tailwind-dark.min.css"},
		Only:       []string{"**tailwind-dark.min.css"},
		Source:     dist,
	}
}

// NavbarScript is the bundle with the toggleNavbar function used by the toggle button.
func NavbarScript() Bundle {
	return Bundle{
		BasePath:   "@assets",
		BaseURL:    "@assetsUrl",
		SourcePath: "@navbar/dist",
		JS:         []string{"navbar.js"},
		Only:       []string{"**navbar.js"},
		Source:     dist,
	}
}

// Filter compiles the Only patterns.
func (b Bundle) Filter() (*patternmatcher.PatternMatcher, error) {
	pm, err := patternmatcher.New(b.Only)
	if err != nil {
		return nil, errors.Wrap(err, "invalid publish filter")
	}

	return pm, nil
}

// Allowed reports whether name passes the publish filter.
func (b Bundle) Allowed(name string) (bool, error) {
	if len(b.Only) == 0 {
		return true, nil
	}

	pm, err := b.Filter()
	if err != nil {
		return false, err
	}

	ok, err := pm.MatchesOrParentMatches(name)
	if err != nil {
		return false, errors.Wrapf(err, "can't match %s", name)
	}

	return ok, nil
}

// Publishable lists all files of Source which pass the publish filter.
func (b Bundle) Publishable() ([]string, error) {
	if b.Source == nil {
		return nil, ErrNoSource
	}

	pm, err := b.Filter()
	if err != nil {
		return nil, err
	}

	var files []string

	err = fs.WalkDir(b.Source, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if len(b.Only) > 0 {
			ok, matchErr := pm.MatchesOrParentMatches(name)
			if matchErr != nil {
				return matchErr //nolint:wrapcheck
			}

			if !ok {
				return nil
			}
		}

		files = append(files, name)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't list bundle files")
	}

	return files, nil
}

// URLs returns the resolved urls of all css and js files.
func (b Bundle) URLs(aliases Aliases) []string {
	base := aliases.Resolve(b.BaseURL)

	out := make([]string, 0, len(b.CSS)+len(b.JS))
	for _, name := range append(append([]string(nil), b.CSS...), b.JS...) {
		out = append(out, path.Join(base, name))
	}

	return out
}

// Links renders the link and script tags of the bundle.
func (b Bundle) Links(aliases Aliases) g.Node {
	base := aliases.Resolve(b.BaseURL)

	nodes := make([]g.Node, 0, len(b.CSS)+len(b.JS))

	for _, name := range b.CSS {
		nodes = append(nodes, html.Link(html.Rel("stylesheet"), html.Href(path.Join(base, name))))
	}

	for _, name := range b.JS {
		nodes = append(nodes, html.Script(html.Src(path.Join(base, name))))
	}

	return g.Group(nodes)
}

// Aliases maps path aliases like "@assetsUrl" to real paths.
type Aliases map[string]string

// Resolve replaces a leading alias of p. Unknown aliases are returned unchanged.
func (a Aliases) Resolve(p string) string {
	if !strings.HasPrefix(p, "@") {
		return p
	}

	alias, rest, _ := strings.Cut(p, "/")

	target, ok := a[alias]
	if !ok {
		return p
	}

	if rest == "" {
		return target
	}

	return path.Join(target, rest)
}
