package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// ErrNilACIFatalLogMsg is used if app, cfg or items is nil.
	ErrNilACIFatalLogMsg = "app, cfg or items is nil"
)
