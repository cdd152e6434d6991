package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path of the route group.
	RootPath = "/"

	// APIPath is the prefix of the JSON API.
	APIPath = "/api"

	// ErrNilACFatalLogMsg is used if the app or cfg pointer is nil.
	ErrNilACFatalLogMsg = "app or cfg is nil"
)
