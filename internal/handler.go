package internal

// Handler declares routes on a router.
//
//	type Pages struct{ catalog *content.Catalog }
//
//	func (h *Pages) Routes(r internal.Router) {
//	    r.GET("/{lang}", h.home)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc handles a request. A non-nil error is passed to the
// ErrorHandler unless the response was already written.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned from handlers.
type ErrorHandler func(Context, error) error
