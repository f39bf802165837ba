// Package nav is the navigation dispatcher boundary. Presenters hand it an
// opaque route token and move on; resolution, history and the fallback for
// unknown tokens all live here.
package nav

// Navigator accepts a route token and transitions the application to it.
// Calls are fire-and-forget: there is no result and no retry.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a plain function to the Navigator interface.
type NavigatorFunc func(route string)

// Navigate calls f(route).
func (f NavigatorFunc) Navigate(route string) {
	f(route)
}

// Recorder receives every dispatch the router handles.
type Recorder interface {
	SaveVisit(sessionID, token string, resolved bool) (int64, error)
}
