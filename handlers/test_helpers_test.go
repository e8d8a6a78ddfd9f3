package handlers

import (
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent wraps a request/recorder pair in the event struct the
// router would hand to a handler, so tests can invoke handlers directly.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	event := new(core.RequestEvent)
	event.App = app
	event.Request = req
	event.Response = rec
	return event
}
