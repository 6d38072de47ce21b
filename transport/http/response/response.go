package response

import (
	"net/http"

	"github.com/jmcelreavey/todo-li-app/shared/constant"
	"github.com/jmcelreavey/todo-li-app/shared/failure"
	"github.com/jmcelreavey/todo-li-app/transport/http/render"
)

// Redirect sends a 303 so the browser re-fetches the target with GET after a
// form post.
func Redirect(writer http.ResponseWriter, request *http.Request, location string) {
	http.Redirect(writer, request, location, http.StatusSeeOther)
}

// WithError renders the page matching the failure code: the 404 page for
// missing resources, the generic error page for everything else. Raw error
// text never reaches the browser; unclassified errors show a generic apology.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	if code == http.StatusNotFound {
		render.NotFound(writer)

		return
	}

	message := constant.ResponseErrorUnexpected
	if code < http.StatusInternalServerError {
		message = failure.GetMessage(err)
	}

	render.Error(writer, code, message)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	render.Error(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}
