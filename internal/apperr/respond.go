package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	Error *Error `json:"error"`
}

// Respond writes the {error:{name,message,details}} body for err.
//
// Unrecognized errors deliberately render as 404 so internals never leak to
// clients; this fallback is part of the wire contract.
func Respond(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Name: "Error", Message: err.Error()}
	}

	if e.Details == nil {
		e = &Error{
			Name:    e.Name,
			Message: e.Message,
			Details: RequestDetails{
				Method: c.Request.Method,
				URL:    c.Request.URL.Path,
			},
		}
	}

	c.JSON(statusOf(e.Name), envelope{Error: e})
}

func statusOf(name string) int {
	switch name {
	case NameValidation:
		return http.StatusBadRequest
	case NameAuthentication:
		return http.StatusUnauthorized
	case NameAuthorization:
		return http.StatusForbidden
	case NameNotFound:
		return http.StatusNotFound
	default:
		return http.StatusNotFound
	}
}
