package apperr

import "errors"

// Error kinds understood by the dispatch layer.
const (
	NameValidation     = "ValidationError"
	NameAuthentication = "AuthenticationError"
	NameAuthorization  = "AuthorizationError"
	NameNotFound       = "NotFoundError"
)

type Error struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

func (e *Error) Error() string {
	return e.Message
}

// RequestDetails identifies the method and target of a failed request.
type RequestDetails struct {
	Method string `json:"method"`
	URL    string `json:"url"`
}

func Validation(message string, details any) *Error {
	return &Error{Name: NameValidation, Message: message, Details: details}
}

func Authentication(message string) *Error {
	return &Error{Name: NameAuthentication, Message: message}
}

func Authorization(message string) *Error {
	return &Error{Name: NameAuthorization, Message: message}
}

// NotFound carries no details; the dispatch layer fills in method and URL.
func NotFound() *Error {
	return &Error{Name: NameNotFound, Message: "Not found!"}
}

func Is(err error, name string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Name == name
	}
	return false
}
