// Package response defines the uniform JSON envelope returned by every
// endpoint and the typed error kinds that drive HTTP status selection.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
	KindInternal
)

func (k Kind) httpStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is the failure type returned by core logic. Controllers map its
// Kind to an HTTP status instead of matching on title strings.
type Error struct {
	Kind        Kind
	Title       string
	Description string
}

func (e *Error) Error() string { return e.Title }

func NewError(kind Kind, title, description string) *Error {
	return &Error{Kind: kind, Title: title, Description: description}
}

type Envelope struct {
	Success          bool   `json:"success"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	ExceptionMessage string `json:"exception_message,omitempty"`
	Content          any    `json:"content,omitempty"`
}

func OK(c *gin.Context, title string, content any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Title: title, Content: content})
}

func Created(c *gin.Context, title string, content any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Title: title, Content: content})
}

func Fail(c *gin.Context, kind Kind, title, description string) {
	c.JSON(kind.httpStatus(), Envelope{Success: false, Title: title, Description: description})
}

// FromError writes the envelope for any error coming out of core logic.
// Typed errors keep their kind; everything else is an unexpected failure.
func FromError(c *gin.Context, err error) {
	var appErr *Error
	if errors.As(err, &appErr) {
		Fail(c, appErr.Kind, appErr.Title, appErr.Description)
		return
	}
	c.JSON(http.StatusInternalServerError, Envelope{
		Success:          false,
		Title:            "Something went wrong",
		ExceptionMessage: err.Error(),
	})
}
