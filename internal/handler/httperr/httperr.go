package httperr

import (
	"net/http"

	"beauty-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Kind string

const (
	KindValidation       Kind = "VALIDATION"
	KindUnauthorized     Kind = "UNAUTHORIZED"
	KindPermissionDenied Kind = "PERMISSION_DENIED"
	KindNotFound         Kind = "NOT_FOUND"
	KindSlotTaken        Kind = "SLOT_TAKEN"
	KindConflict         Kind = "CONFLICT"
	KindRateLimited      Kind = "RATE_LIMITED"
	KindPersistence      Kind = "PERSISTENCE_FAILURE"
)

var errUnspecified = errs.New("unspecified http error")

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Kind    Kind   `json:"kind"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, kind Kind, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Kind = kind
	return resp
}

// AbortWithError derives the kind from the status; 409 defaults to CONFLICT.
// The original error is kept on the gin context for the request logger.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithKind(c, status, KindForStatus(status), err, msg, detail)
}

func AbortWithKind(c *gin.Context, status int, kind Kind, err error, msg string, detail any) {
	if err == nil {
		err = errs.Wrap(errUnspecified, msg)
	}

	resp := NewResponse(status, kind, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func KindForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindPermissionDenied
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusTooManyRequests:
		return KindRateLimited
	default:
		return KindPersistence
	}
}
