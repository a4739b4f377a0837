package httperr

import (
	"net/http"

	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/usecase/commands"
	"beauty-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type classification struct {
	status int
	kind   Kind
	msg    string
}

// Order matters: a marked validation error may also wrap a not-found sentinel.
func classify(err error) classification {
	switch {
	case errs.Is(err, commands.ErrSlotTaken):
		return classification{http.StatusConflict, KindSlotTaken, "Slot already taken"}
	case errs.Is(err, commands.ErrEmailTaken):
		return classification{http.StatusConflict, KindConflict, "Email already registered"}
	case errs.Is(err, commands.ErrInvalidCredentials):
		return classification{http.StatusUnauthorized, KindUnauthorized, "Invalid email or password"}
	case errs.Is(err, errs.ErrPermissionDenied):
		return classification{http.StatusForbidden, KindPermissionDenied, "Permission denied"}
	case errs.Is(err, errs.ErrDomainValidation):
		return classification{http.StatusBadRequest, KindValidation, validationMessage(err)}
	case errs.IsAny(err, commands.ErrAppointmentNotFound, queries.ErrServiceNotFound, queries.ErrUserNotFound):
		return classification{http.StatusNotFound, KindNotFound, "Not found"}
	default:
		return classification{http.StatusInternalServerError, KindPersistence, "Internal server error"}
	}
}

// validationMessage surfaces the innermost cause, which is a user facing domain message.
func validationMessage(err error) string {
	if cause := errs.Cause(err); cause != nil {
		return cause.Error()
	}
	return "Invalid request"
}

// AbortWithUsecaseError maps a use case error onto the public error taxonomy.
func AbortWithUsecaseError(c *gin.Context, err error) {
	cl := classify(err)
	AbortWithKind(c, cl.status, cl.kind, err, cl.msg, nil)
}
