package httperr

import (
	"net/http"

	"classroom-reservations/internal/pkg/errs"
	"classroom-reservations/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type ConflictDetail struct {
	RoomNumber string                  `json:"roomNumber,omitempty"`
	OnApproval bool                    `json:"onApproval"`
	Conflicts  []commands.ConflictSlot `json:"conflicts"`
}

type BatchConflictDetail struct {
	Items []int `json:"items"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a use case error onto its status code. Domain errors keep their
// message; anything unclassified is hidden behind a generic 500.
func Abort(c *gin.Context, err error) {
	status, detail := classify(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, detail)
}

func classify(err error) (int, any) {
	var conflict *commands.ConflictError
	if errs.As(err, &conflict) {
		return http.StatusConflict, ConflictDetail{
			RoomNumber: conflict.RoomNumber,
			OnApproval: conflict.OnApproval,
			Conflicts:  conflict.Conflicts,
		}
	}
	var batch *commands.BatchConflictError
	if errs.As(err, &batch) {
		return http.StatusConflict, BatchConflictDetail{Items: []int{batch.First, batch.Second}}
	}

	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, nil
	case errs.Is(err, errs.ErrRoomNotFound), errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, nil
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, nil
	case errs.Is(err, errs.ErrInvalidState),
		errs.Is(err, errs.ErrDuplicatePending),
		errs.Is(err, errs.ErrConflict),
		errs.Is(err, errs.ErrInternalBatchConflict):
		return http.StatusConflict, nil
	case errs.Is(err, errs.ErrQuotaExceeded):
		return http.StatusTooManyRequests, nil
	default:
		return http.StatusInternalServerError, nil
	}
}
