package errs

import "errors"

// Error kinds surfaced at the caller boundary. Concrete errors are marked with
// one of these so the handler layer can map them without knowing every sentinel.
var (
	ErrValidation            = errors.New("validation error")
	ErrRoomNotFound          = errors.New("room not found")
	ErrNotFound              = errors.New("reservation not found")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidState          = errors.New("invalid state")
	ErrDuplicatePending      = errors.New("duplicate pending reservation")
	ErrConflict              = errors.New("reservation conflict")
	ErrInternalBatchConflict = errors.New("internal batch conflict")
	ErrQuotaExceeded         = errors.New("daily quota exceeded")
)
