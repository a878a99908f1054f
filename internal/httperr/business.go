package httperr

import "errors"

// Business error codes crossing the repository/usecase boundary. Each maps
// to a single HTTP status at the handler layer.
const (
	CodeInvalidService   = "invalid_service"
	CodeDuplicateWindow  = "duplicate_window"
	CodeSlotTaken        = "slot_taken"
	CodeCapacityExceeded = "capacity_exceeded"
	CodeNotOwner         = "not_owner"
	CodeOnlyPending      = "only_pending"
	CodeOnlyCancel       = "only_cancel"
	CodeInvalidStatus    = "invalid_status"
	CodeBookingNotFound  = "booking_not_found"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
