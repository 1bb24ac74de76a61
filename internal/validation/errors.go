package validation

import "errors"

var (
	ErrEmptyName         = errors.New("name is required")
	ErrNameTooLong       = errors.New("name exceeds maximum length")
	ErrEmptyEmail        = errors.New("email is required")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrEmailTooLong      = errors.New("email exceeds maximum length")
	ErrEmptyPassword     = errors.New("password is required")
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrPasswordTooLong   = errors.New("password exceeds maximum length")
	ErrEmptyOrder        = errors.New("items is required")
	ErrTooManyItems      = errors.New("order exceeds maximum number of items")
	ErrInvalidFranchise  = errors.New("franchiseId and storeId are required")
	ErrInvalidMenuItemID = errors.New("menuId must be positive")
	ErrEmptyTitle        = errors.New("title is required")
	ErrMenuTextTooLong   = errors.New("menu item field exceeds maximum length")
	ErrInvalidPrice      = errors.New("price must be a positive number")
)

// OrderValidationError collects per-item failures so the client can fix all
// of them in one round trip.
type OrderValidationError struct {
	Errors []IndexedError
}

type IndexedError struct {
	Index int
	Err   error
}

func (e *OrderValidationError) Error() string {
	return "order validation failed"
}
