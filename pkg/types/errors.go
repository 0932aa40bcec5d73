package types

import "errors"

var (
	ErrNeedNotFound     = errors.New("need request not found")
	ErrDonationNotFound = errors.New("donation not found")
	ErrStockNotFound    = errors.New("stock item not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrEventNotFound    = errors.New("event not found")

	// ErrBackwardTransition rejects moving a donation status against the
	// available -> matched -> delivered progression.
	ErrBackwardTransition = errors.New("donation status cannot move backward")
)
