package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// It is also returned when a booking exists but belongs to another user,
// so callers cannot probe for other users' bookings.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUserNotFound indicates that the referenced user does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidAmount indicates a non-positive amount passed to a wallet operation.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrInsufficientFunds indicates the wallet balance cannot cover the requested debit.
var ErrInsufficientFunds = errors.New("insufficient wallet balance")

// ErrAlreadyCancelled indicates a cancel attempt on a booking that is already cancelled.
// Cancellation is not idempotent; a repeat cancel is a hard error.
var ErrAlreadyCancelled = errors.New("booking already cancelled")

// ErrInvalidOrExpiredCode indicates the promo code does not exist or is past its validity date.
var ErrInvalidOrExpiredCode = errors.New("invalid or expired promo code")

// ErrCategoryMismatch indicates the promo code does not apply to the requested booking category.
var ErrCategoryMismatch = errors.New("promo code not applicable to this category")

// ErrBelowMinimumAmount indicates the amount is below the offer's minimum order value.
var ErrBelowMinimumAmount = errors.New("amount below minimum for promo code")
