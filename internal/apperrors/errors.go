package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidAmount indicates a transaction amount that is absent, non-numeric or not positive.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInsufficientFunds indicates a withdrawal larger than the wallet balance,
// or a withdrawal against a wallet that does not exist yet.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrUnknownCurrency indicates a currency code that is neither registered nor
// resolvable through the external rate feed.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrRateFeedUnavailable indicates the external exchange-rate feed errored or
// timed out. Safe to retry; never affects wallet state.
var ErrRateFeedUnavailable = errors.New("exchange rate feed unavailable")

// ErrCommitFailed indicates the storage substrate failed during the atomic
// balance-update + transaction-append commit. The operation was rolled back in
// full; no partial writes survive.
var ErrCommitFailed = errors.New("commit failed")
