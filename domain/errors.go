package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")

	// request error
	ErrInvalidAddress      = errors.New("Invalid address")
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// ErrNotListed is returned when a listing is absent or already fully
	// consumed.
	ErrNotListed = errors.New("listing not found")
	// ErrTermsChanged is returned when the buyer's expected copy of the
	// listing terms no longer matches the stored listing.
	ErrTermsChanged = errors.New("listing terms changed")
	// ErrNotAuthorized is returned when the caller may not create, cancel
	// or mutate the listing or its whitelist.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrNotWhitelisted is returned when the buyer is not on the listing's
	// buyer whitelist.
	ErrNotWhitelisted = errors.New("buyer not whitelisted")
	// ErrStillValid is returned when cleanup is attempted on a listing
	// whose preconditions still hold.
	ErrStillValid = errors.New("listing still valid")
	// ErrInsufficientBalance is returned when the seller no longer owns or
	// holds enough of the listed asset.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrAuthorizationLost is returned when the engine no longer holds
	// transfer authorization from the holder.
	ErrAuthorizationLost = errors.New("transfer authorization lost")
	// ErrPaymentFailed is returned when a settlement leg fails.
	ErrPaymentFailed = errors.New("payment failed")
	// ErrProceedsExceeded is returned when fee plus royalty would exceed
	// the purchased portion's price.
	ErrProceedsExceeded = errors.New("fee and royalty exceed proceeds")
	// ErrPaused is returned by create/update/buy while the marketplace is
	// paused.
	ErrPaused = errors.New("marketplace paused")
	// ErrReentrancy is returned when a settlement operation is entered
	// while another one is in progress.
	ErrReentrancy = errors.New("reentrant call")

	// invalid-parameters kinds
	ErrCollectionNotAllowed = errors.New("collection not allowed")
	ErrCurrencyNotAllowed   = errors.New("currency not allowed")
	ErrKindMismatch         = errors.New("asset kind mismatch")
	ErrUnsupportedAsset     = errors.New("unsupported asset standard")
	ErrSameTokenSwap        = errors.New("cannot swap a token for itself")
	ErrFreeListing          = errors.New("price required without swap terms")
	ErrIndivisiblePrice     = errors.New("price not divisible by quantity")
	ErrPartialBuyDisabled   = errors.New("partial buy not enabled")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrSelfPurchase         = errors.New("seller cannot buy own listing")
	ErrZeroAddress          = errors.New("zero address")
	ErrEmptyBatch           = errors.New("empty address batch")
	ErrBatchTooLarge        = errors.New("address batch too large")
	ErrWrongPaymentValue    = errors.New("wrong native payment value")
)
