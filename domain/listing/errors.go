package listing

import (
	"fmt"

	"github.com/openlistings/goengine/domain"
)

// InsufficientBalanceError reports how much of the listed asset the seller
// was required to hold versus how much the ledger actually shows.
type InsufficientBalanceError struct {
	Required  uint64
	Available uint64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %d, available %d", e.Required, e.Available)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == domain.ErrInsufficientBalance
}

// NotWhitelistedError identifies both the listing and the rejected buyer.
type NotWhitelistedError struct {
	ListingId domain.ListingId
	Buyer     domain.Address
}

func (e *NotWhitelistedError) Error() string {
	return fmt.Sprintf("buyer %s not whitelisted for listing %d", e.Buyer, e.ListingId)
}

func (e *NotWhitelistedError) Is(target error) bool {
	return target == domain.ErrNotWhitelisted
}

// PaymentError names the currency and intended recipient of a failed
// settlement leg.
type PaymentError struct {
	Currency  domain.Address
	Recipient domain.Address
	Err       error
}

func (e *PaymentError) Error() string {
	currency := "native"
	if !e.Currency.IsEmpty() {
		currency = string(e.Currency)
	}
	return fmt.Sprintf("payment of %s to %s failed: %v", currency, e.Recipient, e.Err)
}

func (e *PaymentError) Is(target error) bool {
	return target == domain.ErrPaymentFailed
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}
