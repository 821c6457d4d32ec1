package whitelist

import (
	"fmt"
	"time"

	"github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/domain"
)

// BatchTooLargeError carries the attempted batch size so tooling can chunk.
type BatchTooLargeError struct {
	Size int
	Max  int
}

func (e *BatchTooLargeError) Error() string {
	return fmt.Sprintf("whitelist batch of %d exceeds maximum %d", e.Size, e.Max)
}

func (e *BatchTooLargeError) Is(target error) bool {
	return target == domain.ErrBatchTooLarge
}

// Entry is one (listingId, address) whitelist relation. Entries have a
// lifecycle independent from the listing's buyerWhitelistEnabled flag:
// they may be added while the flag is off and only take effect once it is
// enabled.
type Entry struct {
	ListingId domain.ListingId `json:"listingId" bson:"listingId"`
	Address   domain.Address   `json:"address" bson:"address"`
	CreatedAt time.Time        `json:"createdAt" bson:"createdAt"`
}

// Repo persists whitelist entries. Add and Remove are idempotent: adding
// an already-present or removing an absent address is a no-op.
type Repo interface {
	Add(ctx ctx.Ctx, id domain.ListingId, addrs []domain.Address) error
	Remove(ctx ctx.Ctx, id domain.ListingId, addrs []domain.Address) error
	Exists(ctx ctx.Ctx, id domain.ListingId, addr domain.Address) (bool, error)
	FindAll(ctx ctx.Ctx, id domain.ListingId) ([]domain.Address, error)
	RemoveAllByListing(ctx ctx.Ctx, id domain.ListingId) error
}

// UseCase is the whitelist gate. Mutators are authorized identically to
// cancel (seller, platform owner, or live-authorized operator), batches
// are bounded, and mutations are idempotent.
type UseCase interface {
	Add(ctx ctx.Ctx, id domain.ListingId, caller domain.Address, addrs []domain.Address) error
	Remove(ctx ctx.Ctx, id domain.ListingId, caller domain.Address, addrs []domain.Address) error
	IsWhitelisted(ctx ctx.Ctx, id domain.ListingId, addr domain.Address) (bool, error)
	FindAll(ctx ctx.Ctx, id domain.ListingId) ([]domain.Address, error)
}

// ValidateBatch enforces the shared batch bounds: non-empty, within max,
// and free of zero addresses. It is used both by the gate and by listing
// creation when seeding an initial whitelist.
func ValidateBatch(addrs []domain.Address, max int) error {
	if len(addrs) == 0 {
		return domain.ErrEmptyBatch
	}
	if len(addrs) > max {
		return &BatchTooLargeError{Size: len(addrs), Max: max}
	}
	for _, a := range addrs {
		if a.IsEmpty() {
			return domain.ErrZeroAddress
		}
	}
	return nil
}
