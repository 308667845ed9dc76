// Package ports defines the interfaces between the application layer and the
// infrastructure adapters.
package ports

import (
	"context"

	"freshtrack-backend/domain/inventory"
	"freshtrack-backend/domain/user"
)

// ProfileRepository persists account profiles in the record store.
type ProfileRepository interface {
	// CreateIfAbsent atomically creates the profile, failing with a conflict
	// error when one already exists for the same email.
	CreateIfAbsent(ctx context.Context, profile user.Profile) error

	// GetByEmail returns the profile, or a not-found error.
	GetByEmail(ctx context.Context, email string) (*user.Profile, error)
}

// OwnedItem is an item together with the owner derived from its partition key.
// Only the store-wide expiry scan needs the owner alongside the item.
type OwnedItem struct {
	OwnerEmail string
	Item       inventory.Item
}

// ItemRepository persists food items scoped to their owner.
type ItemRepository interface {
	// Put upserts an item under the owner's partition.
	Put(ctx context.Context, ownerEmail string, item inventory.Item) error

	// Get returns the owner's item, or a not-found error.
	Get(ctx context.Context, ownerEmail, itemID string) (*inventory.Item, error)

	// Update replaces an existing item, failing with a not-found error when
	// the record is absent.
	Update(ctx context.Context, ownerEmail string, item inventory.Item) error

	// Delete removes the item unconditionally; deleting an absent item is not
	// an error.
	Delete(ctx context.Context, ownerEmail, itemID string) error

	// ListByOwner returns all items under the owner's partition.
	ListByOwner(ctx context.Context, ownerEmail string) ([]inventory.Item, error)

	// ScanExpiring returns every item, across all owners, whose expiry date
	// falls within [from, to] inclusive. Dates are YYYY-MM-DD strings.
	ScanExpiring(ctx context.Context, from, to string) ([]OwnedItem, error)
}

// NotificationService sends email notifications through the external channel.
type NotificationService interface {
	// SubscribeEmail registers an email address with the notification topic.
	SubscribeEmail(ctx context.Context, email string) error

	// Publish sends one notification to the topic.
	Publish(ctx context.Context, subject, message string) error
}
