// Package inventory holds the food item entity, its validation rules and the
// analytics computed over a user's items.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"freshtrack-backend/pkg/utils"
)

// Item is a single tracked food item. It is owned by exactly one user; the
// owner is part of the storage key, not the entity. Dates are calendar dates
// in YYYY-MM-DD form, timestamps are RFC3339.
type Item struct {
	ID           string `json:"itemId"`
	Name         string `json:"itemName"`
	Quantity     int    `json:"quantity"`
	PurchaseDate string `json:"purchaseDate"`
	ExpiryDate   string `json:"expiryDate"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// ItemInput is the unvalidated field set for creating or replacing an item.
// Quantity is left untyped because clients send it as either a JSON number or
// a numeric string.
type ItemInput struct {
	Name         string
	Quantity     interface{}
	PurchaseDate string
	ExpiryDate   string
}

// NewItem builds a fresh item from validated input. The caller must have run
// the input through an ItemValidator first.
func NewItem(input ItemInput, now time.Time) Item {
	quantity, _ := CoerceQuantity(input.Quantity)
	return Item{
		ID:           uuid.New().String(),
		Name:         Sanitize(input.Name),
		Quantity:     quantity,
		PurchaseDate: input.PurchaseDate,
		ExpiryDate:   input.ExpiryDate,
		CreatedAt:    now.UTC().Format(time.RFC3339),
	}
}

// Replace returns a copy of the item with every user-supplied field
// overwritten from validated input and the update timestamp set. Last write
// wins; there is no version check.
func (i Item) Replace(input ItemInput, now time.Time) Item {
	quantity, _ := CoerceQuantity(input.Quantity)
	i.Name = Sanitize(input.Name)
	i.Quantity = quantity
	i.PurchaseDate = input.PurchaseDate
	i.ExpiryDate = input.ExpiryDate
	i.UpdatedAt = now.UTC().Format(time.RFC3339)
	return i
}

// ExpiresOn parses the item's expiry date. The bool is false when the stored
// value does not parse.
func (i Item) ExpiresOn() (time.Time, bool) {
	t, err := utils.ParseDate(i.ExpiryDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
