package storage

import "errors"

// Slot names are stable across restarts of the same store; they mirror the
// keys the storefront has always used, so existing data keeps working.
const (
	SlotDishes = "jc_dishes"
	SlotExtras = "jc_extras"
	SlotOrders = "jc_orders"
	SlotAuth   = "jc_admin_auth"
)

// ErrSlotEmpty is returned by Load when a slot holds no value.
var ErrSlotEmpty = errors.New("slot empty")

// SlotStore persists whole serialized collections under named slots. Each
// Save overwrites the slot in one step; there are no partial writes and no
// transactions across slots.
type SlotStore interface {
	Load(slot string) ([]byte, error)
	Save(slot string, value []byte) error
	Delete(slot string) error
}
