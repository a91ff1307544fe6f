package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("item not found")

// Item is a stock-keeping unit. Movements against it are written only by
// voucher commits; the item itself carries no balance columns.
type Item struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Name        string
	Unit        string
	Description string
	Barcode     string
	CreatedAt   time.Time
}

// Position is the valued stock position of one item. Value uses a
// moving-value approximation, not layered FIFO or LIFO costing: it is the
// raw sum of quantity times rate over all movements, clamped to zero when
// the on-hand quantity is zero or negative.
type Position struct {
	ItemID   uuid.UUID
	ItemName string
	Unit     string
	Quantity decimal.Decimal
	Value    decimal.Decimal
}

// LocationPosition is a Position broken down by stock location.
type LocationPosition struct {
	Position
	Location string
}
