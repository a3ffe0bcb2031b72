package inventory

import "fmt"

// ErrInsufficientInventory is returned by ConsumePartsByItemIDs when
// the location does not have enough of one or more requested items.
// It reports every shortfall, not just the first.
type ErrInsufficientInventory struct {
	Shortfalls map[string]Shortfall
}

// Shortfall records what was requested vs. available for one item id.
type Shortfall struct {
	Requested int
	Available int
}

func (e *ErrInsufficientInventory) Error() string {
	return fmt.Sprintf("INSUFFICIENT_INVENTORY: %d item id(s) short", len(e.Shortfalls))
}

// ErrInventoryRace is returned when a chosen stack drops below the
// required quantity between the precondition check and the debit.
type ErrInventoryRace struct {
	ItemID string
}

func (e *ErrInventoryRace) Error() string {
	return fmt.Sprintf("INVENTORY_RACE: stack for %q changed mid-transaction", e.ItemID)
}
