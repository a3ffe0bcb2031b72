package inventory

import "context"

// Repository persists location inventory stacks. Implementations must
// apply the upsert/delete rules of Upsert atomically per stack row.
type Repository interface {
	// Get returns the stack at (locationID, stackType, stackKey), or
	// ok=false if no such row exists.
	Get(ctx context.Context, locationID string, stackType StackType, stackKey string) (Stack, bool, error)

	// Put writes (or replaces) a stack row in full.
	Put(ctx context.Context, s Stack) error

	// Delete removes a stack row.
	Delete(ctx context.Context, locationID string, stackType StackType, stackKey string) error

	// ListPartsByItemID returns every part stack at locationID for the
	// given item id, ordered oldest-updated first (FIFO), for
	// ConsumePartsByItemIDs to choose from.
	ListPartsByItemID(ctx context.Context, locationID, itemID string) ([]Stack, error)

	// ListAt returns every stack at a location, for inventory_at reads.
	ListAt(ctx context.Context, locationID string) ([]Stack, error)
}

// NowFunc supplies the current game time in seconds for UpdatedAtS
// stamping, decoupling this package from the clock package directly.
type NowFunc func() float64
