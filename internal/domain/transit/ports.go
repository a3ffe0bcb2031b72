package transit

// RouteLookup resolves the cached least-Δv path between two
// locations, mirroring routing.Route without importing the routing
// package (kept decoupled so transit can be tested against a bare
// matrix fixture).
type RouteLookup interface {
	Lookup(fromID, toID string) (dvMS, tofS float64, path []string, found bool)
}

// Repository persists ships and performs the bulk arrival promotion.
type Repository interface {
	Get(id string) (Ship, bool, error)
	Save(s Ship) error
	// SettleArrivals promotes every ship with ArrivesAtS <= now to
	// Docked at ToLocationID, clearing the in-transit fields, and
	// returns the ids of the ships it promoted. Idempotent: ships
	// already docked are untouched.
	SettleArrivals(now float64) ([]string, error)
}
