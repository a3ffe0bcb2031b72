package prospecting

import "fmt"

type ErrShipNotAtSite struct{ ShipID, LocationID string }

func (e *ErrShipNotAtSite) Error() string {
	return fmt.Sprintf("ship %s is not at site %s", e.ShipID, e.LocationID)
}

type ErrNoRobonaut struct{ ShipID string }

func (e *ErrNoRobonaut) Error() string {
	return fmt.Sprintf("ship %s has no robonaut equipped", e.ShipID)
}

type ErrNotASurfaceSite struct{ LocationID string }

func (e *ErrNotASurfaceSite) Error() string {
	return fmt.Sprintf("location %s is not a surface site", e.LocationID)
}

type ErrAlreadyProspected struct{ OrgID, LocationID string }

func (e *ErrAlreadyProspected) Error() string {
	return fmt.Sprintf("org %s already prospected %s", e.OrgID, e.LocationID)
}
