package prospecting

import "sort"

// ProspectSite reveals a surface site's resource distribution to an
// organization once, using a robonaut-equipped ship docked at the
// site. Refuses when the ship is elsewhere, lacks a robonaut, the
// location is not a surface site, or the org already prospected it.
func ProspectSite(
	ships ShipLookup, sites SiteLookup, repo Repository,
	orgID, shipID, siteLocationID string, nowS float64,
) (Result, error) {
	loc, found, err := ships.LocationOf(shipID)
	if err != nil {
		return Result{}, err
	}
	if !found || loc != siteLocationID {
		return Result{}, &ErrShipNotAtSite{ShipID: shipID, LocationID: siteLocationID}
	}

	hasRobonaut, err := ships.HasRobonaut(shipID)
	if err != nil {
		return Result{}, err
	}
	if !hasRobonaut {
		return Result{}, &ErrNoRobonaut{ShipID: shipID}
	}

	site, found, err := sites.SiteAt(siteLocationID)
	if err != nil {
		return Result{}, err
	}
	if !found {
		return Result{}, &ErrNotASurfaceSite{LocationID: siteLocationID}
	}

	already, err := repo.IsProspected(orgID, siteLocationID)
	if err != nil {
		return Result{}, err
	}
	if already {
		return Result{}, &ErrAlreadyProspected{OrgID: orgID, LocationID: siteLocationID}
	}

	resources := make([]SiteResource, len(site.Resources))
	copy(resources, site.Resources)
	sort.Slice(resources, func(i, j int) bool {
		return resources[i].MassFraction > resources[j].MassFraction
	})

	result := Result{
		OrgID:            orgID,
		SiteLocationID:   siteLocationID,
		ProspectedAtS:    nowS,
		ProspectedByShip: shipID,
		Resources:        resources,
	}
	if err := repo.Record(result); err != nil {
		return Result{}, err
	}
	return result, nil
}
