// Package persistence holds the GORM row models and repository
// adapters that back every domain package's storage port.
package persistence

import "time"

// LocationModel is a node in the location tree: either a group
// (a grouping node with no physical presence) or a leaf location ships
// can occupy.
type LocationModel struct {
	ID        string  `gorm:"column:id;primaryKey"`
	Name      string  `gorm:"column:name;not null"`
	ParentID  string  `gorm:"column:parent_id;index"`
	IsGroup   bool    `gorm:"column:is_group;not null;default:false"`
	SortOrder int     `gorm:"column:sort_order;not null;default:0"`
	X         float64 `gorm:"column:x;not null;default:0"`
	Y         float64 `gorm:"column:y;not null;default:0"`
}

func (LocationModel) TableName() string { return "locations" }

// TransferEdgeModel is one directed edge of the location graph.
type TransferEdgeModel struct {
	FromID string  `gorm:"column:from_id;primaryKey"`
	ToID   string  `gorm:"column:to_id;primaryKey"`
	DvMS   float64 `gorm:"column:dv_m_s;not null"`
	TofS   float64 `gorm:"column:tof_s;not null"`
}

func (TransferEdgeModel) TableName() string { return "transfer_edges" }

// TransferMatrixEntryModel is one cached least-Δv path with its path
// json. The edges hash that invalidates the whole table lives in
// MetaModel, not here.
type TransferMatrixEntryModel struct {
	FromID   string  `gorm:"column:from_id;primaryKey"`
	ToID     string  `gorm:"column:to_id;primaryKey"`
	DvMS     float64 `gorm:"column:dv_m_s;not null"`
	TofS     float64 `gorm:"column:tof_s;not null"`
	PathJSON string  `gorm:"column:path_json;type:text;not null"`
}

func (TransferMatrixEntryModel) TableName() string { return "transfer_matrix_entries" }

// SurfaceSiteModel flags a location as a prospectable surface site.
type SurfaceSiteModel struct {
	LocationID string `gorm:"column:location_id;primaryKey"`
	BodyID     string `gorm:"column:body_id;not null"`
}

func (SurfaceSiteModel) TableName() string { return "surface_sites" }

// SurfaceSiteResourceModel is one resource's true mass fraction at a
// surface site, hidden from orgs until prospected.
type SurfaceSiteResourceModel struct {
	SiteLocationID string  `gorm:"column:site_location_id;primaryKey"`
	ResourceID     string  `gorm:"column:resource_id;primaryKey"`
	MassFraction   float64 `gorm:"column:mass_fraction;not null"`
}

func (SurfaceSiteResourceModel) TableName() string { return "surface_site_resources" }

// ShipModel is a ship's persisted navigation and loadout state.
type ShipModel struct {
	ID             string  `gorm:"column:id;primaryKey"`
	Name           string  `gorm:"column:name;not null"`
	OrgID          string  `gorm:"column:org_id;index;not null"`
	LocationID     string  `gorm:"column:location_id"`
	FromLocationID string  `gorm:"column:from_location_id"`
	ToLocationID   string  `gorm:"column:to_location_id;index"`
	DepartedAtS    float64 `gorm:"column:departed_at_s"`
	ArrivesAtS     float64 `gorm:"column:arrives_at_s;index"`
	TransferPathJSON string `gorm:"column:transfer_path_json;type:text;not null;default:'[]'"`
	PartsJSON      string  `gorm:"column:parts_json;type:text;not null;default:'[]'"`
	FuelKg         float64 `gorm:"column:fuel_kg;not null;default:0"`
}

func (ShipModel) TableName() string { return "ships" }

// InventoryStackModel is one location inventory stack row, for either
// a resource or a normalized part.
type InventoryStackModel struct {
	LocationID  string    `gorm:"column:location_id;primaryKey"`
	StackType   string    `gorm:"column:stack_type;primaryKey"`
	StackKey    string    `gorm:"column:stack_key;primaryKey"`
	ItemID      string    `gorm:"column:item_id;not null;index"`
	Name        string    `gorm:"column:name;not null"`
	Quantity    float64   `gorm:"column:quantity;not null"`
	MassKg      float64   `gorm:"column:mass_kg;not null"`
	VolumeM3    float64   `gorm:"column:volume_m3;not null"`
	PayloadJSON string    `gorm:"column:payload_json;type:text;not null;default:'{}'"`
	UpdatedAtS  float64   `gorm:"column:updated_at_s;not null;index"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

func (InventoryStackModel) TableName() string { return "inventory_stacks" }

// OrganizationModel is one org's settle-on-access ledger state.
type OrganizationModel struct {
	ID               string  `gorm:"column:id;primaryKey"`
	BalanceUSD       float64 `gorm:"column:balance_usd;not null;default:0"`
	LastSettledAtS   float64 `gorm:"column:last_settled_at_s;not null;default:0"`
	ResearchTeams    int     `gorm:"column:research_teams;not null;default:0"`
	ResearchPoints   float64 `gorm:"column:research_points;not null;default:0"`
	UnlockedTechJSON string  `gorm:"column:unlocked_tech_json;type:text;not null;default:'[]'"`
}

func (OrganizationModel) TableName() string { return "organizations" }

// ProspectingResultModel is one org's revealed resource record for a
// site, one row per resource.
type ProspectingResultModel struct {
	ID               uint    `gorm:"column:id;primaryKey;autoIncrement"`
	OrgID            string  `gorm:"column:org_id;index:idx_prospecting_org_site;not null"`
	SiteLocationID   string  `gorm:"column:site_location_id;index:idx_prospecting_org_site;not null"`
	ResourceID       string  `gorm:"column:resource_id;not null"`
	MassFraction     float64 `gorm:"column:mass_fraction;not null"`
	ProspectedAtS    float64 `gorm:"column:prospected_at_s;not null"`
	ProspectedByShip string  `gorm:"column:prospected_by_ship;not null"`
}

func (ProspectingResultModel) TableName() string { return "prospecting_results" }

// LeoBoostModel is one historical LEO delivery purchase.
type LeoBoostModel struct {
	ID                    uint    `gorm:"column:id;primaryKey;autoIncrement"`
	OrgID                 string  `gorm:"column:org_id;index;not null"`
	ItemID                string  `gorm:"column:item_id;not null"`
	ItemName              string  `gorm:"column:item_name;not null"`
	Quantity              int     `gorm:"column:quantity;not null"`
	MassKg                float64 `gorm:"column:mass_kg;not null"`
	CostUSD               float64 `gorm:"column:cost_usd;not null"`
	BoostedAtS            float64 `gorm:"column:boosted_at_s;not null"`
	DestinationLocationID string  `gorm:"column:destination_location_id;not null"`
}

func (LeoBoostModel) TableName() string { return "leo_boosts" }

// MetaModel is a single simulation-wide key/value row, used to persist
// the virtual clock state across restarts.
type MetaModel struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value;type:text;not null"`
}

func (MetaModel) TableName() string { return "meta" }
