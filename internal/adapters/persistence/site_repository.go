package persistence

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/prospecting"
)

// GormSiteRepository implements prospecting.SiteLookup over GORM.
type GormSiteRepository struct {
	db *gorm.DB
}

func NewGormSiteRepository(db *gorm.DB) *GormSiteRepository {
	return &GormSiteRepository{db: db}
}

func (r *GormSiteRepository) SiteAt(locationID string) (prospecting.SurfaceSite, bool, error) {
	var site SurfaceSiteModel
	err := r.db.Where("location_id = ?", locationID).First(&site).Error
	if err == gorm.ErrRecordNotFound {
		return prospecting.SurfaceSite{}, false, nil
	}
	if err != nil {
		return prospecting.SurfaceSite{}, false, err
	}

	var rows []SurfaceSiteResourceModel
	if err := r.db.Where("site_location_id = ?", locationID).Find(&rows).Error; err != nil {
		return prospecting.SurfaceSite{}, false, err
	}
	resources := make([]prospecting.SiteResource, len(rows))
	for i, row := range rows {
		resources[i] = prospecting.SiteResource{ResourceID: row.ResourceID, MassFraction: row.MassFraction}
	}
	return prospecting.SurfaceSite{LocationID: site.LocationID, BodyID: site.BodyID, Resources: resources}, true, nil
}

// UpsertSite installs or updates a surface site's true resource
// distribution, used by startup seeding and operator tooling.
func (r *GormSiteRepository) UpsertSite(site prospecting.SurfaceSite) error {
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "location_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"body_id"}),
	}).Create(&SurfaceSiteModel{LocationID: site.LocationID, BodyID: site.BodyID}).Error; err != nil {
		return err
	}
	if len(site.Resources) == 0 {
		return nil
	}
	rows := make([]SurfaceSiteResourceModel, len(site.Resources))
	for i, r := range site.Resources {
		rows[i] = SurfaceSiteResourceModel{SiteLocationID: site.LocationID, ResourceID: r.ResourceID, MassFraction: r.MassFraction}
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "site_location_id"}, {Name: "resource_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"mass_fraction"}),
	}).Create(&rows).Error
}
