package persistence

import (
	"gorm.io/gorm"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/prospecting"
)

// GormProspectingRepository implements prospecting.Repository over
// GORM, with one row per revealed resource per prospected site.
type GormProspectingRepository struct {
	db *gorm.DB
}

func NewGormProspectingRepository(db *gorm.DB) *GormProspectingRepository {
	return &GormProspectingRepository{db: db}
}

func (r *GormProspectingRepository) IsProspected(orgID, locationID string) (bool, error) {
	var count int64
	err := r.db.Model(&ProspectingResultModel{}).
		Where("org_id = ? AND site_location_id = ?", orgID, locationID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormProspectingRepository) Record(res prospecting.Result) error {
	if len(res.Resources) == 0 {
		return nil
	}
	models := make([]ProspectingResultModel, len(res.Resources))
	for i, rr := range res.Resources {
		models[i] = ProspectingResultModel{
			OrgID: res.OrgID, SiteLocationID: res.SiteLocationID,
			ResourceID: rr.ResourceID, MassFraction: rr.MassFraction,
			ProspectedAtS: res.ProspectedAtS, ProspectedByShip: res.ProspectedByShip,
		}
	}
	return r.db.Create(&models).Error
}

func (r *GormProspectingRepository) ListByOrg(orgID string) ([]prospecting.Result, error) {
	var models []ProspectingResultModel
	if err := r.db.Where("org_id = ?", orgID).Order("site_location_id, resource_id").Find(&models).Error; err != nil {
		return nil, err
	}

	bySite := map[string]*prospecting.Result{}
	var order []string
	for _, m := range models {
		res, ok := bySite[m.SiteLocationID]
		if !ok {
			res = &prospecting.Result{
				OrgID: m.OrgID, SiteLocationID: m.SiteLocationID,
				ProspectedAtS: m.ProspectedAtS, ProspectedByShip: m.ProspectedByShip,
			}
			bySite[m.SiteLocationID] = res
			order = append(order, m.SiteLocationID)
		}
		res.Resources = append(res.Resources, prospecting.SiteResource{ResourceID: m.ResourceID, MassFraction: m.MassFraction})
	}

	out := make([]prospecting.Result, 0, len(order))
	for _, loc := range order {
		out = append(out, *bySite[loc])
	}
	return out, nil
}
