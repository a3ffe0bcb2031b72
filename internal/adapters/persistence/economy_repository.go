package persistence

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/boost"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/economy"
)

// GormEconomyRepository implements economy.Repository over GORM, and
// doubles as boost.Ledger since the two port shapes coincide.
type GormEconomyRepository struct {
	db *gorm.DB
}

func NewGormEconomyRepository(db *gorm.DB) *GormEconomyRepository {
	return &GormEconomyRepository{db: db}
}

func (r *GormEconomyRepository) Get(id string) (economy.Organization, bool, error) {
	var m OrganizationModel
	err := r.db.Where("id = ?", id).First(&m).Error
	if err == gorm.ErrRecordNotFound {
		return economy.Organization{}, false, nil
	}
	if err != nil {
		return economy.Organization{}, false, err
	}
	var unlocked []string
	if m.UnlockedTechJSON != "" {
		if err := json.Unmarshal([]byte(m.UnlockedTechJSON), &unlocked); err != nil {
			return economy.Organization{}, false, err
		}
	}
	set := make(map[string]struct{}, len(unlocked))
	for _, id := range unlocked {
		set[id] = struct{}{}
	}
	return economy.Organization{
		ID: m.ID, BalanceUSD: m.BalanceUSD, LastSettledAtS: m.LastSettledAtS,
		ResearchTeams: m.ResearchTeams, ResearchPoints: m.ResearchPoints, UnlockedTechIDs: set,
	}, true, nil
}

func (r *GormEconomyRepository) Save(org economy.Organization) error {
	unlocked := make([]string, 0, len(org.UnlockedTechIDs))
	for id := range org.UnlockedTechIDs {
		unlocked = append(unlocked, id)
	}
	blob, err := json.Marshal(unlocked)
	if err != nil {
		return err
	}
	m := OrganizationModel{
		ID: org.ID, BalanceUSD: org.BalanceUSD, LastSettledAtS: org.LastSettledAtS,
		ResearchTeams: org.ResearchTeams, ResearchPoints: org.ResearchPoints, UnlockedTechJSON: string(blob),
	}
	return r.db.Save(&m).Error
}

// RecordBoost appends a LeoBoost row documenting a completed purchase.
func (r *GormEconomyRepository) RecordBoost(b boost.LeoBoost) error {
	m := LeoBoostModel{
		OrgID: b.OrgID, ItemID: b.ItemID, ItemName: b.ItemName, Quantity: b.Quantity,
		MassKg: b.MassKg, CostUSD: b.CostUSD, BoostedAtS: b.BoostedAtS,
		DestinationLocationID: b.DestinationLocationID,
	}
	return r.db.Create(&m).Error
}
