package persistence

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/clock"
)

const clockStateMetaKey = "sim_clock_state"

// GormClockStore persists the virtual clock's anchor triple in the
// shared meta table so it survives process restarts.
type GormClockStore struct {
	db *gorm.DB
}

func NewGormClockStore(db *gorm.DB) *GormClockStore {
	return &GormClockStore{db: db}
}

func (s *GormClockStore) Save(state clock.State) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return upsertMeta(s.db, clockStateMetaKey, string(blob))
}

func (s *GormClockStore) Load() (clock.State, bool, error) {
	value, found, err := getMeta(s.db, clockStateMetaKey)
	if err != nil || !found {
		return clock.State{}, found, err
	}
	var state clock.State
	if err := json.Unmarshal([]byte(value), &state); err != nil {
		return clock.State{}, false, err
	}
	return state, true, nil
}
