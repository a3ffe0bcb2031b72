package inventory

import (
	"context"
	"sort"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/parts"
)

// Service implements the location inventory operations over a
// Repository.
type Service struct {
	repo Repository
	now  NowFunc
}

func NewService(repo Repository, now NowFunc) *Service {
	return &Service{repo: repo, now: now}
}

// Upsert applies the four-step update rule: no-op on an absent row
// with non-positive deltas; insert clamped to >=0 on an absent row
// with a positive delta; otherwise add-then-clamp-then-maybe-delete.
func (s *Service) Upsert(
	ctx context.Context,
	locationID string, stackType StackType, stackKey string,
	deltaQuantity, deltaMassKg, deltaVolumeM3 float64,
	itemID, name, payloadJSON string,
) error {
	existing, found, err := s.repo.Get(ctx, locationID, stackType, stackKey)
	if err != nil {
		return err
	}

	if !found {
		qty := maxf(0, deltaQuantity)
		mass := maxf(0, deltaMassKg)
		vol := maxf(0, deltaVolumeM3)
		if qty <= 0 && mass <= 0 && vol <= 0 {
			return nil
		}
		return s.repo.Put(ctx, Stack{
			LocationID: locationID, StackType: stackType, StackKey: stackKey,
			ItemID: itemID, Name: name, Quantity: qty, MassKg: mass, VolumeM3: vol,
			PayloadJSON: payloadJSON, UpdatedAtS: s.now(),
		})
	}

	qty := maxf(0, existing.Quantity+deltaQuantity)
	mass := maxf(0, existing.MassKg+deltaMassKg)
	vol := maxf(0, existing.VolumeM3+deltaVolumeM3)

	if qty <= epsilon && mass <= epsilon && vol <= epsilon {
		return s.repo.Delete(ctx, locationID, stackType, stackKey)
	}

	return s.repo.Put(ctx, Stack{
		LocationID: locationID, StackType: stackType, StackKey: stackKey,
		ItemID: itemID, Name: name, Quantity: qty, MassKg: mass, VolumeM3: vol,
		PayloadJSON: payloadJSON, UpdatedAtS: s.now(),
	})
}

// AddResource credits a resource stack with massKg of material,
// computing volume from density when available.
func (s *Service) AddResource(ctx context.Context, locationID, resourceID string, massKg, densityKgM3 float64, name string) error {
	volume := 0.0
	if densityKgM3 > 0 {
		volume = massKg / densityKgM3
	}
	payload, err := canonicalJSON(map[string]any{"resource_id": resourceID})
	if err != nil {
		return err
	}
	return s.Upsert(ctx, locationID, StackTypeResource, ResourceStackKey(resourceID), massKg, massKg, volume, resourceID, name, payload)
}

// AddPart credits count units of a normalized part to a location's
// part stacks, computed under the part's stack identity.
func (s *Service) AddPart(ctx context.Context, locationID string, p parts.Part, count float64) error {
	if count <= 0 {
		return nil
	}
	stackKey, itemID, name, payloadJSON, err := PartStackIdentity(p)
	if err != nil {
		return err
	}
	return s.Upsert(ctx, locationID, StackTypePart, stackKey, count, p.MassKg*count, 0, itemID, name, payloadJSON)
}

// ConsumeResourceMass debits up to massRequest of a resource stack,
// proportionally reducing volume, and returns the mass actually
// consumed.
func (s *Service) ConsumeResourceMass(ctx context.Context, locationID, resourceID string, massRequest float64) (float64, error) {
	existing, found, err := s.repo.Get(ctx, locationID, StackTypeResource, ResourceStackKey(resourceID))
	if err != nil || !found {
		return 0, err
	}
	consumed := minf(existing.MassKg, massRequest)
	if consumed <= 0 {
		return 0, nil
	}
	volRatio := 0.0
	if existing.MassKg > 0 {
		volRatio = consumed / existing.MassKg
	}
	deltaVol := -existing.VolumeM3 * volRatio
	return consumed, s.Upsert(ctx, locationID, StackTypeResource, ResourceStackKey(resourceID), -consumed, -consumed, deltaVol, existing.ItemID, existing.Name, existing.PayloadJSON)
}

// ConsumePartUnit debits exactly one unit from a part stack and
// returns the normalized part payload, keyed by its per-unit mass.
func (s *Service) ConsumePartUnit(ctx context.Context, locationID, stackKey string) (string, error) {
	existing, found, err := s.repo.Get(ctx, locationID, StackTypePart, stackKey)
	if err != nil {
		return "", err
	}
	if !found || existing.Quantity < 1 {
		return "", &ErrInventoryRace{ItemID: existing.ItemID}
	}
	massPerUnit := 0.0
	if existing.Quantity > 0 {
		massPerUnit = existing.MassKg / existing.Quantity
	}
	if err := s.Upsert(ctx, locationID, StackTypePart, stackKey, -1, -massPerUnit, 0, existing.ItemID, existing.Name, existing.PayloadJSON); err != nil {
		return "", err
	}
	return existing.PayloadJSON, nil
}

// ConsumePartsByItemIDs validates that every distinct item id in
// requiredIDs has sufficient aggregate quantity at the location, then
// debits one stack at a time, preferring the oldest (FIFO by
// UpdatedAtS) stack with quantity>=1. Fails atomically (no partial
// debit) when any item id is short.
func (s *Service) ConsumePartsByItemIDs(ctx context.Context, locationID string, requiredIDs []string) ([]string, error) {
	needed := map[string]int{}
	order := []string{}
	for _, id := range requiredIDs {
		if _, ok := needed[id]; !ok {
			order = append(order, id)
		}
		needed[id]++
	}

	shortfalls := map[string]Shortfall{}
	available := map[string][]Stack{}
	for id, reqCount := range needed {
		stacks, err := s.repo.ListPartsByItemID(ctx, locationID, id)
		if err != nil {
			return nil, err
		}
		sort.Slice(stacks, func(i, j int) bool { return stacks[i].UpdatedAtS < stacks[j].UpdatedAtS })
		available[id] = stacks

		total := 0
		for _, st := range stacks {
			total += int(st.Quantity)
		}
		if total < reqCount {
			shortfalls[id] = Shortfall{Requested: reqCount, Available: total}
		}
	}
	if len(shortfalls) > 0 {
		return nil, &ErrInsufficientInventory{Shortfalls: shortfalls}
	}

	consumed := make([]string, 0, len(requiredIDs))
	for _, id := range requiredIDs {
		stacks := available[id]
		chosenIdx := -1
		for i, st := range stacks {
			if st.Quantity >= 1 {
				chosenIdx = i
				break
			}
		}
		if chosenIdx == -1 {
			return nil, &ErrInventoryRace{ItemID: id}
		}
		chosen := stacks[chosenIdx]
		payload, err := s.ConsumePartUnit(ctx, locationID, chosen.StackKey)
		if err != nil {
			return nil, err
		}
		consumed = append(consumed, payload)

		chosen.Quantity--
		if chosen.Quantity < 1 {
			stacks = append(stacks[:chosenIdx], stacks[chosenIdx+1:]...)
		} else {
			stacks[chosenIdx] = chosen
		}
		available[id] = stacks
	}

	return consumed, nil
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
