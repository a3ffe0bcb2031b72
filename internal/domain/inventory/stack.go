// Package inventory implements the dual-tier inventory model: fungible
// stacks of resources and parts at a location, keyed by a stable
// stack identity.
package inventory

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/parts"
)

// StackType discriminates the two stack namespaces.
type StackType string

const (
	StackTypeResource StackType = "resource"
	StackTypePart     StackType = "part"
)

// Stack is a single fungible row of inventory at a location.
type Stack struct {
	LocationID string
	StackType  StackType
	StackKey   string
	ItemID     string
	Name       string
	Quantity   float64
	MassKg     float64
	VolumeM3   float64
	PayloadJSON string
	UpdatedAtS float64
}

// epsilon below which a stack's three accounted quantities are
// considered zero and the row is deleted.
const epsilon = 1e-9

// canonicalJSON reproduces the source's stable JSON encoding: sorted
// keys, no whitespace. encoding/json with a pre-sorted map handles
// this because Go already serializes map[string]any keys in sorted
// order and uses compact separators by default.
func canonicalJSON(v map[string]any) (string, error) {
	b, err := json.Marshal(sortedMap(v))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// sortedMap is a no-op placeholder: Go's encoding/json already
// marshals map[string]any keys in sorted order, so no reordering is
// needed here. Kept as a named step so the canonicalization contract
// is explicit and has one place to extend if nested maps ever need
// float-formatting normalization.
func sortedMap(v map[string]any) map[string]any { return v }

func partPayloadMap(p parts.Part) map[string]any {
	m := map[string]any{
		"item_id":      p.ItemID,
		"name":         p.Name,
		"type":         p.Type,
		"category_id":  string(p.Category),
		"mass_kg":      p.MassKg,
		"capacity_m3":  p.CapacityM3,
		"mass_per_m3_kg": p.MassPerM3Kg,
		"thrust_kn":    p.ThrustKn,
		"isp_s":        p.IspS,
		"thermal_mw":   p.ThermalMw,
		"power_mw":     p.PowerMw,
		"resource_id":  p.ResourceID,
		"tech_level":   p.TechLevel,
	}
	if p.ContainerUID != "" {
		m["container_uid"] = p.ContainerUID
	}
	if p.Fill != nil {
		m["used_m3"] = p.Fill.UsedM3
		m["cargo_mass_kg"] = p.Fill.CargoMassKg
	}
	for k, v := range p.Extras {
		if _, exists := m[k]; !exists {
			m[k] = v
		}
	}
	return m
}

// PartStackIdentity computes the stable (stack_key, item_id, name,
// payload_json) tuple for a normalized part: the stack key is the
// SHA-1 of the canonical JSON of {"part": part}.
func PartStackIdentity(p parts.Part) (stackKey, itemID, name, payloadJSON string, err error) {
	payload := map[string]any{"part": partPayloadMap(p)}
	payloadJSON, err = canonicalJSON(payload)
	if err != nil {
		return "", "", "", "", err
	}
	sum := sha1.Sum([]byte(payloadJSON))
	stackKey = hex.EncodeToString(sum[:])

	itemID = strings.TrimSpace(p.ItemID)
	if itemID == "" {
		itemID = strings.TrimSpace(p.Name)
	}
	if itemID == "" {
		itemID = strings.TrimSpace(p.Type)
	}
	if itemID == "" {
		itemID = "part"
	}
	name = p.Name
	if name == "" {
		name = itemID
	}
	return stackKey, itemID, name, payloadJSON, nil
}

// ResourceStackKey is the key used for resource stacks: the resource
// id itself.
func ResourceStackKey(resourceID string) string { return resourceID }
