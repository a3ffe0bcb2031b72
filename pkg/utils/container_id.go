package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateContainerID creates a standardized, human-readable
// correlation id for a log-grouped unit of work. Format:
// {operation}-{subjectTail}-{8charHexUUID}
//
// Example:
//   - Input: operation="dispatch", subject="acme-ship-shipyard-01"
//   - Output: "dispatch-shipyard-01-a3f8e2b1"
func GenerateContainerID(operation, subject string) string {
	return operation + "-" + lastTwoSegments(subject) + "-" + shortUUID()
}

// lastTwoSegments keeps the last two hyphen-separated segments of a
// compound identifier, trimming a leading namespace/prefix:
//   - "AGENT-SCOUT-1" -> "SCOUT-1"
//   - "MY-AGENT-MINER-2" -> "MINER-2"
//   - "SCOUT-1" -> "SCOUT-1" (no change if only 2 parts)
//   - "SINGLE" -> "SINGLE" (no change if no hyphens)
func lastTwoSegments(id string) string {
	parts := strings.Split(id, "-")
	if len(parts) <= 2 {
		return id
	}
	return strings.Join(parts[len(parts)-2:], "-")
}

// shortUUID creates an 8-character hex string from a UUID, compact
// enough to keep correlation ids readable while staying unique.
func shortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
