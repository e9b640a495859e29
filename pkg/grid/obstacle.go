package grid

import (
	"errors"
	"fmt"
	"slices"
)

// Obstacle table errors.
var (
	ErrObstacleID      = errors.New("obstacle id must not be empty")
	ErrObstacleExists  = errors.New("obstacle id is already registered")
	ErrObstacleUnknown = errors.New("unknown obstacle id")
)

// ObstacleInfo describes one obstacle kind placeable in cells.
type ObstacleInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Blocking     bool   `json:"blocking"`
	Destructible bool   `json:"destructible"`
}

// ObstacleTable is an id-keyed obstacle metadata registry. It rejects
// duplicate registrations and is otherwise a plain map wrapper; callers
// populate it during startup and read it afterwards.
type ObstacleTable struct {
	infos map[string]ObstacleInfo
}

// NewObstacleTable creates an empty table.
func NewObstacleTable() *ObstacleTable {
	return &ObstacleTable{infos: make(map[string]ObstacleInfo)}
}

// Register adds info to the table. An empty ID or an already-registered ID
// fails without mutating the table.
func (t *ObstacleTable) Register(info ObstacleInfo) error {
	if info.ID == "" {
		return ErrObstacleID
	}
	if _, exists := t.infos[info.ID]; exists {
		return fmt.Errorf("%w: %q", ErrObstacleExists, info.ID)
	}
	t.infos[info.ID] = info
	return nil
}

// Lookup returns the metadata registered under id.
func (t *ObstacleTable) Lookup(id string) (ObstacleInfo, error) {
	info, ok := t.infos[id]
	if !ok {
		return ObstacleInfo{}, fmt.Errorf("%w: %q", ErrObstacleUnknown, id)
	}
	return info, nil
}

// IDs returns the registered obstacle IDs in sorted order.
func (t *ObstacleTable) IDs() []string {
	out := make([]string, 0, len(t.infos))
	for id := range t.infos {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
