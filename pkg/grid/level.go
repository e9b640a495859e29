package grid

import (
	"errors"
	"fmt"
)

// Level validation and access errors.
var (
	ErrLevelShape  = errors.New("cell count does not match level dimensions")
	ErrLevelBounds = errors.New("cell coordinates out of bounds")
)

// CellData is one grid cell of a level. Obstacle is the ID of an entry in
// the level's obstacle table, or empty for a clear cell.
type CellData struct {
	Tile     int    `json:"tile"`
	Obstacle string `json:"obstacle,omitempty"`
	Walkable bool   `json:"walkable"`
}

// LevelData is the row-major cell grid for one level.
type LevelData struct {
	Name      string         `json:"name"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Cells     []CellData     `json:"cells"`
	Obstacles []ObstacleInfo `json:"obstacles,omitempty"`
}

// Validate checks the cell slice against the declared dimensions.
func (l *LevelData) Validate() error {
	if l.Width < 0 || l.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrLevelShape, l.Width, l.Height)
	}
	if len(l.Cells) != l.Width*l.Height {
		return fmt.Errorf("%w: %d cells for %dx%d", ErrLevelShape, len(l.Cells), l.Width, l.Height)
	}
	return nil
}

// InBounds reports whether (x, y) lies on the grid.
func (l *LevelData) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// CellAt returns the cell at (x, y); y indexes rows.
func (l *LevelData) CellAt(x, y int) (CellData, error) {
	if !l.InBounds(x, y) {
		return CellData{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrLevelBounds, x, y, l.Width, l.Height)
	}
	return l.Cells[y*l.Width+x], nil
}

// Neighbor returns the coordinates one step from (x, y) in direction d,
// reporting false when the step leaves the grid.
func (l *LevelData) Neighbor(x, y int, d Direction) (nx, ny int, ok bool) {
	dx, dy := d.Vector()
	nx, ny = x+dx, y+dy
	if (dx == 0 && dy == 0) || !l.InBounds(nx, ny) {
		return 0, 0, false
	}
	return nx, ny, true
}

// ObstacleTable builds the table of the level's embedded obstacle
// metadata. Duplicate IDs in the level data surface as registration
// errors.
func (l *LevelData) ObstacleTable() (*ObstacleTable, error) {
	table := NewObstacleTable()
	for _, info := range l.Obstacles {
		if err := table.Register(info); err != nil {
			return nil, fmt.Errorf("level %q: %w", l.Name, err)
		}
	}
	return table, nil
}
