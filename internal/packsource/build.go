package packsource

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/gladeworks/depot/pkg/asset"
)

// Entry is one asset written into a pack. An empty Kind stores as a blob.
type Entry struct {
	Path string
	Kind string
	Data []byte
}

// Build writes a new pack file containing entries, replacing any existing
// file at packPath. Paths are normalized the same way sources normalize
// cache keys, so a pack row is always found by its registry path.
func Build(packPath string, entries []Entry) error {
	// Fresh file per build; packs are immutable bundles, not databases to
	// migrate.
	_ = os.Remove(packPath)

	db, err := sql.Open("sqlite", packPath)
	if err != nil {
		return fmt.Errorf("create pack %s: %w", packPath, err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("init pack schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	for _, e := range entries {
		kind := e.Kind
		if kind == "" {
			kind = KindBlob
		}
		rel := asset.NormalizePath(e.Path)
		if _, err := tx.Exec(`INSERT INTO assets (path, kind, data) VALUES (?, ?, ?)`, rel, kind, e.Data); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert %s: %w", rel, err)
		}
	}
	return tx.Commit()
}
