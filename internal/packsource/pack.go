// Package packsource loads assets from SQLite pack files: single-file,
// read-only bundles with one row per asset. Packs implement asset.Loader,
// so a pack mounts under a registry prefix like any other source.
package packsource

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/gladeworks/depot/pkg/asset"
	"github.com/gladeworks/depot/pkg/grid"
	"github.com/gladeworks/depot/pkg/sniff"
)

//go:embed schema.sql
var schemaSQL string

// Asset kinds stored in a pack's kind column.
const (
	KindBlob    = "blob"
	KindTexture = "texture"
	KindAudio   = "audio"
	KindSprite  = "sprite"
	KindLevel   = "level"
)

// Pack is an open SQLite asset bundle.
type Pack struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

// Open opens an existing pack file. The file must already exist; use Build
// to create one.
func Open(packPath string) (*Pack, error) {
	if _, err := os.Stat(packPath); err != nil {
		return nil, fmt.Errorf("open pack: %w", err)
	}
	db, err := sql.Open("sqlite", packPath)
	if err != nil {
		return nil, fmt.Errorf("open pack %s: %w", packPath, err)
	}
	return &Pack{path: packPath, db: db}, nil
}

// Path returns the pack file path.
func (p *Pack) Path() string {
	return p.path
}

// Close releases the database handle. Idempotent.
func (p *Pack) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}

// Load implements asset.Loader: select the row at the relative path and
// decode it by kind. A missing row is a clean miss.
func (p *Pack) Load(rel string) (any, error) {
	p.mu.Lock()
	db := p.db
	p.mu.Unlock()
	if db == nil {
		return nil, fmt.Errorf("pack %s is closed", p.path)
	}

	var kind string
	var data []byte
	err := db.QueryRow(`SELECT kind, data FROM assets WHERE path = ?`, rel).Scan(&kind, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, asset.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query pack %s: %w", rel, err)
	}
	return p.decode(rel, kind, data)
}

// Paths returns every asset path in the pack, sorted.
func (p *Pack) Paths() ([]string, error) {
	p.mu.Lock()
	db := p.db
	p.mu.Unlock()
	if db == nil {
		return nil, fmt.Errorf("pack %s is closed", p.path)
	}

	rows, err := db.Query(`SELECT path FROM assets ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("list pack: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var rel string
		if err := rows.Scan(&rel); err != nil {
			return nil, err
		}
		out = append(out, rel)
	}
	return out, rows.Err()
}

func (p *Pack) decode(rel, kind string, data []byte) (any, error) {
	switch kind {
	case KindTexture:
		return &asset.Texture{Format: sniff.DetectImageFormat(data), Data: data}, nil
	case KindAudio:
		return &asset.AudioClip{Format: sniff.DetectAudioFormat(data), Data: data}, nil
	case KindSprite:
		return p.decodeSprite(rel, data)
	case KindLevel:
		var lvl grid.LevelData
		if err := json.Unmarshal(data, &lvl); err != nil {
			return nil, fmt.Errorf("level %s: %w", rel, err)
		}
		if err := lvl.Validate(); err != nil {
			return nil, fmt.Errorf("level %s: %w", rel, err)
		}
		return &lvl, nil
	case KindBlob, "":
		return &asset.Blob{Data: data}, nil
	default:
		return nil, fmt.Errorf("pack asset %s: unknown kind %q", rel, kind)
	}
}

// spriteRow is the JSON stored in a sprite row; Texture names another row
// in the same pack.
type spriteRow struct {
	Name    string       `json:"name"`
	Texture string       `json:"texture"`
	Region  asset.Region `json:"region"`
}

func (p *Pack) decodeSprite(rel string, data []byte) (any, error) {
	var sr spriteRow
	if err := json.Unmarshal(data, &sr); err != nil {
		return nil, fmt.Errorf("sprite %s: %w", rel, err)
	}
	if sr.Texture == "" {
		return nil, fmt.Errorf("sprite %s: missing texture path", rel)
	}

	texPath := asset.NormalizePath(sr.Texture)
	texValue, err := p.Load(texPath)
	if err != nil {
		return nil, fmt.Errorf("sprite %s: texture %s: %w", rel, texPath, err)
	}
	tex, ok := texValue.(*asset.Texture)
	if !ok {
		return nil, fmt.Errorf("sprite %s: texture %s is not an image", rel, texPath)
	}

	name := sr.Name
	if name == "" {
		name = strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	}
	return &asset.Sprite{Name: name, Region: sr.Region, Texture: tex}, nil
}

// KindForPath infers the pack kind for a file by the same extension rules
// the directory source uses. Used when building packs from directories.
func KindForPath(rel string) string {
	switch {
	case strings.HasSuffix(rel, ".sprite.json"):
		return KindSprite
	case strings.HasSuffix(rel, ".level.json"):
		return KindLevel
	}
	switch strings.ToLower(path.Ext(rel)) {
	case ".png", ".jpg", ".jpeg":
		return KindTexture
	case ".wav", ".ogg", ".mp3":
		return KindAudio
	default:
		return KindBlob
	}
}
