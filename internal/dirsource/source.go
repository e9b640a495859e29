// Package dirsource loads assets from a directory tree. Relative asset
// paths map to files under the root; the file extension selects the
// payload type. A companion Watcher propagates on-disk edits back into an
// asset source so cached handles hot-reload.
package dirsource

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gladeworks/depot/pkg/asset"
	"github.com/gladeworks/depot/pkg/grid"
	"github.com/gladeworks/depot/pkg/sniff"
)

// Compound extensions handled before the plain-extension switch.
const (
	spriteSuffix = ".sprite.json"
	levelSuffix  = ".level.json"
)

// Dir is an asset.Loader rooted at a directory.
type Dir struct {
	root string
	log  *slog.Logger
}

// New creates a loader rooted at root. The directory must exist.
func New(root string) (*Dir, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve asset root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("asset root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset root %s is not a directory", abs)
	}
	return &Dir{root: abs, log: slog.Default()}, nil
}

// Root returns the absolute root directory.
func (d *Dir) Root() string {
	return d.root
}

// Load implements asset.Loader. A missing file is a clean miss
// (asset.ErrNotFound); read and decode failures are internal errors for
// the owning source to suppress.
func (d *Dir) Load(rel string) (any, error) {
	full, err := d.resolve(rel)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, asset.ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", rel, err)
	}
	return d.decode(rel, data)
}

// resolve maps a normalized relative path to an absolute file path under
// the root. Paths that clean outside the root are treated as absent rather
// than reaching into the surrounding filesystem.
func (d *Dir) resolve(rel string) (string, error) {
	// Rooted clean: "../x" collapses to "/x" and stays inside the root.
	clean := path.Clean("/" + rel)
	full := filepath.Join(d.root, filepath.FromSlash(clean))
	if full != d.root && !strings.HasPrefix(full, d.root+string(filepath.Separator)) {
		return "", asset.ErrNotFound
	}
	return full, nil
}

// decode picks the payload type from the file name. Unrecognized
// extensions cache as raw blobs.
func (d *Dir) decode(rel string, data []byte) (any, error) {
	switch {
	case strings.HasSuffix(rel, spriteSuffix):
		return d.decodeSprite(rel, data)
	case strings.HasSuffix(rel, levelSuffix):
		return decodeLevel(rel, data)
	}

	switch strings.ToLower(path.Ext(rel)) {
	case ".png", ".jpg", ".jpeg":
		return &asset.Texture{Format: sniff.DetectImageFormat(data), Data: data}, nil
	case ".wav", ".ogg", ".mp3":
		return &asset.AudioClip{Format: sniff.DetectAudioFormat(data), Data: data}, nil
	default:
		return &asset.Blob{Data: data}, nil
	}
}

// spriteFile is the on-disk sprite description. Texture is a root-relative
// asset path.
type spriteFile struct {
	Name    string       `json:"name"`
	Texture string       `json:"texture"`
	Region  asset.Region `json:"region"`
}

func (d *Dir) decodeSprite(rel string, data []byte) (any, error) {
	var sf spriteFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("sprite %s: %w", rel, err)
	}
	if sf.Texture == "" {
		return nil, fmt.Errorf("sprite %s: missing texture path", rel)
	}

	texPath := asset.NormalizePath(sf.Texture)
	texValue, err := d.Load(texPath)
	if err != nil {
		return nil, fmt.Errorf("sprite %s: texture %s: %w", rel, texPath, err)
	}
	tex, ok := texValue.(*asset.Texture)
	if !ok {
		return nil, fmt.Errorf("sprite %s: texture %s is not an image", rel, texPath)
	}

	name := sf.Name
	if name == "" {
		name = strings.TrimSuffix(path.Base(rel), spriteSuffix)
	}
	return &asset.Sprite{Name: name, Region: sf.Region, Texture: tex}, nil
}

func decodeLevel(rel string, data []byte) (any, error) {
	var lvl grid.LevelData
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("level %s: %w", rel, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", rel, err)
	}
	return &lvl, nil
}
