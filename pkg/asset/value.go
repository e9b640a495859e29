package asset

import "github.com/gladeworks/depot/pkg/sniff"

// First-party payload kinds. A handle can hold any value; these are the
// types the bundled sources produce. Loaders for other domains cache their
// own types (internal/dirsource caches *grid.LevelData for level files).

// Blob is an uninterpreted asset payload.
type Blob struct {
	Data []byte
}

// Texture is an encoded image asset together with its sniffed container
// format. Width and Height are zero when the source does not know them.
type Texture struct {
	Format sniff.ImageFormat
	Width  int
	Height int
	Data   []byte
}

// AudioClip is an encoded audio asset together with its sniffed container
// format.
type AudioClip struct {
	Format sniff.AudioFormat
	Data   []byte
}

// Region selects a rectangle of a texture, in pixels.
type Region struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Sprite pairs a named texture region with its backing texture.
type Sprite struct {
	Name    string
	Region  Region
	Texture *Texture
}
