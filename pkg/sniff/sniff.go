// Package sniff classifies raw asset bytes into coarse audio and image
// formats by inspecting fixed-offset magic numbers. It never parses the
// payload beyond the signature prefix.
//
// Signatures are compared as literal byte sequences, never as multi-byte
// integers, so classification does not depend on host byte order.
package sniff

import "bytes"

// AudioFormat is the coarse container format of an audio payload.
type AudioFormat int

const (
	AudioUnknown AudioFormat = iota
	AudioWAV
	AudioOgg
	AudioMPEG
)

// String returns the format name for diagnostics.
func (f AudioFormat) String() string {
	switch f {
	case AudioWAV:
		return "wav"
	case AudioOgg:
		return "ogg"
	case AudioMPEG:
		return "mpeg"
	default:
		return "unknown"
	}
}

// ImageFormat is the coarse container format of an image payload.
type ImageFormat int

const (
	ImageUnknown ImageFormat = iota
	ImagePNG
	ImageJPEG
)

// String returns the format name for diagnostics.
func (f ImageFormat) String() string {
	switch f {
	case ImagePNG:
		return "png"
	case ImageJPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// Minimum prefix lengths needed to classify. Shorter input is Unknown,
// never an error.
const (
	minAudioLen = 12
	minImageLen = 8
)

var (
	oggTag  = []byte("OggS")
	riffTag = []byte("RIFF")
	waveTag = []byte("WAVE")
	id3Tag  = []byte("ID3")

	pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegSOI      = []byte{0xFF, 0xD8, 0xFF}
)

// DetectAudioFormat classifies data by its signature prefix. It requires at
// least 12 bytes and returns AudioUnknown otherwise. MPEG streams are
// recognized either by an ID3 tag or by the 0xFF 0xFB-class frame sync
// pattern in the first two bytes.
func DetectAudioFormat(data []byte) AudioFormat {
	if len(data) < minAudioLen {
		return AudioUnknown
	}
	switch {
	case bytes.HasPrefix(data, oggTag):
		return AudioOgg
	case bytes.HasPrefix(data, riffTag) && bytes.Equal(data[8:12], waveTag):
		return AudioWAV
	case bytes.HasPrefix(data, id3Tag):
		return AudioMPEG
	case data[0] == 0xFF && data[1]|0x01 == 0xFB:
		return AudioMPEG
	default:
		return AudioUnknown
	}
}

// DetectImageFormat classifies data by its signature prefix. It requires at
// least 8 bytes and returns ImageUnknown otherwise. JPEG matches on the
// three-byte SOI marker; the fourth byte varies between JFIF flavors and is
// ignored.
func DetectImageFormat(data []byte) ImageFormat {
	if len(data) < minImageLen {
		return ImageUnknown
	}
	switch {
	case bytes.HasPrefix(data, pngSignature):
		return ImagePNG
	case bytes.HasPrefix(data, jpegSOI):
		return ImageJPEG
	default:
		return ImageUnknown
	}
}
