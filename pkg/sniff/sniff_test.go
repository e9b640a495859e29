package sniff

import (
	"bytes"
	"testing"
)

// pad extends b with zero bytes up to n.
func pad(b []byte, n int) []byte {
	out := make([]byte, n)
	copy(out, b)
	return out
}

func TestDetectAudioFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want AudioFormat
	}{
		{"ogg", pad([]byte("OggS"), 12), AudioOgg},
		{"wav", append([]byte("RIFF\x10\x20\x30\x40"), []byte("WAVE")...), AudioWAV},
		{"riff without wave tag", pad([]byte("RIFFxxxxAVI "), 12), AudioUnknown},
		{"id3 tagged mpeg", pad([]byte("ID3\x04"), 12), AudioMPEG},
		{"frame sync fb", pad([]byte{0xFF, 0xFB}, 12), AudioMPEG},
		{"frame sync fa", pad([]byte{0xFF, 0xFA}, 12), AudioMPEG},
		{"frame sync wrong second byte", pad([]byte{0xFF, 0xE0}, 12), AudioUnknown},
		{"eleven bytes is too short", bytes.Repeat([]byte("O"), 11), AudioUnknown},
		{"empty", nil, AudioUnknown},
		{"garbage", pad([]byte("not an audio"), 12), AudioUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectAudioFormat(tt.data); got != tt.want {
				t.Fatalf("DetectAudioFormat = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectImageFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want ImageFormat
	}{
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 1, 2}, ImagePNG},
		{"jpeg jfif", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0, 0, 0}, ImageJPEG},
		{"jpeg exif", []byte{0xFF, 0xD8, 0xFF, 0xE1, 0, 0, 0, 0}, ImageJPEG},
		{"seven bytes is too short", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A}, ImageUnknown},
		{"empty", nil, ImageUnknown},
		{"garbage", pad([]byte("GIF89a"), 8), ImageUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectImageFormat(tt.data); got != tt.want {
				t.Fatalf("DetectImageFormat = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectIsDeterministic(t *testing.T) {
	data := pad([]byte("OggS"), 12)
	first := DetectAudioFormat(data)
	for i := 0; i < 10; i++ {
		if got := DetectAudioFormat(data); got != first {
			t.Fatalf("classification changed between calls: %v then %v", first, got)
		}
	}
}

func TestFormatStrings(t *testing.T) {
	if AudioWAV.String() != "wav" || AudioOgg.String() != "ogg" || AudioMPEG.String() != "mpeg" {
		t.Fatal("unexpected audio format names")
	}
	if AudioUnknown.String() != "unknown" || AudioFormat(99).String() != "unknown" {
		t.Fatal("unexpected unknown audio name")
	}
	if ImagePNG.String() != "png" || ImageJPEG.String() != "jpeg" || ImageUnknown.String() != "unknown" {
		t.Fatal("unexpected image format names")
	}
}
