package imagecheck

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp"
)

// aiSoftwareSignatures are substrings that identify AI image generators in
// software tags and PNG text metadata
var aiSoftwareSignatures = []string{
	"stable diffusion", "midjourney", "dall-e", "dalle", "novelai",
	"automatic1111", "comfyui", "invoke", "diffusers", "sd",
	"nai diffusion", "dreamstudio", "leonardo", "firefly",
	"bing image creator", "ideogram", "playground",
}

// Metadata holds everything the local analyzer reads out of an image file
type Metadata struct {
	Width       int
	Height      int
	Format      string
	HasEXIF     bool
	CameraMake  string
	CameraModel string
	Software    string
	HasGPS      bool
	PNGText     map[string]string
}

// extractMetadata decodes the image header and collects EXIF and PNG text
// metadata. It fails only when the bytes are not a decodable image.
func extractMetadata(data []byte) (*Metadata, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	meta := &Metadata{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}

	if x, exifErr := exif.Decode(bytes.NewReader(data)); exifErr == nil {
		meta.HasEXIF = true
		if tag, err := x.Get(exif.Make); err == nil {
			meta.CameraMake, _ = tag.StringVal()
		}
		if tag, err := x.Get(exif.Model); err == nil {
			meta.CameraModel, _ = tag.StringVal()
		}
		if tag, err := x.Get(exif.Software); err == nil {
			meta.Software, _ = tag.StringVal()
		}
		if _, err := x.Get(exif.GPSLatitude); err == nil {
			meta.HasGPS = true
		}
	}

	if format == "png" {
		meta.PNGText = pngTextChunks(data)
	}

	return meta, nil
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// pngTextChunks walks the PNG chunk stream and collects tEXt and uncompressed
// iTXt entries, which is where generators like Stable Diffusion store their
// prompts and parameters.
func pngTextChunks(data []byte) map[string]string {
	if !bytes.HasPrefix(data, pngSignature) {
		return nil
	}

	text := make(map[string]string)
	offset := len(pngSignature)
	for offset+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[offset : offset+4]))
		chunkType := string(data[offset+4 : offset+8])
		dataStart := offset + 8
		dataEnd := dataStart + length
		if dataEnd > len(data) {
			break
		}
		chunk := data[dataStart:dataEnd]

		switch chunkType {
		case "tEXt":
			if i := bytes.IndexByte(chunk, 0); i > 0 {
				text[string(chunk[:i])] = string(chunk[i+1:])
			}
		case "iTXt":
			// keyword, compression flag and method, language tag,
			// translated keyword, then the text itself
			if i := bytes.IndexByte(chunk, 0); i > 0 && i+3 <= len(chunk) && chunk[i+1] == 0 {
				rest := chunk[i+3:]
				if j := bytes.IndexByte(rest, 0); j >= 0 {
					rest = rest[j+1:]
					if k := bytes.IndexByte(rest, 0); k >= 0 {
						text[string(chunk[:i])] = string(rest[k+1:])
					}
				}
			}
		case "IEND":
			return text
		}

		offset = dataEnd + 4
	}
	return text
}

// containsAISignature reports whether any known generator signature appears
// in the given lowercase string
func containsAISignature(s string) bool {
	for _, sig := range aiSoftwareSignatures {
		if strings.Contains(s, sig) {
			return true
		}
	}
	return false
}

// pngTextBlob flattens the PNG text metadata into one lowercase string for
// signature scanning
func pngTextBlob(text map[string]string) string {
	var b strings.Builder
	for key, value := range text {
		b.WriteString(strings.ToLower(key))
		b.WriteString(" ")
		b.WriteString(strings.ToLower(value))
		b.WriteString(" ")
	}
	return b.String()
}
