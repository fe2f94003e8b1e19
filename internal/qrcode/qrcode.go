// Package qrcode renders the DANFSe verification QR code.
package qrcode

import (
	"encoding/base64"
	"fmt"

	goqrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the rendered image width and height in pixels.
const DefaultSize = 256

// RecoveryLevel is error correction level Q.
const RecoveryLevel = goqrcode.High

// Encoder turns text into a PNG QR code image.
type Encoder interface {
	EncodePNG(content string) ([]byte, error)
}

// PNGEncoder is the go-qrcode backed Encoder. The zero value uses DefaultSize.
// Error correction is level Q (25% recovery), which go-qrcode calls High.
type PNGEncoder struct {
	Size int
}

// NewPNGEncoder returns an encoder producing size x size images.
func NewPNGEncoder(size int) *PNGEncoder {
	return &PNGEncoder{Size: size}
}

// EncodePNG encodes content as a PNG QR code.
func (e *PNGEncoder) EncodePNG(content string) ([]byte, error) {
	size := DefaultSize
	if e != nil && e.Size > 0 {
		size = e.Size
	}
	png, err := goqrcode.Encode(content, RecoveryLevel, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}

// DataURI returns png as an inline image source.
func DataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
