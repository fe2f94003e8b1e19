package nfse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/net/html/charset"
)

// ErrMalformedDocument is returned when the input is not a decodable NFSe.
var ErrMalformedDocument = errors.New("malformed NFSe document")

// Decode reads one NFSe XML document from r. Declared character sets other
// than UTF-8 (ISO-8859-1 is common in municipal exports) are converted.
func Decode(r io.Reader) (*NFSe, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var doc NFSe
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &doc, nil
}

// DecodeBytes decodes an NFSe from raw XML.
func DecodeBytes(data []byte) (*NFSe, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeString decodes an NFSe from XML text.
func DecodeString(text string) (*NFSe, error) {
	return Decode(strings.NewReader(text))
}

// DecodeFile opens and decodes the NFSe at path.
func DecodeFile(path string) (*NFSe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// SchemaVersion returns the layout version declared by the document: the
// DPS versao attribute, then the NFSe one. Empty when neither is set.
func (x *NFSe) SchemaVersion() string {
	if v := Str(x.GetInfNFSe().GetDPS().GetVersao()); v != "" {
		return v
	}
	return Str(x.GetVersao())
}

// =============================================================================
// LEAF HELPERS
// =============================================================================

// Str dereferences a string leaf, trimming whitespace. Nil yields "".
func Str(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// IntOr dereferences an int leaf, or returns def when nil.
func IntOr(n *int, def int) int {
	if n == nil {
		return def
	}
	return *n
}

// DecOr dereferences a decimal leaf, or returns zero when nil.
func DecOr(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
