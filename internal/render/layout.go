package render

import (
	"fmt"
	"sort"
	"strings"
)

// Supported schema versions.
const (
	V100 = "1.00"
	V101 = "1.01"

	// DefaultVersion is used when neither the request nor the document
	// declares a version.
	DefaultVersion = V101
)

// Layout holds the rules that differ between schema versions.
type Layout struct {
	Version string

	// CPFFirst prints a party's CPF when both CPF and CNPJ are present.
	CPFFirst bool

	// CancelledBanner is the markup inserted for cancelled documents.
	CancelledBanner string
}

const simpleCancelledBanner = `<div class="cancelada" style="text-align:center;font-size:32px;font-weight:bold;color:#c80000;border:4px solid #c80000;margin:8px 0;padding:8px;">NFS-e CANCELADA</div>`

const rotatedCancelledBanner = `<div style="
  position:absolute;
  top:50%;
  left:50%;
  display:inline-block;
  -webkit-transform: translate(-50%, -50%) rotate(-30deg);
  transform: translate(-50%, -50%) rotate(-30deg);
  -webkit-transform-origin: 50% 50%;
  transform-origin: 50% 50%;
  font-size:96px;
  font-weight:800;
  color: rgba(200,0,0,0.18);
  border: 8px solid rgba(200,0,0,0.18);
  padding: 20px 40px;
  text-transform:uppercase;
  z-index:9999;
  pointer-events:none;
  white-space:nowrap;">
  CANCELADA
</div>`

var layouts = map[string]Layout{
	V100: {Version: V100, CPFFirst: false, CancelledBanner: simpleCancelledBanner},
	V101: {Version: V101, CPFFirst: true, CancelledBanner: rotatedCancelledBanner},
}

// LayoutFor returns the layout for a schema version.
func LayoutFor(version string) (Layout, error) {
	l, ok := layouts[strings.TrimSpace(version)]
	if !ok {
		return Layout{}, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedVersion, version, strings.Join(SupportedVersions(), ", "))
	}
	return l, nil
}

// SupportedVersions lists the schema versions with a layout, ascending.
func SupportedVersions() []string {
	out := make([]string, 0, len(layouts))
	for v := range layouts {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
