// =============================================================================
// NFSe DANFSe Renderer - Municipality Registry
// =============================================================================
//
// This module maps IBGE municipality codes to municipality records. It is
// loaded once from two reference tables:
//
//   estados    : codigo_uf, uf, ...
//   municipios : codigo_ibge, nome, latitude, longitude, capital, codigo_uf,
//                siafi_id, ddd, fuso_horario, logo, logo_name
//
// Tables may be CSV (configurable encoding) or XLSX (first sheet).
//
// LIFECYCLE:
//   NewRegistry -> Initialize (loads once) -> GetMunicipio (lock-free reads)
//
// There are no update or removal operations; the registry is read-only once
// loaded.
//
// =============================================================================

package municipio

import (
	"github.com/pkg/errors"
)

// Sentinel errors. Returned errors wrap these and can be tested with errors.Is.
var (
	// ErrResourceNotFound is returned when a reference table path does not exist.
	ErrResourceNotFound = errors.New("reference table not found")

	// ErrNotInitialized is returned by lookups before Initialize succeeded.
	ErrNotInitialized = errors.New("municipality registry not initialized")

	// ErrInvalidArgument is returned for a nil municipality code.
	ErrInvalidArgument = errors.New("municipality code must not be nil")
)

// Municipio is one row of the municipality table, joined with its state.
type Municipio struct {
	// Code is the 7-digit IBGE code.
	Code int

	Name      string
	Latitude  float64
	Longitude float64
	IsCapital bool

	// StateCode is the 2-digit IBGE state code; StateAbbreviation its UF.
	StateCode         int
	StateAbbreviation string

	// FiscalID is the SIAFI identifier.
	FiscalID int

	AreaCode string
	Timezone string

	// LogoPath points to the city hall logo image, if any.
	LogoPath string
	LogoName string
}

// DisplayName returns "Name - UF", or just the name when the UF is unknown.
func (m *Municipio) DisplayName() string {
	if m == nil {
		return ""
	}
	if m.StateAbbreviation == "" {
		return m.Name
	}
	return m.Name + " - " + m.StateAbbreviation
}
