// =============================================================================
// NFSe DANFSe Renderer - Main Entry Point
// =============================================================================
//
// USAGE:
//   danfe render       - Render NFSe XML documents as DANFSe PDF
//   danfe municipio    - Look up municipalities by IBGE code
//   danfe validate     - Check configuration, reference tables and template
//   danfe version      - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Document model, renderer, registry, PDF conversion
//   - pkg/       : File handling shared by the commands
//   - assets/    : Reference tables and logos
//
// =============================================================================

package main

import (
	"github.com/direction/nfse-danfe/cmd"
)

func main() {
	cmd.Execute()
}
