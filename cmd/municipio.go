// =============================================================================
// NFSe DANFSe Renderer - Municipio Command
// =============================================================================
//
// This file defines the 'municipio' command, which looks up IBGE codes in the
// configured reference tables.
//
// COMMAND USAGE:
//   danfe municipio 3550308 3304557
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/direction/nfse-danfe/internal/municipio"
	"github.com/spf13/cobra"
)

var municipioCmd = &cobra.Command{
	Use:   "municipio <ibge code>...",
	Short: "Look up municipalities by IBGE code",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := setup()
		if err != nil {
			return err
		}
		defer s.close()

		if err := s.loadRegistry(); err != nil {
			return err
		}
		return printMunicipios(cmd.OutOrStdout(), s.registry, args)
	},
}

func init() {
	rootCmd.AddCommand(municipioCmd)
}

// printMunicipios writes one block per code. Unknown codes are reported and
// counted; the command fails when none was found.
func printMunicipios(out io.Writer, registry *municipio.Registry, codes []string) error {
	found := 0
	for _, arg := range codes {
		code, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(out, "%s: not a numeric IBGE code\n", arg)
			continue
		}
		m, err := registry.GetMunicipio(&code)
		if err != nil {
			return err
		}
		if m == nil {
			fmt.Fprintf(out, "%d: not found\n", code)
			continue
		}
		found++
		fmt.Fprintf(out, "%d: %s\n", m.Code, m.DisplayName())
		fmt.Fprintf(out, "  Capital:  %t\n", m.IsCapital)
		fmt.Fprintf(out, "  Position: %.4f, %.4f\n", m.Latitude, m.Longitude)
		if m.AreaCode != "" {
			fmt.Fprintf(out, "  DDD:      %s\n", m.AreaCode)
		}
		if m.Timezone != "" {
			fmt.Fprintf(out, "  Timezone: %s\n", m.Timezone)
		}
		if m.LogoPath != "" {
			fmt.Fprintf(out, "  Logo:     %s (%s)\n", m.LogoPath, m.LogoName)
		}
	}
	if found == 0 {
		return fmt.Errorf("no municipality found")
	}
	return nil
}
