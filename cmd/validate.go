// =============================================================================
// NFSe DANFSe Renderer - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks the configuration,
// the reference tables and the template without rendering anything.
//
// CHECKS:
//   1. Configuration loads and validates
//   2. Municipality tables load and are not empty
//   3. Template reads and references only known placeholders
//   4. NFSe logo exists (warning only)
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/direction/nfse-danfe/internal/render"
	"github.com/direction/nfse-danfe/pkg/utils"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check configuration, reference tables and template",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := setup()
		if err != nil {
			return err
		}
		defer s.close()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Configuration OK (base dir %s)\n", s.cfg.BaseDir)

		if err := s.loadRegistry(); err != nil {
			return err
		}
		if s.registry.Len() == 0 {
			return fmt.Errorf("municipality table %s has no valid rows", s.cfg.MunicipiosCSVPath)
		}
		fmt.Fprintf(out, "Municipality tables OK (%d municipalities)\n", s.registry.Len())

		renderer, err := s.newRenderer()
		if err != nil {
			return err
		}
		return checkTemplate(out, renderer.Template(), s.cfg.LogoNFSePath)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// checkTemplate fails on unknown tokens and reports unused placeholders and a
// missing NFSe logo.
func checkTemplate(out io.Writer, template, logoPath string) error {
	known, unknown := render.TemplateTokens(template)
	if len(unknown) > 0 {
		return fmt.Errorf("template references unknown placeholders: %v", unknown)
	}

	used := make(map[render.Placeholder]bool, len(known))
	for _, p := range known {
		used[p] = true
	}
	var unused []string
	for _, p := range render.AllPlaceholders() {
		if !used[p] {
			unused = append(unused, p.Token())
		}
	}
	fmt.Fprintf(out, "Template OK (%d placeholders)\n", len(known))
	if len(unused) > 0 {
		fmt.Fprintf(out, "  not referenced: %v\n", unused)
	}

	if !utils.FileExists(logoPath) {
		fmt.Fprintf(out, "Warning: NFSe logo %s not found; a transparent image will be used\n", logoPath)
	}
	return nil
}
