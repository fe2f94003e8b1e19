// =============================================================================
// NFSe DANFSe Renderer - Version Command
// =============================================================================
//
// COMMAND USAGE:
//   danfe version
//
// OUTPUT:
//   NFSe DANFSe Renderer
//   Version:    1.0.0
//   Build Date: 2025-03-10
//   Layouts:    1.00, 1.01
//   Go Version: go1.24.0
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/direction/nfse-danfe/internal/render"
	"github.com/spf13/cobra"
)

// Version and BuildDate are set at build time:
//
//	go build -ldflags "-X 'github.com/direction/nfse-danfe/cmd.Version=1.0.0' -X 'github.com/direction/nfse-danfe/cmd.BuildDate=2025-03-10'"
var (
	Version   = "1.0.0"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the application version, build date, supported layouts and Go runtime version.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "NFSe DANFSe Renderer")
		fmt.Fprintf(out, "Version:    %s\n", Version)
		fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "Layouts:    %s\n", strings.Join(render.SupportedVersions(), ", "))
		fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
