package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of skillinit, build date, Go version, and platform.`,
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Compact format matching --version: skillinit v0.1.0 (9f61316, 2026-02-02)
	fmt.Fprintf(out, "skillinit %s (%s, %s)\n", Version, shortCommit(), shortDate())
	fmt.Fprintf(out, "Go: %s\n", runtime.Version())
	fmt.Fprintf(out, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	return nil
}
