package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Printf("analysis-simulator %s\n", version)
		fmt.Printf("  go: %s\n", runtime.Version())
		fmt.Printf("  os: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
