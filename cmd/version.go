package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the bitesmith version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bitesmith %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
	},
}
