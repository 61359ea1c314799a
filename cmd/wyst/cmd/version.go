package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dev-orus/wyst/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wyst version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wyst v%s\n", version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
