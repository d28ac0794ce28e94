package cmd

import (
	"fmt"

	"github.com/schemasort/schemasort/internal/version"
	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display the version number of schemasort",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("schemasort v%s@%s %s %s\n", version.App(), version.GetGitCommit(), version.Platform(), version.GetBuildDate())
	},
}
