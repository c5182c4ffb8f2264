// Package formats handles the format listing command.
package formats

import (
	"fmt"

	"github.com/spf13/cobra"

	"mwirth/statement-csv/internal/extractor"
)

// Cmd represents the formats command.
var Cmd = &cobra.Command{
	Use:   "formats",
	Short: "List available statement formats",
	Long:  `List the names of all registered statement formats, built-in and custom.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range extractor.FormatNames() {
			fmt.Println(name)
		}
	},
}
