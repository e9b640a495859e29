// Version command for the depot CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the CLI release version.
const version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the depot version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("depot", version)
	},
}
