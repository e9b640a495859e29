// Mounts command: list the sources the config mounts into the registry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mountsCmd = &cobra.Command{
	Use:   "mounts",
	Short: "List configured asset mounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mr, err := openRegistry()
		if err != nil {
			return err
		}
		defer mr.closer()

		if flagJSON {
			return printJSON(mr.mounts)
		}

		if len(mr.mounts) == 0 {
			fmt.Println("no mounts configured")
			return nil
		}
		for _, m := range mr.mounts {
			fmt.Printf("%s:/\t%s\t%s\t(source %s)\n", m.Prefix, m.Type, m.Path, m.SourceID)
		}
		return nil
	},
}
