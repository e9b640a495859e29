// Pack command: bundle a directory tree into a SQLite pack file.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gladeworks/depot/internal/packsource"
	"github.com/gladeworks/depot/pkg/asset"
)

var packCmd = &cobra.Command{
	Use:   "pack <dir> <out.pack>",
	Short: "Bundle a directory tree into a pack file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, out := args[0], args[1]

		var entries []packsource.Entry
		err := filepath.WalkDir(root, func(p string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return err
			}
			rel = asset.NormalizePath(filepath.ToSlash(rel))

			data, err := os.ReadFile(p)
			if err != nil {
				return err
			}
			entries = append(entries, packsource.Entry{
				Path: rel,
				Kind: packsource.KindForPath(rel),
				Data: data,
			})
			return nil
		})
		if err != nil {
			return fmt.Errorf("walk %s: %w", root, err)
		}

		if err := packsource.Build(out, entries); err != nil {
			return err
		}
		fmt.Printf("packed %d assets into %s\n", len(entries), out)
		return nil
	},
}
