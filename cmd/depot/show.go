// Show command: resolve a fully-qualified asset path and describe the
// cached payload.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gladeworks/depot/pkg/asset"
	"github.com/gladeworks/depot/pkg/grid"
)

// assetReport is the JSON shape of one resolved asset.
type assetReport struct {
	Path   string `json:"path"`
	Prefix string `json:"prefix"`
	Rel    string `json:"rel"`
	Kind   string `json:"kind"`
	Detail string `json:"detail,omitempty"`
	Bytes  int    `json:"bytes,omitempty"`
}

var showCmd = &cobra.Command{
	Use:   "show <prefix:/path>",
	Short: "Load an asset and describe its payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mr, err := openRegistry()
		if err != nil {
			return err
		}
		defer mr.closer()

		full := args[0]
		h, err := mr.reg.GetHandle(full)
		if err != nil {
			return fmt.Errorf("%s: %w", full, err)
		}

		report := describe(full, h)
		if flagJSON {
			return printJSON(report)
		}
		fmt.Printf("%s\n  kind:  %s\n", full, report.Kind)
		if report.Detail != "" {
			fmt.Printf("  detail: %s\n", report.Detail)
		}
		if report.Bytes > 0 {
			fmt.Printf("  bytes: %d\n", report.Bytes)
		}
		return nil
	},
}

func describe(full string, h *asset.Handle) assetReport {
	prefix, rel := asset.SplitPath(full)
	report := assetReport{Path: full, Prefix: prefix, Rel: rel}

	switch v := h.Value().(type) {
	case *asset.Texture:
		report.Kind = "texture"
		report.Detail = v.Format.String()
		report.Bytes = len(v.Data)
	case *asset.AudioClip:
		report.Kind = "audio"
		report.Detail = v.Format.String()
		report.Bytes = len(v.Data)
	case *asset.Sprite:
		report.Kind = "sprite"
		report.Detail = fmt.Sprintf("%s region %dx%d+%d+%d", v.Name, v.Region.W, v.Region.H, v.Region.X, v.Region.Y)
		if v.Texture != nil {
			report.Bytes = len(v.Texture.Data)
		}
	case *grid.LevelData:
		report.Kind = "level"
		report.Detail = fmt.Sprintf("%s %dx%d", v.Name, v.Width, v.Height)
	case *asset.Blob:
		report.Kind = "blob"
		report.Bytes = len(v.Data)
	default:
		report.Kind = fmt.Sprintf("%T", v)
	}
	return report
}
