// Sniff command: classify a file's content format from its magic bytes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gladeworks/depot/pkg/sniff"
)

// sniffReport is the JSON shape of one classification.
type sniffReport struct {
	File  string `json:"file"`
	Image string `json:"image"`
	Audio string `json:"audio"`
}

var sniffCmd = &cobra.Command{
	Use:   "sniff <file>",
	Short: "Classify a file's audio/image format by its magic bytes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		report := sniffReport{
			File:  args[0],
			Image: sniff.DetectImageFormat(data).String(),
			Audio: sniff.DetectAudioFormat(data).String(),
		}
		if flagJSON {
			return printJSON(report)
		}
		fmt.Printf("%s\n  image: %s\n  audio: %s\n", report.File, report.Image, report.Audio)
		return nil
	},
}
