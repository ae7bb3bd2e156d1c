package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adaptifocus/adaptifocus/internal/pattern"
	"github.com/adaptifocus/adaptifocus/internal/scorer"
)

var modelCmd = &cobra.Command{
	Use:   "model <artifact.json>",
	Short: "Validate a scoring model artifact and print its details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ms, err := scorer.LoadModel(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("version: %s\n", ms.Version())
		fmt.Printf("trees:   %d\n", ms.TreeCount())
		fmt.Println("features:")
		for i, name := range pattern.FeatureNames {
			fmt.Printf("  %2d  %s\n", i, name)
		}
		return nil
	},
}
