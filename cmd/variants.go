package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/backdrop/internal/scene"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the available effect sets and their layering order",
	Run:   listVariants,
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}

func listVariants(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	for _, name := range scene.Variants() {
		effects, _ := scene.Lookup(name)
		layers := make([]string, len(effects.Layers))
		for i, l := range effects.Layers {
			layers[i] = l.String()
		}
		background := "gradient"
		if effects.Background.Mode == scene.BackgroundFade {
			background = "fade"
		}
		fmt.Fprintf(out, "%-9s %s\n", name, effects.Description)
		fmt.Fprintf(out, "          %s -> %s\n", background, strings.Join(layers, " -> "))
	}
}
