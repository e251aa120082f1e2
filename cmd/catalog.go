package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/wallgen/internal/blend"
	"github.com/AnyUserName/wallgen/internal/palette"
	"github.com/AnyUserName/wallgen/internal/pattern"
	"github.com/AnyUserName/wallgen/internal/profile"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the built-in color palettes",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println()
		for i, p := range palette.Catalog() {
			var ls []string
			for _, l := range p.Lightness() {
				ls = append(ls, fmt.Sprintf("%3.0f", l*100))
			}
			fmt.Printf("  %2d  %s   L* %s\n", i, strings.Join(p.Hex(), " "), strings.Join(ls, " "))
		}
		fmt.Println()
		return nil
	},
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the phone resolutions used when no size is given",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println()
		for _, p := range profile.All() {
			fmt.Printf("  %-18s %5d × %-5d  %.3f\n",
				p.Name, p.Width, p.Height, float64(p.Height)/float64(p.Width))
		}
		fmt.Println()
		return nil
	},
}

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List pattern layer generators and blend modes",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		var modes []string
		for _, m := range blend.All() {
			modes = append(modes, m.String())
		}
		fmt.Println()
		fmt.Printf("  Patterns:    %s\n", strings.Join(pattern.Names(), ", "))
		fmt.Printf("  Blend modes: %s\n", strings.Join(modes, ", "))
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(palettesCmd, devicesCmd, patternsCmd)
}
