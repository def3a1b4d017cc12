package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wudi/glyphscan/decoder"
	"github.com/wudi/glyphscan/glyph"
	"github.com/wudi/glyphscan/imageio"
	"github.com/wudi/glyphscan/raster"
	"github.com/wudi/glyphscan/render"
	"github.com/wudi/glyphscan/segment"
)

func newDumpCmd() *cobra.Command {
	var (
		scale, border int
		glyphs        bool
	)
	cmd := &cobra.Command{
		Use:   "dump <image>",
		Short: "Print the binarized grid of an image",
		Long:  `Prints the grid left after binarization and border removal, '#' for on pixels. With --glyphs each segmented glyph is printed with its classification instead.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := imageio.Load(args[0])
			if err != nil {
				return err
			}
			grid, err := decoder.New(decoder.WithScale(scale), decoder.WithBorder(border)).Grid(cmd.Context(), img)
			if err != nil {
				return err
			}
			if !glyphs {
				return render.Pixels(cmd.OutOrStdout(), grid)
			}
			return dumpGlyphs(cmd, grid)
		},
	}
	cmd.Flags().IntVar(&scale, "scale", raster.DefaultScale, "Source pixels per glyph pixel")
	cmd.Flags().IntVar(&border, "border", raster.DefaultBorder, "Border thickness in glyph pixels")
	cmd.Flags().BoolVar(&glyphs, "glyphs", false, "Print every glyph separately")
	return cmd
}

func dumpGlyphs(cmd *cobra.Command, grid raster.Grid) error {
	out := cmd.OutOrStdout()
	for i, line := range segment.Lines(grid) {
		for j, raw := range segment.Glyphs(line) {
			g, err := glyph.Normalize(raw)
			if err != nil {
				return err
			}
			sym := glyph.Decode(g)
			fmt.Fprintf(out, "line %d glyph %d: %s (%s, width %d)\n", i+1, j+1, sym, sym.Kind, g.Width)
			for _, row := range g.Rows() {
				fmt.Fprintf(out, "|%s|\n", row)
			}
		}
	}
	return nil
}
