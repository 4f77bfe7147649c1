package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"barbell/internal/loadout"
	"barbell/internal/render"

	"github.com/spf13/cobra"
)

func formatList(ws []float64) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = loadout.FormatWeight(w)
	}
	return strings.Join(parts, ", ")
}

func printSummary(w io.Writer, l *loadout.Loadout) {
	fmt.Fprintf(w, "bar: %s\n", loadout.FormatWeight(l.BarWeight()))
	fmt.Fprintf(w, "plates: [%s]\n", formatList(l.Plates()))
	fmt.Fprintf(w, "total: %s\n", loadout.FormatWeight(l.Total()))
}

func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid weight %q", s)
	}
	return w, nil
}

func totalCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Print the total weight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), loadout.FormatWeight(e.loadout.Total()))
			return nil
		},
	}
}

func showCmd(e *env) *cobra.Command {
	var width int
	c := &cobra.Command{
		Use:   "show",
		Short: "Draw the loaded bar and print the totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := render.DefaultOptions()
			o.Shape = e.shape
			o.Viewport = width
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.Barbell(e.loadout.BarWeight(), e.loadout.Plates(), o).Text)
			printSummary(out, e.loadout)
			return nil
		},
	}
	c.Flags().IntVar(&width, "width", 0, "available columns (0 = unlimited)")
	return c
}

func addCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add WEIGHT...",
		Short: "Add plates to the bar, in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weights := make([]float64, 0, len(args))
			for _, a := range args {
				w, err := parseWeight(a)
				if err != nil {
					return err
				}
				if !loadout.IsCatalogPlate(w) {
					return fmt.Errorf("no %s plate (available: %s)", a, formatList(loadout.PlateCatalog))
				}
				weights = append(weights, w)
			}
			for _, w := range weights {
				e.loadout.AddPlate(w)
			}
			printSummary(cmd.OutOrStdout(), e.loadout)
			return nil
		},
	}
}

func removeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "remove INDEX",
		Short: "Remove the plate at a position (0 is innermost); out of range does nothing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			e.loadout.RemovePlate(i)
			printSummary(cmd.OutOrStdout(), e.loadout)
			return nil
		},
	}
}

func barCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "bar WEIGHT",
		Short: "Set the bar weight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := parseWeight(args[0])
			if err != nil {
				return err
			}
			if !loadout.IsCatalogBar(w) {
				return fmt.Errorf("no %s bar (available: %s)", args[0], formatList(loadout.BarCatalog))
			}
			e.loadout.SetBarWeight(w)
			printSummary(cmd.OutOrStdout(), e.loadout)
			return nil
		},
	}
}

func resetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default bar and remove all plates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e.loadout.Reset()
			printSummary(cmd.OutOrStdout(), e.loadout)
			return nil
		},
	}
}
