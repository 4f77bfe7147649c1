package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"barbell/internal/export"

	"github.com/spf13/cobra"
)

func exportCmd(e *env) *cobra.Command {
	var format, output string
	c := &cobra.Command{
		Use:   "export",
		Short: "Write the loadout as a PDF drawing or an XLSX sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("output file required (-o)")
			}
			f, ok := export.FormatFromPath(output)
			if format != "" || !ok {
				var err error
				if f, err = export.ParseFormat(format); err != nil {
					return err
				}
			}

			snap := export.Snapshot{
				BarWeight: e.loadout.BarWeight(),
				Plates:    e.loadout.Plates(),
				Shape:     e.shape,
			}
			err := writeFile(output, func(w io.Writer) error {
				return export.Write(w, f, snap)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	c.Flags().StringVarP(&format, "format", "f", "", "pdf or xlsx (default from the output extension)")
	c.Flags().StringVarP(&output, "output", "o", "", "output file")
	return c
}

// writeFile creates path and fills it with write. A failed write removes the
// partial file.
func writeFile(path string, write func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := write(out); err != nil {
		return errors.Join(err, out.Close(), os.Remove(path))
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
