package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/qyinm/bites/catalog"
	"github.com/qyinm/bites/types"
	"github.com/spf13/cobra"
)

var errUnsupportedExport = errors.New("unsupported export format")

type exporter func(io.Writer, []types.Item) error

var exporters = map[string]exporter{
	".xlsx": catalog.WriteXLSX,
	".yaml": catalog.EncodeYAML,
	".yml":  catalog.EncodeYAML,
}

func newExportCmd(flags *galleryFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the visible items to an .xlsx or .yaml catalog file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, s, err := flags.session(cmd.Context())
			if err != nil {
				return err
			}
			visible := s.Visible()
			if err := exportItems(out, visible); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d items to %s\n", len(visible), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file; the extension picks the format (.xlsx, .yaml, .yml)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// exportItems writes items to path in the format chosen by its extension.
// The file is only created once the format is known.
func exportItems(path string, items []types.Item) error {
	write, ok := exporters[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return fmt.Errorf("%w: %s (expected .xlsx, .yaml or .yml)", errUnsupportedExport, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	if err := write(f, items); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}
