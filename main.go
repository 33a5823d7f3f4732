package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/qyinm/bites/catalog"
	"github.com/qyinm/bites/gallery"
	"github.com/qyinm/bites/logging"
	"github.com/qyinm/bites/types"
	"github.com/qyinm/bites/ui"
	"github.com/spf13/cobra"
)

// galleryFlags select what the gallery shows; every command shares them.
type galleryFlags struct {
	catalog  string
	category string
	search   string
	liked    []int
}

func (f *galleryFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.catalog, "catalog", os.Getenv("BITES_CATALOG"), "Catalog file (.yaml, .json, .xlsx, .html) or http(s) gallery page; empty uses the built-in gallery")
	cmd.PersistentFlags().StringVar(&f.category, "category", "all", "Category filter: all, desserts, drinks, food")
	cmd.PersistentFlags().StringVar(&f.search, "search", "", "Case-insensitive search over name and description")
	cmd.PersistentFlags().IntSliceVar(&f.liked, "liked", nil, "Item ids to start as favorites")
}

func (f *galleryFlags) parseCategory() (types.Category, error) {
	return types.ParseCategory(f.category)
}

// session loads the catalog and applies the flags to a fresh selection.
// Liked ids missing from the catalog are ignored.
func (f *galleryFlags) session(ctx context.Context) (*catalog.Catalog, *gallery.Session, error) {
	category, err := f.parseCategory()
	if err != nil {
		return nil, nil, err
	}
	c, err := catalog.Load(ctx, f.catalog)
	if err != nil {
		return nil, nil, err
	}

	s := gallery.NewSession(c)
	s.SelectCategory(category)
	s.SetSearch(f.search)
	for _, id := range f.liked {
		if _, ok := c.Item(id); ok && !s.IsLiked(id) {
			s.ToggleLike(id)
		}
	}
	return c, s, nil
}

func newRootCmd() *cobra.Command {
	flags := &galleryFlags{}
	var assets string

	cmd := &cobra.Command{
		Use:           "bites",
		Short:         "Browse the Delicious Bites food gallery",
		Long:          "Browse the Delicious Bites food gallery: filter by category, search, and keep favorites.\nWhen stdout is not a terminal the visible items are printed instead.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				_, s, err := flags.session(cmd.Context())
				if err != nil {
					return err
				}
				return printItems(cmd.OutOrStdout(), s)
			}
			return runTUI(cmd.Context(), flags, assets)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&assets, "assets", "", "Directory holding item images; unresolved images show a placeholder")

	cmd.AddCommand(newListCmd(flags), newCategoriesCmd(flags), newExportCmd(flags))
	return cmd
}

func runTUI(ctx context.Context, flags *galleryFlags, assets string) error {
	category, err := flags.parseCategory()
	if err != nil {
		return err
	}

	// The TUI owns the terminal; logs only go to BITES_LOG_FILE unless
	// stderr is asked for explicitly.
	logCfg := logging.ConfigFromEnv()
	if logCfg.Stderr == "" {
		logCfg.Stderr = "never"
	}
	log := logging.New("ui", logCfg)

	src := flags.catalog
	load := func() (*catalog.Catalog, error) {
		return catalog.Load(ctx, src)
	}
	m := ui.NewModel(load, ui.Options{
		AssetsDir: assets,
		Category:  category,
		Search:    flags.search,
		Liked:     flags.liked,
		Logger:    log,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run gallery: %w", err)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
