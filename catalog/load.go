package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/qyinm/bites/types"
)

type decoder func(io.Reader) ([]types.Item, error)

var decoders = map[string]decoder{
	".yaml": DecodeYAML,
	".yml":  DecodeYAML,
	".json": DecodeYAML,
	".xlsx": DecodeXLSX,
	".html": DecodeHTML,
	".htm":  DecodeHTML,
}

// Load builds a catalog from src: the built-in gallery when src is empty,
// an http(s) gallery page, or a local file chosen by extension.
func Load(ctx context.Context, src string) (*Catalog, error) {
	return LoadWith(ctx, NewFetcher(), src)
}

// LoadWith is Load with a caller-supplied Fetcher for remote sources.
func LoadWith(ctx context.Context, fetcher *Fetcher, src string) (*Catalog, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return Default(), nil
	}

	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		items, err := fetcher.Fetch(ctx, src)
		if err != nil {
			return nil, err
		}
		return New(items)
	}

	decode, ok := decoders[strings.ToLower(filepath.Ext(src))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, src)
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	items, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src, err)
	}
	return New(items)
}
