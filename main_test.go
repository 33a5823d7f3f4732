package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/qyinm/bites/catalog"
	"github.com/qyinm/bites/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--catalog="}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestListPlain(t *testing.T) {
	out, err := execute(t, "list", "--category", "drinks", "--liked", "9")
	require.NoError(t, err)

	assert.Contains(t, out, "Divine Delicacy")
	assert.Contains(t, out, "Ultimate Indulgence")
	assert.NotContains(t, out, "Delicious Delight")
	assert.Contains(t, out, "♥")
	assert.Contains(t, out, "Showing 2 of 16 dishes · 4.8★ avg rating · 1 favorites")
}

func TestListEmpty(t *testing.T) {
	out, err := execute(t, "list", "--search", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No items found")
	assert.Contains(t, out, "Showing 0 of 16 dishes")
}

func TestListJSON(t *testing.T) {
	out, err := execute(t, "list", "--json", "--category", "Desserts", "--search", "sweet", "--liked", "13,999")
	require.NoError(t, err)

	var got listOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "desserts", got.Category)
	assert.Equal(t, "sweet", got.Search)
	require.Len(t, got.Items, 3)
	assert.Equal(t, []int{1, 3, 13}, []int{got.Items[0].ID, got.Items[1].ID, got.Items[2].ID})
	assert.Equal(t, []int{13}, got.Liked)
	assert.Equal(t, 3, got.Stats.Visible)
	assert.Equal(t, 1, got.Stats.Liked)
	assert.Equal(t, 16, got.Stats.Total)
}

func TestListUnknownCategory(t *testing.T) {
	_, err := execute(t, "list", "--category", "snacks")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnknownCategory))
}

func TestCategories(t *testing.T) {
	out, err := execute(t, "categories")
	require.NoError(t, err)
	assert.Equal(t, "All        16\nDesserts   7\nDrinks     2\nFood       7\n", out)
}

func TestExportXLSXReadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food.xlsx")
	out, err := execute(t, "export", "--out", path, "--category", "food")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 7 items")

	c, err := catalog.Load(t.Context(), path)
	require.NoError(t, err)
	require.Equal(t, 7, c.Len())
	for _, item := range c.Items() {
		assert.Equal(t, types.Food, item.Category())
	}
}

func TestExportYAMLReadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweet.yaml")
	_, err := execute(t, "export", "-o", path, "--search", "SWEET")
	require.NoError(t, err)

	c, err := catalog.Load(t.Context(), path)
	require.NoError(t, err)
	var ids []int
	for _, item := range c.Items() {
		ids = append(ids, item.ID())
	}
	assert.Equal(t, []int{1, 3, 13}, ids)
}

func TestExportUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	_, err := execute(t, "export", "--out", path)
	require.ErrorIs(t, err, errUnsupportedExport)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be created for an unsupported format")
}

func TestExportRequiresOut(t *testing.T) {
	_, err := execute(t, "export")
	require.Error(t, err)
}
