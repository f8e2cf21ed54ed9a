package record

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validHeader = "name,description,top_symbol,side_symbol,reorder_url\n"

func TestParse(t *testing.T) {
	t.Run("parses rows in order", func(t *testing.T) {
		in := validHeader +
			"Screws,M3x8,hex,cap,https://example.com/m3\n" +
			"Nuts,M3,nut,nut,\n"
		records, err := Parse(strings.NewReader(in), ',')
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, Record{
			Name:        "Screws",
			Description: "M3x8",
			TopSymbol:   "hex",
			SideSymbol:  "cap",
			ReorderURL:  "https://example.com/m3",
		}, records[0])
		assert.Equal(t, "Nuts", records[1].Name)
		assert.Empty(t, records[1].ReorderURL)
	})

	t.Run("trims whitespace and lowercases symbols", func(t *testing.T) {
		in := validHeader + " Bolts , M5 , HEX , Cap_Head , https://example.com \n"
		records, err := Parse(strings.NewReader(in), ',')
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Bolts", records[0].Name)
		assert.Equal(t, "hex", records[0].TopSymbol)
		assert.Equal(t, "cap_head", records[0].SideSymbol)
		assert.Equal(t, "https://example.com", records[0].ReorderURL)
	})

	t.Run("header columns may be reordered", func(t *testing.T) {
		in := "reorder_url,side_symbol,top_symbol,description,name\n" +
			"https://x.test,cap,hex,M4,Widgets\n"
		records, err := Parse(strings.NewReader(in), ',')
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Widgets", records[0].Name)
		assert.Equal(t, "https://x.test", records[0].ReorderURL)
	})

	t.Run("missing columns are fatal", func(t *testing.T) {
		in := "name,description\nScrews,M3\n"
		_, err := Parse(strings.NewReader(in), ',')
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required columns")
		assert.Contains(t, err.Error(), "top_symbol")
	})

	t.Run("empty input has no header", func(t *testing.T) {
		_, err := Parse(strings.NewReader(""), ',')
		assert.ErrorContains(t, err, "no header row")
	})

	t.Run("header only yields zero records", func(t *testing.T) {
		records, err := Parse(strings.NewReader(validHeader), ',')
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("tsv delimiter chosen by extension", func(t *testing.T) {
		path := filepath.Join(dir, "parts.tsv")
		content := strings.ReplaceAll(validHeader, ",", "\t") +
			"Screws\tM3x8\thex\tcap\thttps://example.com\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		records, err := ParseFile(path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Screws", records[0].Name)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := ParseFile(filepath.Join(dir, "nope.csv"))
		assert.Error(t, err)
	})
}
