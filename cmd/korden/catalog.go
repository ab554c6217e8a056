package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/korden-tech/korden/pkg/catalog"
)

func newCatalogCommand() *cobra.Command {
	var category, query, format string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List products matching a filter",
		Long: `Runs the same filter as the products page. Categories: All, ` +
			categoryList() + `.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := catalog.Filter{Category: catalog.Category(category), Query: strings.TrimSpace(query)}
			if !f.Category.Valid() {
				return fmt.Errorf("unknown category %q", category)
			}
			return printCatalog(cmd.OutOrStdout(), f, catalog.Default(), format)
		},
	}

	cmd.Flags().StringVar(&category, "category", string(catalog.All), "Category to show")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive text to look for in names and descriptions")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json or yaml")

	return cmd
}

func categoryList() string {
	names := make([]string, len(catalog.Categories))
	for i, c := range catalog.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// catalogResult mirrors the /api/products response
type catalogResult struct {
	Filter   catalog.Filter    `json:"filter" yaml:"filter"`
	Count    int               `json:"count" yaml:"count"`
	Products []catalog.Product `json:"products" yaml:"products"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))
)

func printCatalog(w io.Writer, f catalog.Filter, products []catalog.Product, format string) error {
	matches := f.Apply(products)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(catalogResult{Filter: f, Count: len(matches), Products: matches})
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(catalogResult{Filter: f, Count: len(matches), Products: matches}); err != nil {
			return err
		}
		return enc.Close()
	case "table":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if len(matches) == 0 {
		fmt.Fprintln(w, "No products found matching your criteria.")
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers("ID", "NAME", "CATEGORY", "SPECS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, p := range matches {
		t.Row(p.ID, p.Name, string(p.Category), strings.Join(p.Specs, ", "))
	}
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Showing %d of %d products", len(matches), len(products))))
	return nil
}
