package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/runecast/preview"
	"github.com/lixenwraith/runecast/spell"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and export spell catalogs",
	Long:  `Commands for listing the active spell catalog, printing its JSON schema, exporting it and rendering spell previews.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List spells in slot order",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of a catalog file",
	Args:  cobra.NoArgs,
	RunE:  runCatalogSchema,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active catalog as yaml, toml or json",
	Long: `Write the active catalog to stdout in the given format.

Example:
  runecast catalog export --format toml > spells.toml`,
	Args: cobra.NoArgs,
	RunE: runCatalogExport,
}

var catalogPreviewCmd = &cobra.Command{
	Use:   "preview <spell-id>",
	Short: "Render a spell's guide path to PNG",
	Long: `Render a spell's reference path to a PNG image.

Example:
  runecast catalog preview ember-ring -o ember.png --size 512`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogPreview,
}

var (
	exportFormat string
	previewOut   string
	previewSize  int
	previewLabel bool
)

func init() {
	catalogExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "output format: yaml, toml, json")
	catalogPreviewCmd.Flags().StringVarP(&previewOut, "output", "o", "", "output file (default <spell-id>.png)")
	catalogPreviewCmd.Flags().IntVar(&previewSize, "size", preview.DefaultSize, "image side in pixels")
	catalogPreviewCmd.Flags().BoolVar(&previewLabel, "label", true, "draw the spell name")

	catalogCmd.AddCommand(catalogListCmd, catalogSchemaCmd, catalogExportCmd, catalogPreviewCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderCatalog(catalog.All()))
	return nil
}

func runCatalogSchema(cmd *cobra.Command, args []string) error {
	data, err := spell.CatalogSchema()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(append(data, '\n'))
	return err
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}
	data, err := encodeCatalog(catalog.Document(), exportFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func encodeCatalog(doc spell.CatalogDocument, format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		return yaml.Marshal(doc)
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("encoding toml: %w", err)
		}
		return buf.Bytes(), nil
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("unknown format %q (want yaml, toml or json)", format)
}

func runCatalogPreview(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}
	def, err := catalog.Get(args[0])
	if err != nil {
		return err
	}

	out := previewOut
	if out == "" {
		out = def.ID + ".png"
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}

	if err := preview.WritePNG(f, def, preview.Options{Size: previewSize, Label: previewLabel}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
	return nil
}
