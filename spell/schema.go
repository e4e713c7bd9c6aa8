package spell

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// CatalogSchema returns the JSON schema describing a catalog file
func CatalogSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	schema := reflector.Reflect(&CatalogDocument{})
	if schema == nil {
		return nil, fmt.Errorf("failed to reflect catalog schema")
	}
	schema.Title = "Runecast Spell Catalog"
	schema.Description = "Spell records with normalized reference paths, damage bounds and essence costs."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal catalog schema: %w", err)
	}
	return append(data, '\n'), nil
}
