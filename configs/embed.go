// Package configs embeds the default data files shipped with the binary
package configs

import "embed"

// Default paths inside FS
const (
	CropCatalogPath   = "crops.json"
	CropCatalogSchema = "schemas/crops.schema.json"
	FarmLayoutPath    = "farm.yaml"
)

// FS holds the crop catalog, its schema and the default farm layout
//
//go:embed crops.json farm.yaml schemas/*.json
var FS embed.FS
