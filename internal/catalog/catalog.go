// Package catalog loads crop type definitions and serves them as the crop
// metadata the saver needs (valid seasons and regrow interval).
package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/SychO3/SMAPIDedicatedServerMod/configs"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/validation"
)

// Config is the JSON shape of a crop catalog file
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	Crops       []Def  `json:"crops"`
}

// Def describes one crop type
type Def struct {
	Kind       string   `json:"kind"`
	Name       string   `json:"name"`
	SpriteRow  int      `json:"sprite_row"`
	Seasons    []string `json:"seasons"`
	PhaseDays  []int    `json:"phase_days"`
	RegrowDays int      `json:"regrow_days"`
	ForageKind string   `json:"forage_kind,omitempty"`
}

// Regrows reports whether the crop stays planted after harvest
func (d Def) Regrows() bool {
	return d.RegrowDays > 0
}

// Catalog is an immutable set of crop definitions keyed by kind
type Catalog struct {
	version string
	defs    map[string]Def
	order   []string
}

// LoadDefault loads the catalog embedded in the binary
func LoadDefault() (*Catalog, error) {
	return LoadFS(configs.FS, configs.CropCatalogPath)
}

// Load reads a catalog from disk. An empty path loads the embedded default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return LoadDefault()
	}
	return LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadFS reads, schema-checks and validates the catalog at path in fsys
func LoadFS(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, path, err)
	}

	schemas := validation.NewSchemaValidator(configs.FS)
	if err := schemas.ValidateBytes(data, configs.CropCatalogSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgCatalogSchema, path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	return New(cfg)
}

// New validates cfg and builds a Catalog from it. Season names are lowercased.
func New(cfg Config) (*Catalog, error) {
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	lower := cases.Lower(language.Und)
	c := &Catalog{
		version: cfg.Version,
		defs:    make(map[string]Def, len(cfg.Crops)),
		order:   make([]string, 0, len(cfg.Crops)),
	}
	for _, def := range cfg.Crops {
		seasons := make([]string, 0, len(def.Seasons))
		for _, s := range def.Seasons {
			seasons = append(seasons, lower.String(s))
		}
		def.Seasons = seasons
		def.PhaseDays = slices.Clone(def.PhaseDays)

		c.defs[def.Kind] = def
		c.order = append(c.order, def.Kind)
	}
	return c, nil
}

// Validate checks the catalog for errors the schema cannot express
func Validate(cfg *Config) error {
	if cfg == nil || len(cfg.Crops) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, ErrMsgNoCropsDefined)
	}

	lower := cases.Lower(language.Und)
	kinds := make(map[string]bool, len(cfg.Crops))
	for i, def := range cfg.Crops {
		if def.Kind == "" {
			return fmt.Errorf(ErrFmtCropAtIndexNoKind, domain.ErrInvalidConfig, i)
		}
		if kinds[def.Kind] {
			return fmt.Errorf(ErrFmtDuplicateKind, domain.ErrInvalidConfig, def.Kind)
		}
		kinds[def.Kind] = true

		if len(def.PhaseDays) == 0 {
			return fmt.Errorf(ErrFmtNoPhases, domain.ErrInvalidConfig, def.Kind)
		}
		for _, s := range def.Seasons {
			if !domain.IsSeason(lower.String(s)) {
				return fmt.Errorf(ErrFmtUnknownSeason, domain.ErrInvalidConfig, def.Kind, s)
			}
		}
	}
	return nil
}

// CropData implements cropsaver.CropDataProvider
func (c *Catalog) CropData(kind string) (domain.CropMetadata, error) {
	def, ok := c.defs[kind]
	if !ok {
		return domain.CropMetadata{}, fmt.Errorf("%w: %s", domain.ErrCropDataNotFound, kind)
	}
	return domain.CropMetadata{
		Seasons:    slices.Clone(def.Seasons),
		RegrowDays: def.RegrowDays,
	}, nil
}

// Def returns the full definition for kind
func (c *Catalog) Def(kind string) (Def, bool) {
	def, ok := c.defs[kind]
	if !ok {
		return Def{}, false
	}
	def.Seasons = slices.Clone(def.Seasons)
	def.PhaseDays = slices.Clone(def.PhaseDays)
	return def, true
}

// Kinds lists every crop kind in file order
func (c *Catalog) Kinds() []string {
	return slices.Clone(c.order)
}

// Version returns the catalog file version
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of crop types
func (c *Catalog) Len() int {
	return len(c.defs)
}
