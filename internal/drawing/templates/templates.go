// Package templates resolves named drawing templates (layers, text styles,
// cover overrides) from a manifest that is read once and memoized (spec
// §4.M, Template Loader).
package templates

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/despacho/internal/drawing/domain"
)

// LayerStyle mirrors a DXF-like layer definition.
type LayerStyle struct {
	Name       string  `yaml:"name"`
	Color      int     `yaml:"color"`
	Lineweight float64 `yaml:"lineweight"`
	Linetype   string  `yaml:"linetype"`
}

// TextStyle mirrors a DXF-like text style definition.
type TextStyle struct {
	Name   string  `yaml:"name"`
	Height float64 `yaml:"height"`
	Font   string  `yaml:"font"`
}

// Config is one resolved named template.
type Config struct {
	Key              string
	Locale           string
	Units            domain.Units
	Layers           map[string]LayerStyle
	TextStyles       map[string]TextStyle
	Metadata         map[string]any
	CoverCMOverride  *int
}

// LayerName resolves an alias to its configured layer name, falling back to
// fallback (or the alias itself) when undefined.
func (c Config) LayerName(alias, fallback string) string {
	if style, ok := c.Layers[alias]; ok {
		return style.Name
	}
	if fallback != "" {
		return fallback
	}
	return alias
}

// LayerStyle returns the alias's style, if configured.
func (c Config) LayerStyle(alias string) (LayerStyle, bool) {
	s, ok := c.Layers[alias]
	return s, ok
}

// TextStyleOrFallback resolves alias to a text style, falling back to the
// named fallback style (a bare style of that name when the template lacks
// it), or, when fallback is empty, to a bare "Standard" style.
func (c Config) TextStyleOrFallback(alias, fallback string) TextStyle {
	if s, ok := c.TextStyles[alias]; ok {
		return s
	}
	if fallback != "" {
		if s, ok := c.TextStyles[fallback]; ok {
			return s
		}
		return TextStyle{Name: fallback}
	}
	return TextStyle{Name: "Standard"}
}

// CoverCM resolves the template's cover override, or fallbackCoverCM.
func (c Config) CoverCM(fallbackCoverCM int) int {
	if c.CoverCMOverride != nil && *c.CoverCMOverride > 0 {
		return *c.CoverCMOverride
	}
	return fallbackCoverCM
}

const DefaultKey = "beam/default"

var defaultLayers = map[string]LayerStyle{
	"beam_outline":    {Name: "C-VIGA", Color: 7, Lineweight: 0.50},
	"beam_hatch":      {Name: "C-VIGA-HATCH", Color: 7, Lineweight: 0.10},
	"supports":        {Name: "C-APOYO", Color: 8, Lineweight: 0.35},
	"axes":            {Name: "C-EJES", Color: 5, Lineweight: 0.18, Linetype: "CENTER"},
	"rebar_main":      {Name: "A-REB-MAIN", Color: 1, Lineweight: 0.35},
	"rebar_stirrups":  {Name: "A-REB-EST", Color: 3, Lineweight: 0.25},
	"dimensions":      {Name: "C-COTAS", Color: 4, Lineweight: 0.18},
	"text":            {Name: "C-TEXT", Color: 7, Lineweight: 0.18},
	"title_block":     {Name: "A-CART", Color: 7, Lineweight: 0.25},
}

var defaultTextStyles = map[string]TextStyle{
	"labels":     {Name: "T-LABELS", Height: 3.0},
	"dimensions": {Name: "T-DIMS", Height: 2.5},
	"title":      {Name: "T-TITLE", Height: 4.0},
}

var defaultConfig = Config{
	Key:    DefaultKey,
	Locale: "es-CO",
	Units:  domain.DefaultUnits,
	Layers: defaultLayers,
	TextStyles: defaultTextStyles,
	Metadata: map[string]any{
		"title_block_label": "DESPIECE DE VIGA",
		"notes":             []string{"Norma NSR-10", "fc' y fy según especificación"},
	},
}

type manifestEntry struct {
	Key             string                `yaml:"key"`
	Locale          string                `yaml:"locale"`
	Units           *domain.Units         `yaml:"units"`
	Layers          map[string]LayerStyle `yaml:"layers"`
	TextStyles      map[string]TextStyle  `yaml:"text_styles"`
	Metadata        map[string]any        `yaml:"metadata"`
	CoverCMOverride *int                  `yaml:"cover_cm_override"`
}

type manifestFile struct {
	Templates []manifestEntry `yaml:"templates"`
}

var (
	manifestOnce sync.Once
	manifest     map[string]Config
)

// ManifestPath is the on-disk path the loader reads; it may be overridden
// before the first call to Get/List (e.g. via DESPACHO_TEMPLATE_MANIFEST).
var ManifestPath = "assets/templates_manifest.yaml"

func loadManifest() map[string]Config {
	manifestOnce.Do(func() {
		manifest = map[string]Config{DefaultKey: defaultConfig}

		raw, err := os.ReadFile(ManifestPath)
		if err != nil {
			return
		}
		var file manifestFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return
		}
		for _, entry := range file.Templates {
			cfg := Config{
				Key:             entry.Key,
				Locale:          orDefault(entry.Locale, defaultConfig.Locale),
				Units:           domain.DefaultUnits,
				Layers:          defaultLayers,
				TextStyles:      defaultTextStyles,
				Metadata:        entry.Metadata,
				CoverCMOverride: entry.CoverCMOverride,
			}
			if entry.Units != nil {
				cfg.Units = *entry.Units
			}
			if len(entry.Layers) > 0 {
				cfg.Layers = entry.Layers
			}
			if len(entry.TextStyles) > 0 {
				cfg.TextStyles = entry.TextStyles
			}
			manifest[entry.Key] = cfg
		}
	})
	return manifest
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// Get resolves templateKey to its Config; unknown keys resolve silently to
// the default template (spec §4.M, §7 UnknownTemplate).
func Get(templateKey string) Config {
	m := loadManifest()
	if templateKey != "" {
		if cfg, ok := m[templateKey]; ok {
			return cfg
		}
	}
	return m[DefaultKey]
}

// List returns every known template's summary.
func List() []Config {
	m := loadManifest()
	out := make([]Config, 0, len(m))
	for _, cfg := range m {
		out = append(out, cfg)
	}
	return out
}

// DebugDump formats cfg as "key (locale)" for one-line debug output.
func DebugDump(cfg Config) string {
	return fmt.Sprintf("%s (%s)", cfg.Key, cfg.Locale)
}
