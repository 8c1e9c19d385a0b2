// Package preset manages named page geometries ("4x6 borderless", "A4
// contact sheet", …) as a hand-edited TOML document, using BurntSushi/toml
// the same way other hand-edited manifests in this codebase's ecosystem
// do. Unlike internal/config's JSON-encoded app preferences, presets are
// meant to be read and tweaked by a human, which is why they live in
// their own library and their own file format.
package preset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/piwi3910/photopack/pkg/pack"
)

// PagePreset is a named, reusable PageConfig.
type PagePreset struct {
	Name         string  `toml:"name"`
	Description  string  `toml:"description,omitempty"`
	Unit         string  `toml:"unit"` // documentation only; the core itself is unit-agnostic
	PageWidth    float64 `toml:"page_width"`
	PageHeight   float64 `toml:"page_height"`
	MarginTop    float64 `toml:"margin_top"`
	MarginRight  float64 `toml:"margin_right"`
	MarginBottom float64 `toml:"margin_bottom"`
	MarginLeft   float64 `toml:"margin_left"`
	Spacing      float64 `toml:"spacing"`
	MultiPage    bool    `toml:"multi_page"`
}

// PageConfig converts the preset to the pack.PageConfig the core expects.
func (p PagePreset) PageConfig() pack.PageConfig {
	return pack.PageConfig{
		PageWidth:    p.PageWidth,
		PageHeight:   p.PageHeight,
		MarginTop:    p.MarginTop,
		MarginRight:  p.MarginRight,
		MarginBottom: p.MarginBottom,
		MarginLeft:   p.MarginLeft,
		Spacing:      p.Spacing,
		MultiPage:    p.MultiPage,
	}
}

type document struct {
	Preset []PagePreset `toml:"preset"`
}

// Builtins returns the presets shipped with photopack. Load always starts
// from these; presets in ~/.photopack/presets.toml are added on top and
// replace a built-in of the same name.
func Builtins() []PagePreset {
	return []PagePreset{
		{
			Name: "4x6 borderless", Unit: "in",
			PageWidth: 6, PageHeight: 4,
			MarginTop: 0, MarginRight: 0, MarginBottom: 0, MarginLeft: 0,
			Spacing: 0, MultiPage: true,
		},
		{
			Name: "4x6 with margin", Unit: "in",
			PageWidth: 6, PageHeight: 4,
			MarginTop: 0.125, MarginRight: 0.125, MarginBottom: 0.125, MarginLeft: 0.125,
			Spacing: 0.0625, MultiPage: true,
		},
		{
			Name: "A4 contact sheet", Unit: "mm",
			PageWidth: 297, PageHeight: 210,
			MarginTop: 10, MarginRight: 10, MarginBottom: 10, MarginLeft: 10,
			Spacing: 2, MultiPage: true,
		},
		{
			Name: "US Letter single page", Unit: "in",
			PageWidth: 11, PageHeight: 8.5,
			MarginTop: 0.5, MarginRight: 0.5, MarginBottom: 0.5, MarginLeft: 0.5,
			Spacing: 0.125, MultiPage: false,
		},
	}
}

// Library is a name-indexed set of presets, typically the built-ins merged
// with a user's ~/.photopack/presets.toml.
type Library struct {
	byName map[string]PagePreset
	order  []string
}

func newLibrary(presets []PagePreset) *Library {
	l := &Library{byName: make(map[string]PagePreset, len(presets))}
	for _, p := range presets {
		l.put(p)
	}
	return l
}

func (l *Library) put(p PagePreset) {
	if _, exists := l.byName[p.Name]; !exists {
		l.order = append(l.order, p.Name)
	}
	l.byName[p.Name] = p
}

// Get returns the preset registered under name.
func (l *Library) Get(name string) (PagePreset, bool) {
	p, ok := l.byName[name]
	return p, ok
}

// Names returns every registered preset name, built-ins first, in
// insertion order.
func (l *Library) Names() []string {
	names := make([]string, len(l.order))
	copy(names, l.order)
	return names
}

// Load builds a Library from the built-in presets overlaid with any
// presets found in the TOML document at path. A missing file is not an
// error: the library falls back to built-ins only.
func Load(path string) (*Library, error) {
	l := newLibrary(Builtins())

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("preset: reading %s: %w", path, err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("preset: parsing %s: %w", path, err)
	}
	for _, p := range doc.Preset {
		l.put(p)
	}
	return l, nil
}

// Save writes presets to path as a TOML document, creating parent
// directories as needed. It overwrites any existing file at path; it does
// not merge with built-ins, which are never persisted.
func Save(path string, presets []PagePreset) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(document{Preset: presets})
}

// DefaultPath returns ~/.photopack/presets.toml.
func DefaultPath(configDir string) string {
	return filepath.Join(configDir, "presets.toml")
}
