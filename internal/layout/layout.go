// Package layout holds the static catalog of workspace panel arrangements.
// This is configuration data; the runtime store lives with the other state
// containers in internal/store.
package layout

type ID string

const (
	Browser   ID = "browser"
	Transform ID = "transform"
	Review    ID = "review"
	Analyze   ID = "analyze"
)

type PanelID string

const (
	PanelFolders  PanelID = "folders"
	PanelFiles    PanelID = "files"
	PanelPreview  PanelID = "preview"
	PanelMetadata PanelID = "metadata"
	PanelTools    PanelID = "tools"
	PanelHistory  PanelID = "history"
)

type Region string

const (
	RegionLeft   Region = "left"
	RegionCenter Region = "center"
	RegionRight  Region = "right"
	RegionBottom Region = "bottom"
)

// PanelConfig places one panel inside a region. Width/Height are split
// percentages; MinWidth/MinHeight are pixel floors.
type PanelConfig struct {
	ID        PanelID `json:"id"`
	Visible   bool    `json:"visible"`
	Width     int     `json:"width,omitempty"`
	Height    int     `json:"height,omitempty"`
	MinWidth  int     `json:"min_width,omitempty"`
	MinHeight int     `json:"min_height,omitempty"`
}

type Config struct {
	ID          ID                      `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Panels      map[Region][]PanelConfig `json:"panels"`
}

// Clone deep-copies the config so callers can mutate panel flags without
// touching the catalog.
func (c Config) Clone() Config {
	cloned := c
	cloned.Panels = make(map[Region][]PanelConfig, len(c.Panels))
	for region, panels := range c.Panels {
		cloned.Panels[region] = append([]PanelConfig(nil), panels...)
	}
	return cloned
}

var catalog = map[ID]Config{
	Browser: {
		ID:          Browser,
		Name:        "Browser",
		Description: "Browse and explore your file library",
		Panels: map[Region][]PanelConfig{
			RegionLeft:   {{ID: PanelFolders, Visible: true, Width: 20, MinWidth: 150}},
			RegionCenter: {{ID: PanelFiles, Visible: true, Width: 50}},
			RegionRight:  {{ID: PanelPreview, Visible: true, Width: 30, MinWidth: 200}},
		},
	},
	Transform: {
		ID:          Transform,
		Name:        "Transform",
		Description: "Organize files with live preview",
		Panels: map[Region][]PanelConfig{
			RegionLeft:   {{ID: PanelFiles, Visible: true, Width: 40}},
			RegionCenter: {{ID: PanelTools, Visible: true, Width: 60}},
		},
	},
	Review: {
		ID:          Review,
		Name:        "Review",
		Description: "View operation history and results",
		Panels: map[Region][]PanelConfig{
			RegionLeft:  {{ID: PanelFiles, Visible: true, Width: 40}},
			RegionRight: {{ID: PanelHistory, Visible: true, Width: 60}},
		},
	},
	Analyze: {
		ID:          Analyze,
		Name:        "Analyze",
		Description: "Find duplicates and issues",
		Panels: map[Region][]PanelConfig{
			RegionCenter: {{ID: PanelFiles, Visible: true, Width: 60}},
			RegionRight:  {{ID: PanelTools, Visible: true, Width: 40}},
		},
	},
}

// Default is the layout shown before the user picks one.
const Default = Browser

// Lookup returns a copy of the catalog entry for id.
func Lookup(id ID) (Config, bool) {
	cfg, ok := catalog[id]
	if !ok {
		return Config{}, false
	}
	return cfg.Clone(), true
}

// Catalog returns copies of all predefined layouts, in a fixed order.
func Catalog() []Config {
	out := make([]Config, 0, len(catalog))
	for _, id := range []ID{Browser, Transform, Review, Analyze} {
		out = append(out, catalog[id].Clone())
	}
	return out
}
