package checks

import "path/filepath"

const (
	// SourceFile is the server source that must reference every asset.
	SourceFile = "src/main.rs"

	// TemplateMarker prefixes every template reference in SourceFile.
	TemplateMarker = "../templates/"
	// StaticMarker prefixes every static file reference in SourceFile.
	StaticMarker = "../static/"

	// KindTemplate labels template diagnostics.
	KindTemplate = "template"
	// KindStatic labels static file diagnostics.
	KindStatic = "static file"
)

// Category describes one asset directory and how its entries are referenced.
type Category struct {
	// Kind is the label used in diagnostics ("template", "static file").
	Kind string `json:"kind"`
	// Dir is the directory holding the assets, relative to the repository root.
	Dir string `json:"dir"`
	// Pattern selects entries inside Dir (filepath.Match syntax).
	Pattern string `json:"pattern"`
	// Marker is prepended to the base name to build the expected reference.
	Marker string `json:"marker"`
}

// Layout binds the source file to the asset categories it must reference.
type Layout struct {
	Source     string
	Categories []Category
}

// DefaultLayout returns the repository layout checked in CI.
func DefaultLayout() Layout {
	return Layout{
		Source: SourceFile,
		Categories: []Category{
			{Kind: KindTemplate, Dir: "templates", Pattern: "*.tera", Marker: TemplateMarker},
			{Kind: KindStatic, Dir: "static", Pattern: "*", Marker: StaticMarker},
		},
	}
}

// SourceName is the base name of the source file, as shown in diagnostics.
func (l Layout) SourceName() string {
	return filepath.Base(l.Source)
}

// Markers returns the marker of every category, in category order.
func (l Layout) Markers() []string {
	markers := make([]string, 0, len(l.Categories))
	for _, c := range l.Categories {
		markers = append(markers, c.Marker)
	}
	return markers
}

// Only returns a copy of the layout restricted to the categories of the given kind.
func (l Layout) Only(kind string) Layout {
	out := Layout{Source: l.Source}
	for _, c := range l.Categories {
		if c.Kind == kind {
			out.Categories = append(out.Categories, c)
		}
	}
	return out
}
