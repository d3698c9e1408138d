package colors

// ColorScheme defines all configurable color values used by CLI output
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset" validate:"oneof=default monochrome"`

	// Primary accent color (used for headers and field labels)
	Accent string `yaml:"accent" validate:"hexcolor"`

	// Text colors
	Title  string `yaml:"title" validate:"hexcolor"`
	Subtle string `yaml:"subtle" validate:"hexcolor"` // Muted/placeholder text
	Normal string `yaml:"normal" validate:"hexcolor"`

	// Status colors
	Complete   string `yaml:"complete" validate:"hexcolor"`
	Incomplete string `yaml:"incomplete" validate:"hexcolor"`

	// Notification colors
	WarningFg string `yaml:"warning_fg" validate:"hexcolor"`
	ErrorFg   string `yaml:"error_fg" validate:"hexcolor"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Preset, preset.Preset)
	fill(&c.Accent, preset.Accent)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Complete, preset.Complete)
	fill(&c.Incomplete, preset.Incomplete)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.ErrorFg, preset.ErrorFg)
}
