package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Complete:   "#FFFFFF",
		Incomplete: "#D0D0D0",

		WarningFg: "#FFFFFF",
		ErrorFg:   "#FFFFFF",
	}
}
