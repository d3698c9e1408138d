package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Complete:   "#5FD75F",
		Incomplete: "#5F87D7",

		WarningFg: "#FFD700",
		ErrorFg:   "#FF0000",
	}
}
