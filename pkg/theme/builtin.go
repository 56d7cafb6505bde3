package theme

// registerBuiltins seeds a registry with the standard flat theme collection.
func registerBuiltins(r *Registry) {
	for _, def := range []Definition{
		thCosmo(), thFlatly(), thJournal(), thLitera(), thLumen(),
		thMinty(), thPulse(), thSandstone(), thUnited(), thYeti(),
		thDarkly(), thCyborg(), thSuperhero(), thSolar(),
	} {
		// Built-in names are distinct, so Register cannot fail here.
		_ = r.Register(def, false)
	}
}

// thCosmo returns the cosmo light theme (cobalt blue primary).
func thCosmo() Definition {
	return Definition{
		Name: "cosmo",
		Kind: KindLight,
		Palette: Palette{
			Primary:   "#2780e3",
			Secondary: "#373a3c",
			Success:   "#3fb618",
			Info:      "#9954bb",
			Warning:   "#ff7518",
			Danger:    "#ff0039",
			Light:     "#f8f9fa",
			Dark:      "#373a3c",
			Bg:        "#ffffff",
			Fg:        "#373a3c",
			SelectBg:  "#7fb3f1",
			SelectFg:  "#ffffff",
			Border:    "#ced4da",
			InputFg:   "#373a3c",
			InputBg:   "#fdfdfe",
		},
	}
}

// thFlatly returns the flatly light theme (midnight blue primary).
func thFlatly() Definition {
	return Definition{
		Name: "flatly",
		Kind: KindLight,
		Palette: Palette{
			Primary:   "#2c3e50",
			Secondary: "#95a5a6",
			Success:   "#18bc9c",
			Info:      "#3498db",
			Warning:   "#f39c12",
			Danger:    "#e74c3c",
			Light:     "#ecf0f1",
			Dark:      "#7b8a8b",
			Bg:        "#ffffff",
			Fg:        "#2c3e50",
			SelectBg:  "#3498db",
			SelectFg:  "#ffffff",
			Border:    "#ced4da",
			InputFg:   "#2c3e50",
			InputBg:   "#fdfdfe",
		},
	}
}

// thJournal returns the journal light theme (salmon primary).
func thJournal() Definition {
	return Definition{
		Name: "journal",
		Kind: KindLight,
		Palette: Palette{
			Primary:   "#eb6864",
			Secondary: "#aaaaaa",
			Success:   "#22b24c",
			Info:      "#336699",
			Warning:   "#f5e625",
			Danger:    "#f57a00",
			Light:     "#f8f9fa",
			Dark:      "#222222",
			Bg:        "#ffffff",
			Fg:        "#222222",
			SelectBg:  "#f2a4a2",
			SelectFg:  "#ffffff",
			Border:    "#ced4da",
			InputFg:   "#222222",
			InputBg:   "#fdfdfe",
		},
	}
}

// thLitera returns the litera light theme (azure primary).
func thLitera() Definition {
	return Definition{
		Name: "litera",
		Kind: KindLight,
		Palette: Palette{
			Primary:   "#4582ec",
			Secondary: "#adb5bd",
			Success:   "#02b875",
			Info:      "#17a2b8",
			Warning:   "#f0ad4e",
			Danger:    "#d9534f",
			Light:     "#f8f9fa",
			Dark:      "#343a40",
			Bg:        "#ffffff",
			Fg:        "#343a40",
			SelectBg:  "#92b4f3",
			SelectFg:  "#ffffff",
			Border:    "#e5e5e5",
			InputFg:   "#343a40",
			InputBg:   "#fdfdfe",
		},
	}
}

// thLumen returns the lumen light theme (cerulean primary).
func thLumen() Definition {
	return Definition{
		Name: "lumen",
		Kind: KindLight,
		Palette: Palette{
			Primary:   "#158cba",
			Secondary: "#919191",
			Success:   "#28b62c",
			Info:      "#75caeb",
			Warning:   "#ff851b",
			Danger:    "#ff4136",
			Light:     "#f6f6f6",
			Dark:      "#555555",
			Bg:        "#ffffff",
			Fg:        "#555555",
			SelectBg:  "#75caeb",
			SelectFg:  "#ffffff",
			Border:    "#e7e7e7",
			InputFg:   "#555555",
			InputBg:   "#fdfdfe",
		},
	}
}

// thMinty returns the minty light theme (seafoam primary).
func thMinty() Definition {
	return Definition{
		Name: "minty",
		Kind: KindLight,
		Palette: Palette{
			Primary:   "#78c2ad",
			Secondary: "#f3969a",
			Success:   "#56cc9d",
			Info:      "#6cc3d5",
			Warning:   "#ffce67",
			Danger:    "#ff7851",
			Light:     "#f8f9fa",
			Dark:      "#343a40",
			Bg:        "#ffffff",
			Fg:        "#5a5a5a",
			SelectBg:  "#b6e2d5",
			SelectFg:  "#ffffff",
			Border:    "#ced4da",
			InputFg:   "#5a5a5a",
			InputBg:   "#fdfdfe",
		},
	}
}

// thPulse returns the pulse light theme (royal purple primary).
func thPulse() Definition {
	return Definition{
		Name: "pulse",
		Kind: KindLight,
		Palette: Palette{
			Primary:   "#593196",
			Secondary: "#a991d4",
			Success:   "#13b955",
			Info:      "#009cdc",
			Warning:   "#efa31d",
			Danger:    "#fc3939",
			Light:     "#f9f8fc",
			Dark:      "#17141f",
			Bg:        "#ffffff",
			Fg:        "#444444",
			SelectBg:  "#a991d4",
			SelectFg:  "#ffffff",
			Border:    "#cbc8d0",
			InputFg:   "#444444",
			InputBg:   "#fdfdfe",
		},
	}
}

// thSandstone returns the sandstone light theme (steel blue primary).
func thSandstone() Definition {
	return Definition{
		Name: "sandstone",
		Kind: KindLight,
		Palette: Palette{
			Primary:   "#325d88",
			Secondary: "#8e8c84",
			Success:   "#93c54b",
			Info:      "#29abe0",
			Warning:   "#f47c3c",
			Danger:    "#d9534f",
			Light:     "#f8f5f0",
			Dark:      "#3e3f3a",
			Bg:        "#ffffff",
			Fg:        "#3e3f3a",
			SelectBg:  "#8aa7c2",
			SelectFg:  "#ffffff",
			Border:    "#ced4da",
			InputFg:   "#3e3f3a",
			InputBg:   "#fdfdfe",
		},
	}
}

// thUnited returns the united light theme (ubuntu orange primary).
func thUnited() Definition {
	return Definition{
		Name: "united",
		Kind: KindLight,
		Palette: Palette{
			Primary:   "#e95420",
			Secondary: "#aea79f",
			Success:   "#38b44a",
			Info:      "#17a2b8",
			Warning:   "#efb73e",
			Danger:    "#df382c",
			Light:     "#f8f9fa",
			Dark:      "#772953",
			Bg:        "#ffffff",
			Fg:        "#333333",
			SelectBg:  "#f4a488",
			SelectFg:  "#ffffff",
			Border:    "#ced4da",
			InputFg:   "#333333",
			InputBg:   "#fdfdfe",
		},
	}
}

// thYeti returns the yeti light theme (bondi blue primary).
func thYeti() Definition {
	return Definition{
		Name: "yeti",
		Kind: KindLight,
		Palette: Palette{
			Primary:   "#008cba",
			Secondary: "#eeeeee",
			Success:   "#43ac6a",
			Info:      "#5bc0de",
			Warning:   "#e99002",
			Danger:    "#f04124",
			Light:     "#eeeeee",
			Dark:      "#222222",
			Bg:        "#ffffff",
			Fg:        "#222222",
			SelectBg:  "#7fc6dd",
			SelectFg:  "#ffffff",
			Border:    "#cccccc",
			InputFg:   "#222222",
			InputBg:   "#fdfdfe",
		},
	}
}

// thDarkly returns the darkly dark theme (dusk blue primary).
func thDarkly() Definition {
	return Definition{
		Name: "darkly",
		Kind: KindDark,
		Palette: Palette{
			Primary:   "#375a7f",
			Secondary: "#444444",
			Success:   "#00bc8c",
			Info:      "#3498db",
			Warning:   "#f39c12",
			Danger:    "#e74c3c",
			Light:     "#32383e",
			Dark:      "#111111",
			Bg:        "#222222",
			Fg:        "#ffffff",
			SelectBg:  "#555555",
			SelectFg:  "#ffffff",
			Border:    "#444444",
			InputFg:   "#ffffff",
			InputBg:   "#2f2f2f",
		},
	}
}

// thCyborg returns the cyborg dark theme (carolina blue primary).
func thCyborg() Definition {
	return Definition{
		Name: "cyborg",
		Kind: KindDark,
		Palette: Palette{
			Primary:   "#2a9fd6",
			Secondary: "#555555",
			Success:   "#77b300",
			Info:      "#9933cc",
			Warning:   "#ff8800",
			Danger:    "#cc0000",
			Light:     "#222222",
			Dark:      "#000000",
			Bg:        "#060606",
			Fg:        "#ffffff",
			SelectBg:  "#454545",
			SelectFg:  "#ffffff",
			Border:    "#282828",
			InputFg:   "#ffffff",
			InputBg:   "#191919",
		},
	}
}

// thSuperhero returns the superhero dark theme (picton blue primary).
func thSuperhero() Definition {
	return Definition{
		Name: "superhero",
		Kind: KindDark,
		Palette: Palette{
			Primary:   "#4c9be8",
			Secondary: "#4e5d6c",
			Success:   "#5cb85c",
			Info:      "#5bc0de",
			Warning:   "#f0ad4e",
			Danger:    "#d9534f",
			Light:     "#3e5368",
			Dark:      "#20374c",
			Bg:        "#2b3e50",
			Fg:        "#ffffff",
			SelectBg:  "#526170",
			SelectFg:  "#ffffff",
			Border:    "#222d3d",
			InputFg:   "#ebebeb",
			InputBg:   "#32465a",
		},
	}
}

// thSolar returns the solar dark theme (solarized gold primary).
func thSolar() Definition {
	return Definition{
		Name: "solar",
		Kind: KindDark,
		Palette: Palette{
			Primary:   "#b58900",
			Secondary: "#839496",
			Success:   "#859900",
			Info:      "#268bd2",
			Warning:   "#cb4b16",
			Danger:    "#dc322f",
			Light:     "#073642",
			Dark:      "#00252e",
			Bg:        "#002b36",
			Fg:        "#eee8d5",
			SelectBg:  "#268bd2",
			SelectFg:  "#ffffff",
			Border:    "#0b4a5a",
			InputFg:   "#93a1a1",
			InputBg:   "#073642",
		},
	}
}
