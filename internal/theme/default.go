// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package theme

// Default returns the project's canonical style configuration.
// Every call returns a fresh value, so callers may modify the result.
func Default() StyleConfig {
	return StyleConfig{
		Content: []string{
			"./web/public/**/*.html",
			"./web/src/**/*.css",
		},
		Theme: Theme{
			Extend: Extension{
				FontFamily: map[string]FontStack{
					"sans":    {"Outfit", "system-ui", "sans-serif"},
					"display": {"Syne", "system-ui", "sans-serif"},
				},
				Colors: map[string]ColorRamp{
					"traqr": {
						50:  "#f0fdf7",
						100: "#dcfceb",
						200: "#bbf7d6",
						300: "#86efb4",
						400: "#4ade8a",
						500: "#22c55e",
						600: "#16a34a",
						700: "#15803d",
						800: "#166534",
						900: "#14532d",
						950: "#052e16",
					},
					"ink": {
						50:  "#f8fafc",
						100: "#f1f5f9",
						200: "#e2e8f0",
						300: "#cbd5e1",
						400: "#94a3b8",
						500: "#64748b",
						600: "#475569",
						700: "#334155",
						800: "#1e293b",
						900: "#0f172a",
						950: "#020617",
					},
				},
				Animation: map[string]string{
					"fade-in":  "fadeIn 0.5s ease-out",
					"slide-up": "slideUp 0.5s ease-out",
				},
				Keyframes: map[string]Keyframes{
					"fadeIn": {
						"0%":   {"opacity": "0"},
						"100%": {"opacity": "1"},
					},
					"slideUp": {
						"0%":   {"opacity": "0", "transform": "translateY(12px)"},
						"100%": {"opacity": "1", "transform": "translateY(0)"},
					},
				},
			},
		},
		Plugins: []string{},
	}
}
