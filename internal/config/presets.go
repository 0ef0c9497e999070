package config

import "sort"

const au = 1.496e11 // m

// Planetary masses in kg and mean orbital speeds in m/s; positions
// alternate sides of the Sun so labels stay readable.
var presets = map[string]func() *Config{
	"sun-earth-moon": func() *Config {
		return &Config{
			Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight, Title: "orbitsim: Sun, Earth, Moon"},
			Dt:     DefaultDt,
			FPS:    DefaultFPS,
			Speed:  1,
			Scale:  DefaultScale,
			Bodies: []BodyConfig{
				{Name: "Sun", Mass: 1.98847e30, Radius: 16, Color: "#ffff00", Anchor: true},
				{Name: "Earth", Mass: 5.972e24, X: -au, VY: 29.78e3, Radius: 8, Color: "#6495ed"},
				{Name: "Moon", Mass: 7.34767309e22, X: -au - 3.844e8, VY: 29.78e3 + 1.022e3, Radius: 4, Color: "#c8c8c8"},
			},
		}
	},
	"inner-planets": func() *Config {
		return &Config{
			Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight, Title: "orbitsim: inner planets"},
			Dt:     DefaultDt,
			FPS:    DefaultFPS,
			Speed:  4,
			Scale:  1.6e-9,
			Bodies: []BodyConfig{
				{Name: "Sun", Mass: 1.98847e30, Radius: 14, Color: "#ffff00", Anchor: true},
				{Name: "Mercury", Mass: 3.30e23, X: 0.387 * au, VY: -47.4e3, Radius: 4, Color: "#828282"},
				{Name: "Venus", Mass: 4.87e24, X: 0.723 * au, VY: -35.0e3, Radius: 6, Color: "#ffffff"},
				{Name: "Earth", Mass: 5.972e24, X: -au, VY: 29.78e3, Radius: 6, Color: "#6495ed"},
				{Name: "Moon", Mass: 7.34767309e22, X: -au - 3.844e8, VY: 29.78e3 + 1.022e3, Radius: 2, Color: "#c8c8c8"},
				{Name: "Mars", Mass: 6.42e23, X: -1.524 * au, VY: 24.077e3, Radius: 5, Color: "#bc2732"},
			},
		}
	},
	"solar-system": func() *Config {
		return &Config{
			Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight, Title: "orbitsim: solar system"},
			Dt:     DefaultDt,
			FPS:    DefaultFPS,
			Speed:  24,
			Scale:  8.5e-11,
			Bodies: []BodyConfig{
				{Name: "Sun", Mass: 1.98847e30, Radius: 10, Color: "#ffff00", Anchor: true},
				{Name: "Mercury", Mass: 3.30e23, X: 0.387 * au, VY: -47.4e3, Radius: 3, Color: "#828282"},
				{Name: "Venus", Mass: 4.87e24, X: 0.723 * au, VY: -35.0e3, Radius: 4, Color: "#ffffff"},
				{Name: "Earth", Mass: 5.972e24, X: -au, VY: 29.78e3, Radius: 4, Color: "#6495ed"},
				{Name: "Mars", Mass: 6.42e23, X: -1.524 * au, VY: 24.077e3, Radius: 3, Color: "#bc2732"},
				{Name: "Jupiter", Mass: 1.898e27, X: 5.203 * au, VY: -13.07e3, Radius: 7, Color: "#ffa500"},
				{Name: "Saturn", Mass: 5.683e26, X: -9.539 * au, VY: 9.69e3, Radius: 6, Color: "#add8e6"},
				{Name: "Uranus", Mass: 8.681e25, X: 19.18 * au, VY: -6.81e3, Radius: 5, Color: "#828282"},
				{Name: "Neptune", Mass: 1.024e26, X: -30.06 * au, VY: 5.43e3, Radius: 5, Color: "#800080"},
			},
		}
	},
}

// GetPreset returns a fresh config for the named preset, or nil.
func GetPreset(name string) *Config {
	f, ok := presets[name]
	if !ok {
		return nil
	}
	return f()
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
