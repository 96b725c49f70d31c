package anchor

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Color is an RGBA color with float components in [0, 1].
type Color struct {
	R float32 `toml:"r"`
	G float32 `toml:"g"`
	B float32 `toml:"b"`
	A float32 `toml:"a"`
}

// Theme holds the styling constants widgets draw with. Themes load from TOML
// so applications can restyle without recompiling.
type Theme struct {
	StandardFontSize   int `toml:"standard_font_size"`
	ButtonFontSize     int `toml:"button_font_size"`
	TextBoxFontSize    int `toml:"text_box_font_size"`
	WindowHeaderHeight int `toml:"window_header_height"`
	WindowCornerRadius int `toml:"window_corner_radius"`
	ButtonCornerRadius int `toml:"button_corner_radius"`
	TooltipWidth       int `toml:"tooltip_width"`

	WindowFill        Color `toml:"window_fill"`
	WindowFillFocused Color `toml:"window_fill_focused"`
	WindowTitle       Color `toml:"window_title"`
	TextColor         Color `toml:"text_color"`
	DisabledTextColor Color `toml:"disabled_text_color"`
	BorderDark        Color `toml:"border_dark"`
	BorderLight       Color `toml:"border_light"`
	TooltipFill       Color `toml:"tooltip_fill"`
	TooltipText       Color `toml:"tooltip_text"`
}

var defaultTheme = Theme{
	StandardFontSize:   16,
	ButtonFontSize:     20,
	TextBoxFontSize:    20,
	WindowHeaderHeight: 30,
	WindowCornerRadius: 2,
	ButtonCornerRadius: 2,
	TooltipWidth:       150,

	WindowFill:        Color{0.17, 0.17, 0.17, 0.9},
	WindowFillFocused: Color{0.18, 0.18, 0.18, 0.9},
	WindowTitle:       Color{0.86, 0.86, 0.86, 0.63},
	TextColor:         Color{1, 1, 1, 0.63},
	DisabledTextColor: Color{1, 1, 1, 0.31},
	BorderDark:        Color{0.11, 0.11, 0.11, 1},
	BorderLight:       Color{0.36, 0.36, 0.36, 1},
	TooltipFill:       Color{0, 0, 0, 1},
	TooltipText:       Color{1, 1, 1, 1},
}

// DefaultTheme returns a fresh copy of the built-in dark theme.
func DefaultTheme() *Theme {
	t := defaultTheme
	return &t
}

// LoadTheme parses a theme from TOML data. Fields absent from the data keep
// their default values.
func LoadTheme(data []byte) (*Theme, error) {
	theme := DefaultTheme()
	if err := toml.Unmarshal(data, theme); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	return theme, nil
}

// LoadThemeFile loads a theme from a TOML file.
func LoadThemeFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	theme, err := LoadTheme(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme %s: %w", path, err)
	}
	return theme, nil
}

// Save writes the theme to a TOML file.
func (t *Theme) Save(path string) error {
	data, err := toml.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to serialize theme: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	return nil
}
