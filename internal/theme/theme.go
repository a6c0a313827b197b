package theme

import "strings"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// CookieName is the cookie the server stores the active theme in.
const CookieName = "folio_theme"

// Parse returns the theme named by s. Anything unrecognized is Light.
func Parse(s string) Theme {
	if Theme(strings.ToLower(strings.TrimSpace(s))) == Dark {
		return Dark
	}
	return Light
}

func (t Theme) String() string {
	return string(t)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ToggleLabel is the caption of the control that switches away from t.
func (t Theme) ToggleLabel() string {
	if t == Dark {
		return "Light Mode"
	}
	return "Dark Mode"
}
