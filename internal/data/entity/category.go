package entity

// Color is a token from the admin category palette.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
	ColorTeal   Color = "teal"
	ColorPink   Color = "pink"
	ColorYellow Color = "yellow"
)

var Palette = []Color{ColorBlue, ColorGreen, ColorPurple, ColorOrange, ColorRed, ColorTeal, ColorPink, ColorYellow}

func IsPaletteColor(s string) bool {
	for _, c := range Palette {
		if string(c) == s {
			return true
		}
	}
	return false
}

type Category struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Color         Color  `json:"color"`
	Icon          Icon   `json:"icon"`
	PackagesCount int    `json:"packagesCount"`
}

func (c Category) RecordID() string { return c.ID }

type categoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       Color  `json:"color"`
	Icon        Icon   `json:"icon"`
}

// Payload leaves out the id and the derived packages count.
func (c Category) Payload() any {
	return categoryPayload{Name: c.Name, Description: c.Description, Color: c.Color, Icon: c.Icon}
}

func (c Category) NaturalKey() string { return normalize(c.Name) }
