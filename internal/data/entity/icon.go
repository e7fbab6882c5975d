package entity

// Icon names a UI icon. Only the identifiers in iconTable are supported.
type Icon string

const (
	IconUsers    Icon = "Users"
	IconGlobe    Icon = "Globe"
	IconShield   Icon = "Shield"
	IconAward    Icon = "Award"
	IconHeart    Icon = "Heart"
	IconStar     Icon = "Star"
	IconMapPin   Icon = "MapPin"
	IconClock    Icon = "Clock"
	IconPlane    Icon = "Plane"
	IconCamera   Icon = "Camera"
	IconMountain Icon = "Mountain"
	IconSun      Icon = "Sun"
)

// DefaultIcon is rendered when a stored identifier is no longer supported.
const DefaultIcon = IconGlobe

// iconTable maps each supported identifier to its display label.
var iconTable = map[Icon]string{
	IconUsers:    "Expert guides",
	IconGlobe:    "Worldwide",
	IconShield:   "Safe travel",
	IconAward:    "Award winning",
	IconHeart:    "Loved by travellers",
	IconStar:     "Top rated",
	IconMapPin:   "Destinations",
	IconClock:    "24/7 support",
	IconPlane:    "Flights",
	IconCamera:   "Sightseeing",
	IconMountain: "Adventure",
	IconSun:      "Beach",
}

func ParseIcon(s string) (Icon, bool) {
	icon := Icon(s)
	_, ok := iconTable[icon]
	return icon, ok
}

func IsValidIcon(s string) bool {
	_, ok := ParseIcon(s)
	return ok
}

// Resolve returns the icon itself when supported and DefaultIcon otherwise.
func (i Icon) Resolve() Icon {
	if _, ok := iconTable[i]; ok {
		return i
	}
	return DefaultIcon
}

func (i Icon) Label() string {
	return iconTable[i.Resolve()]
}
