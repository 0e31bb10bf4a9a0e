package models

// Intensity is the qualitative training-load tag on a session.
type Intensity string

const (
	IntensityLight    Intensity = "Light"
	IntensityModerate Intensity = "Moderate"
	IntensityIntense  Intensity = "Intense"
)

// Intensities lists the three levels in display order.
var Intensities = []Intensity{IntensityLight, IntensityModerate, IntensityIntense}

// intensityCopy holds the short descriptive label shown next to each level.
var intensityCopy = map[Intensity]string{
	IntensityLight:    "Restorative / Technique",
	IntensityModerate: "Quality Work",
	IntensityIntense:  "PR Hunt",
}

// Copy returns the display copy for the level, or "" for an unknown value.
func (i Intensity) Copy() string {
	return intensityCopy[i]
}

// Valid reports whether i is one of the three defined levels.
func (i Intensity) Valid() bool {
	_, ok := intensityCopy[i]
	return ok
}
