package models

// Template is a predefined bundle of default session field values plus
// descriptive copy. The catalog is fixed; templates are never mutated.
type Template struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Title     string    `json:"title"`
	Focus     string    `json:"focus"`
	Duration  int       `json:"duration"`
	Intensity Intensity `json:"intensity"`
	Notes     string    `json:"notes"`
	Benefits  []string  `json:"benefits"`
}

var templates = []Template{
	{
		ID:        "hypertrophy-upper",
		Label:     "Upper Body Builder",
		Title:     "Upper Push/Pull",
		Focus:     "Hypertrophy & Strength",
		Duration:  75,
		Intensity: IntensityIntense,
		Notes:     "Bench, row, overhead press, pull-ups, finish with accessory supersets.",
		Benefits: []string{
			"Balanced push/pull volume",
			"Builds pressing strength",
			"Targets posture muscles",
		},
	},
	{
		ID:        "lower-athlete",
		Label:     "Athletic Lower",
		Title:     "Lower Athletic Power",
		Focus:     "Power & Strength",
		Duration:  70,
		Intensity: IntensityIntense,
		Notes:     "Trap-bar deadlift, front squat, unilateral work, sled pushes.",
		Benefits: []string{
			"Explosive lower body power",
			"Posterior chain focus",
			"Improves sprint & jump ability",
		},
	},
	{
		ID:        "engine",
		Label:     "Engine Builder",
		Title:     "Conditioning Circuit",
		Focus:     "Aerobic Capacity",
		Duration:  45,
		Intensity: IntensityModerate,
		Notes:     "Row, assault bike, kettlebell swings, core finisher.",
		Benefits: []string{
			"Builds aerobic base",
			"Promotes recovery",
			"Supports fat loss goals",
		},
	},
	{
		ID:        "recovery",
		Label:     "Mobility Recharge",
		Title:     "Mobility + Recovery",
		Focus:     "Mobility & Restoration",
		Duration:  40,
		Intensity: IntensityLight,
		Notes:     "PRI resets, hip flow, thoracic work, guided breathing.",
		Benefits: []string{
			"Improves movement quality",
			"Reduces soreness",
			"Enhances nervous system recovery",
		},
	},
	{
		ID:        "sprint",
		Label:     "Speed Session",
		Title:     "Speed & Agility",
		Focus:     "Speed Mechanics",
		Duration:  50,
		Intensity: IntensityIntense,
		Notes:     "Acceleration drills, wicket runs, change of direction work.",
		Benefits: []string{
			"Sharpens acceleration",
			"Reinforces efficient mechanics",
			"Great for field sport athletes",
		},
	},
}

// Templates returns the catalog in fixed order. Callers get a copy so the
// catalog stays immutable.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// TemplateByID looks up a catalog entry. Returns false for unknown ids.
func TemplateByID(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
