package models

// Days lists the seven weekdays in planner order. Monday starts the
// training week.
var Days = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// DayIndex returns the position of day within Days, or -1 if the day is
// unknown. Unknown days sort before Monday.
func DayIndex(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return -1
}

// ValidDay reports whether day is one of the seven weekday labels.
func ValidDay(day string) bool {
	return DayIndex(day) >= 0
}
