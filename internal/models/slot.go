package models

import "fmt"

// Grid bounds. The planner grid runs from 05:00 to 22:00 in half-hour
// steps, 35 slots total.
const (
	StartHour           = 5
	EndHour             = 22
	SlotIntervalMinutes = 30
)

// TimeSlots is the ordered sequence of valid session start times,
// "05:00" through "22:00". Built once at init; never persisted.
var TimeSlots = buildTimeSlots()

func buildTimeSlots() []string {
	var slots []string
	for hour := StartHour; hour <= EndHour; hour++ {
		for minute := 0; minute < 60; minute += SlotIntervalMinutes {
			if hour == EndHour && minute > 0 {
				break
			}
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// ValidSlot reports whether start is one of the grid's time slots.
func ValidSlot(start string) bool {
	for _, s := range TimeSlots {
		if s == start {
			return true
		}
	}
	return false
}
