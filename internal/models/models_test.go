package models

import (
	"encoding/json"
	"testing"
)

// TestDayOrder verifies the weekday table and index lookups.
func TestDayOrder(t *testing.T) {
	if len(Days) != 7 {
		t.Fatalf("len(Days) = %d, want 7", len(Days))
	}
	if Days[0] != "Monday" || Days[6] != "Sunday" {
		t.Errorf("Days = %v", Days)
	}
	for i, day := range Days {
		if got := DayIndex(day); got != i {
			t.Errorf("DayIndex(%q) = %d, want %d", day, got, i)
		}
	}
	if got := DayIndex("Funday"); got != -1 {
		t.Errorf("DayIndex(unknown) = %d, want -1", got)
	}
	if ValidDay("Funday") {
		t.Error("ValidDay(unknown) = true")
	}
}

// TestTimeSlots verifies the 35-slot grid from 05:00 to 22:00.
func TestTimeSlots(t *testing.T) {
	if len(TimeSlots) != 35 {
		t.Fatalf("len(TimeSlots) = %d, want 35", len(TimeSlots))
	}
	if TimeSlots[0] != "05:00" {
		t.Errorf("first slot = %q, want 05:00", TimeSlots[0])
	}
	if TimeSlots[1] != "05:30" {
		t.Errorf("second slot = %q, want 05:30", TimeSlots[1])
	}
	if last := TimeSlots[len(TimeSlots)-1]; last != "22:00" {
		t.Errorf("last slot = %q, want 22:00", last)
	}
	if !ValidSlot("09:30") {
		t.Error("ValidSlot(09:30) = false")
	}
	if ValidSlot("22:30") {
		t.Error("ValidSlot(22:30) = true, grid ends at 22:00")
	}
	if ValidSlot("09:15") {
		t.Error("ValidSlot(09:15) = true, slots are half-hour aligned")
	}
}

// TestIntensity verifies validity checks and display copy.
func TestIntensity(t *testing.T) {
	for _, level := range Intensities {
		if !level.Valid() {
			t.Errorf("%s.Valid() = false", level)
		}
		if level.Copy() == "" {
			t.Errorf("%s.Copy() is empty", level)
		}
	}
	if Intensity("Brutal").Valid() {
		t.Error(`Intensity("Brutal").Valid() = true`)
	}
	if got := IntensityIntense.Copy(); got != "PR Hunt" {
		t.Errorf("Intense copy = %q, want %q", got, "PR Hunt")
	}
}

// TestTemplateCatalog verifies the fixed five-entry catalog and that
// callers can't mutate it through the returned slice.
func TestTemplateCatalog(t *testing.T) {
	tpls := Templates()
	if len(tpls) != 5 {
		t.Fatalf("len(Templates()) = %d, want 5", len(tpls))
	}
	wantIDs := []string{"hypertrophy-upper", "lower-athlete", "engine", "recovery", "sprint"}
	for i, want := range wantIDs {
		if tpls[i].ID != want {
			t.Errorf("templates[%d].ID = %q, want %q", i, tpls[i].ID, want)
		}
		if len(tpls[i].Benefits) == 0 {
			t.Errorf("template %q has no benefits copy", tpls[i].ID)
		}
	}

	tpls[0].Title = "mutated"
	if fresh := Templates(); fresh[0].Title == "mutated" {
		t.Error("catalog mutated through returned slice")
	}

	if _, ok := TemplateByID("recovery"); !ok {
		t.Error("TemplateByID(recovery) not found")
	}
	if _, ok := TemplateByID("nope"); ok {
		t.Error("TemplateByID(nope) found")
	}
}

// TestSessionJSON verifies the persisted field names and that empty
// notes are omitted.
func TestSessionJSON(t *testing.T) {
	sess := WorkoutSession{
		ID:        "abc",
		Title:     "Leg Day",
		Focus:     "Strength",
		Day:       "Monday",
		Start:     "06:00",
		Duration:  60,
		Intensity: IntensityIntense,
	}
	data, err := json.Marshal(sess)
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "title", "focus", "day", "start", "duration", "intensity"} {
		if _, ok := m[key]; !ok {
			t.Errorf("marshaled session missing %q key: %s", key, data)
		}
	}
	if _, ok := m["notes"]; ok {
		t.Errorf("empty notes not omitted: %s", data)
	}
}

// TestDefaultDraft pins the form defaults.
func TestDefaultDraft(t *testing.T) {
	d := DefaultDraft()
	if d.Day != "Monday" || d.Start != "06:00" || d.Duration != 60 || d.Intensity != IntensityModerate {
		t.Errorf("DefaultDraft() = %+v", d)
	}
}
