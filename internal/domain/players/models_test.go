package players

import (
	"reflect"
	"testing"
)

func TestProfileJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	profileType := reflect.TypeOf(Profile{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"Position", "position"},
		{"Team", "team"},
		{"Height", "height"},
		{"Weight", "weight"},
		{"BirthDate", "birthDate"},
		{"DraftYear", "draftYear"},
		{"DraftNumber", "draftNumber"},
		{"FirstYear", "firstYear"},
		{"LastYear", "lastYear"},
	}
	for _, fc := range fields {
		f, ok := profileType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestSeasonStatIsEmpty(t *testing.T) {
	if !(SeasonStat{}).IsEmpty() {
		t.Fatal("expected zero value to be empty")
	}
	if !(SeasonStat{PlayerID: "p1"}).IsEmpty() {
		t.Fatal("expected id-only record to be empty")
	}

	zero := 0.0
	if (SeasonStat{Points: &zero}).IsEmpty() {
		t.Fatal("expected a known zero to make the record non-empty")
	}
	games := 0
	if (SeasonStat{Games: &games}).IsEmpty() {
		t.Fatal("expected known games to make the record non-empty")
	}
}
