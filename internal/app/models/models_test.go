package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampUnmarshal(t *testing.T) {
	prev := DefaultLocation
	DefaultLocation = time.UTC
	defer func() { DefaultLocation = prev }()

	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2024-05-10T23:59:59"`, time.Date(2024, 5, 10, 23, 59, 59, 0, time.UTC)},
		{`"2024-05-10T23:59:59.123456"`, time.Date(2024, 5, 10, 23, 59, 59, 123456000, time.UTC)},
		{`"2024-05-10T21:00:00+02:00"`, time.Date(2024, 5, 10, 19, 0, 0, 0, time.UTC)},
		{`"2024-05-10 08:30:00"`, time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)},
		{`"2024-05-10"`, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)},
		{`null`, time.Time{}},
		{`""`, time.Time{}},
	}

	for _, tt := range tests {
		var ts Timestamp
		if err := json.Unmarshal([]byte(tt.in), &ts); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", tt.in, err)
		}
		if !ts.Equal(tt.want) {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, ts.Time, tt.want)
		}
	}

	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Error("expected error for garbage timestamp")
	}
}

func TestCourseReferencesInstructor(t *testing.T) {
	id := int64(3)
	byID := Course{ID: 1, InstructorID: &id}
	nested := Course{ID: 2, Instructor: &Instructor{ID: 3}}
	other := Course{ID: 4}

	if !byID.ReferencesInstructor(3) || !nested.ReferencesInstructor(3) {
		t.Fatal("expected both reference styles to match")
	}
	if other.ReferencesInstructor(3) {
		t.Fatal("course without instructor should not match")
	}
	if nested.InstructorKey() != 3 || other.InstructorKey() != 0 {
		t.Fatal("unexpected InstructorKey")
	}
}

func TestCourseDecodesNullablePrice(t *testing.T) {
	var c Course
	if err := json.Unmarshal([]byte(`{"id":9,"title":"Intro","price":null,"isVisible":true}`), &c); err != nil {
		t.Fatal(err)
	}
	if c.Price != nil || c.PriceValue() != 0 || !c.IsVisible {
		t.Fatalf("unexpected course: %+v", c)
	}
}
