package helpers

import (
	"testing"
	"time"
)

func TestParseDayAndBounds(t *testing.T) {
	loc := time.UTC
	day, err := ParseDay("2024-05-10", loc)
	if err != nil {
		t.Fatal(err)
	}
	if !day.Equal(time.Date(2024, 5, 10, 0, 0, 0, 0, loc)) {
		t.Fatalf("ParseDay = %v", day)
	}

	end := EndOfDay(day, loc)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 || end.Nanosecond() < 999000000 {
		t.Fatalf("EndOfDay = %v", end)
	}
	if !StartOfDay(end, loc).Equal(day) {
		t.Fatalf("StartOfDay(%v) = %v", end, StartOfDay(end, loc))
	}

	if zero, err := ParseDay("  ", loc); err != nil || !zero.IsZero() {
		t.Fatalf("blank day = %v, %v", zero, err)
	}
	if _, err := ParseDay("not-a-date", loc); err == nil {
		t.Fatal("expected error for garbage date")
	}
}
