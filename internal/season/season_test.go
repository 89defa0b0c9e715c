package season

import (
	"testing"
	"time"
)

func TestForDateAllMonths(t *testing.T) {
	want := map[time.Month]Season{
		time.January:   Winter,
		time.February:  Winter,
		time.March:     Spring,
		time.April:     Spring,
		time.May:       Spring,
		time.June:      Summer,
		time.July:      Summer,
		time.August:    Summer,
		time.September: Autumn,
		time.October:   Autumn,
		time.November:  Autumn,
		time.December:  Winter,
	}

	for m, expected := range want {
		date := time.Date(2025, m, 15, 0, 0, 0, 0, time.UTC)
		if got := ForDate(date); got != expected {
			t.Errorf("month %s: got %s, want %s", m, got, expected)
		}
	}
}

func TestForDateIdempotent(t *testing.T) {
	date := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	if ForDate(date) != ForDate(date) {
		t.Fatal("ForDate is not idempotent for the same date")
	}
}

func TestLower(t *testing.T) {
	if Autumn.Lower() != "autumn" {
		t.Fatalf("unexpected lower form: %s", Autumn.Lower())
	}
}
