package datemath_test

import (
	"errors"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"campus-task-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/New_York")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func deadline(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, datemath.DeadlineHour, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024

	tests := []struct {
		name           string
		input          string
		want           time.Time
		wantConfidence datemath.Confidence
	}{
		{name: "Today", input: "today", want: deadline(2024, 5, 1), wantConfidence: datemath.ConfidenceHigh},
		{name: "Today mixed case and padding", input: "  Today ", want: deadline(2024, 5, 1), wantConfidence: datemath.ConfidenceHigh},
		{name: "Tomorrow", input: "tomorrow", want: deadline(2024, 5, 2), wantConfidence: datemath.ConfidenceHigh},
		{name: "Tomorrow with trailing words", input: "tomorrow morning", want: deadline(2024, 5, 2), wantConfidence: datemath.ConfidenceHigh},
		{name: "Bare weekday equal to today", input: "Wednesday", want: deadline(2024, 5, 1), wantConfidence: datemath.ConfidenceHigh},
		{name: "Next weekday equal to today", input: "next wednesday", want: deadline(2024, 5, 8), wantConfidence: datemath.ConfidenceHigh},
		{name: "Bare weekday already passed", input: "monday", want: deadline(2024, 5, 6), wantConfidence: datemath.ConfidenceHigh},
		{name: "Next weekday already passed", input: "next monday", want: deadline(2024, 5, 6), wantConfidence: datemath.ConfidenceHigh},
		{name: "Bare weekday later this week", input: "friday", want: deadline(2024, 5, 3), wantConfidence: datemath.ConfidenceHigh},
		{name: "Next weekday later this week", input: "Next Friday", want: deadline(2024, 5, 3), wantConfidence: datemath.ConfidenceHigh},
		{name: "Anchored next weekday", input: "by next Friday", want: deadline(2024, 5, 3), wantConfidence: datemath.ConfidenceHigh},
		{name: "Abbreviated weekday", input: "thu", want: deadline(2024, 5, 2), wantConfidence: datemath.ConfidenceHigh},
		{name: "In 3 days", input: "in 3 days", want: deadline(2024, 5, 4), wantConfidence: datemath.ConfidenceHigh},
		{name: "In 2 weeks", input: "in 2 weeks", want: deadline(2024, 5, 15), wantConfidence: datemath.ConfidenceHigh},
		{name: "In 1 month", input: "in 1 month", want: deadline(2024, 6, 1), wantConfidence: datemath.ConfidenceHigh},
		{name: "In a week", input: "in a week", want: deadline(2024, 5, 8), wantConfidence: datemath.ConfidenceHigh},
		{name: "Next week", input: "next week", want: deadline(2024, 5, 8), wantConfidence: datemath.ConfidenceHigh},
		{name: "Next month", input: "next month", want: deadline(2024, 6, 1), wantConfidence: datemath.ConfidenceHigh},
		{name: "End of week", input: "end of week", want: deadline(2024, 5, 5), wantConfidence: datemath.ConfidenceHigh},
		{name: "End of the month", input: "end of the month", want: deadline(2024, 5, 31), wantConfidence: datemath.ConfidenceHigh},
		{name: "This weekday later this week", input: "this friday", want: deadline(2024, 5, 3), wantConfidence: datemath.ConfidenceHigh},
		{name: "This weekday equal to today", input: "this wednesday", want: deadline(2024, 5, 8), wantConfidence: datemath.ConfidenceHigh},
		{name: "This weekday already passed", input: "this monday", want: deadline(2024, 5, 6), wantConfidence: datemath.ConfidenceHigh},
		{name: "US numeric date", input: "03/15/2024", want: deadline(2024, 3, 15), wantConfidence: datemath.ConfidenceHigh},
		{name: "US dashed date", input: "12-25-2024", want: deadline(2024, 12, 25), wantConfidence: datemath.ConfidenceHigh},
		{name: "ISO date", input: "2024-12-25", want: deadline(2024, 12, 25), wantConfidence: datemath.ConfidenceHigh},
		{name: "Month name with year", input: "December 25, 2024", want: deadline(2024, 12, 25), wantConfidence: datemath.ConfidenceHigh},
		{name: "Day month year", input: "25 Dec 2024", want: deadline(2024, 12, 25), wantConfidence: datemath.ConfidenceHigh},
		{name: "Month and year only", input: "June 2024", want: deadline(2024, 6, 1), wantConfidence: datemath.ConfidenceHigh},
		{name: "Month day without year already passed", input: "March 15", want: deadline(2025, 3, 15), wantConfidence: datemath.ConfidenceMedium},
		{name: "Month day without year upcoming", input: "June 3rd", want: deadline(2024, 6, 3), wantConfidence: datemath.ConfidenceMedium},
		{name: "Month day without year is today", input: "may 1", want: deadline(2024, 5, 1), wantConfidence: datemath.ConfidenceMedium},
		{name: "Due weekday", input: "due friday", want: deadline(2024, 5, 3), wantConfidence: datemath.ConfidenceHigh},
		{name: "Due tomorrow", input: "Due tomorrow", want: deadline(2024, 5, 2), wantConfidence: datemath.ConfidenceHigh},
		{name: "Due in duration", input: "due in 3 days", want: deadline(2024, 5, 4), wantConfidence: datemath.ConfidenceHigh},
		{name: "Due by weekday", input: "due by friday", want: deadline(2024, 5, 3), wantConfidence: datemath.ConfidenceHigh},
		{name: "Due absolute date", input: "due June 3", want: deadline(2024, 6, 3), wantConfidence: datemath.ConfidenceMedium},
		{name: "Anchored absolute date", input: "by June 3", want: deadline(2024, 6, 3), wantConfidence: datemath.ConfidenceMedium},
		{name: "Urgency keyword", input: "ASAP", want: deadline(2024, 5, 1), wantConfidence: datemath.ConfidenceMedium},
		{name: "Urgency keyword inside sentence", input: "needs to happen immediately", want: deadline(2024, 5, 1), wantConfidence: datemath.ConfidenceMedium},
		{name: "Explicit anchor noon", input: "by noon", want: deadline(2024, 5, 1), wantConfidence: datemath.ConfidenceHigh},
		{name: "Explicit anchor EOD", input: "by EOD", want: deadline(2024, 5, 1), wantConfidence: datemath.ConfidenceHigh},
		{name: "Explicit anchor end of day", input: "by end of day", want: deadline(2024, 5, 1), wantConfidence: datemath.ConfidenceHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Parse(tt.input, baseTime)
			if !ok {
				t.Fatalf("Parse(%q) returned no match", tt.input)
			}
			if !got.Date.Equal(tt.want) {
				t.Errorf("Parse(%q) date = %v, want %v", tt.input, got.Date, tt.want)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Parse(%q) confidence = %s, want %s", tt.input, got.Confidence, tt.wantConfidence)
			}
			if got.OriginalInput != strings.TrimSpace(tt.input) {
				t.Errorf("Parse(%q) original input = %q", tt.input, got.OriginalInput)
			}
		})
	}
}

func TestParse_NoMatch(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	inputs := []string{
		"",
		"   ",
		"someday maybe",
		"next funday",
		"Feb 30 2024",
		"in 99999 days",
		"2024",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if got, ok := parser.Parse(input, baseTime); ok {
				t.Errorf("Parse(%q) = %+v, want no match", input, got)
			}
		})
	}
}

func TestParse_WeekdayProperties(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	for offset := 0; offset < 7; offset++ {
		base := time.Date(2024, 5, 1+offset, 9, 0, 0, 0, time.UTC)
		name := strings.ToLower(base.Weekday().String())
		today := deadline(base.Year(), base.Month(), base.Day())

		t.Run(name, func(t *testing.T) {
			bare, ok := parser.Parse(name, base)
			if !ok || !bare.Date.Equal(today) {
				t.Errorf("Parse(%q) = %v, want today %v", name, bare.Date, today)
			}

			next, ok := parser.Parse("next "+name, base)
			if !ok || !next.Date.Equal(today.AddDate(0, 0, 7)) {
				t.Errorf("Parse(%q) = %v, want %v", "next "+name, next.Date, today.AddDate(0, 0, 7))
			}
		})
	}
}

func TestParse_TomorrowFollowsToday(t *testing.T) {
	parser, _ := datemath.NewParser("America/New_York")
	loc := parser.Location()

	// Spans the spring-forward DST change.
	base := time.Date(2024, 3, 9, 23, 45, 0, 0, loc)

	today, ok := parser.Parse("today", base)
	if !ok {
		t.Fatalf("today not matched")
	}
	tomorrow, ok := parser.Parse("tomorrow", base)
	if !ok {
		t.Fatalf("tomorrow not matched")
	}

	wantToday := time.Date(2024, 3, 9, 17, 0, 0, 0, loc)
	wantTomorrow := time.Date(2024, 3, 10, 17, 0, 0, 0, loc)
	if !today.Date.Equal(wantToday) {
		t.Errorf("today = %v, want %v", today.Date, wantToday)
	}
	if !tomorrow.Date.Equal(wantTomorrow) {
		t.Errorf("tomorrow = %v, want %v", tomorrow.Date, wantTomorrow)
	}
	if tomorrow.Date.Hour() != datemath.DeadlineHour || tomorrow.Date.Minute() != 0 || tomorrow.Date.Nanosecond() != 0 {
		t.Errorf("tomorrow not normalized to deadline hour: %v", tomorrow.Date)
	}
}

func TestParse_UsesParserTimezone(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Tokyo")

	// 2024-05-01 20:00 UTC is already 2024-05-02 in Tokyo.
	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	got, ok := parser.Parse("today", base)
	if !ok {
		t.Fatalf("today not matched")
	}
	if parser.ToISODateString(got.Date) != "2024-05-02" {
		t.Errorf("today in Tokyo = %s, want 2024-05-02", parser.ToISODateString(got.Date))
	}
}

func TestParseNaturalDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	got, ok := parser.ParseNaturalDate("in 2 weeks")
	if !ok {
		t.Fatalf("expected a match")
	}
	now := time.Now().UTC()
	want := deadline(now.Year(), now.Month(), now.Day()).AddDate(0, 0, 14)
	if !got.Date.Equal(want) {
		t.Errorf("ParseNaturalDate(in 2 weeks) = %v, want %v", got.Date, want)
	}
	if got.Confidence != datemath.ConfidenceHigh {
		t.Errorf("confidence = %s, want high", got.Confidence)
	}

	if _, ok := parser.ParseNaturalDate(""); ok {
		t.Errorf("expected no match for empty input")
	}
}

func TestFormatDueDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{name: "Today", date: deadline(2024, 5, 1), want: "Today"},
		{name: "Tomorrow", date: deadline(2024, 5, 2), want: "Tomorrow"},
		{name: "Within a week", date: deadline(2024, 5, 4), want: "Saturday"},
		{name: "Six days out", date: deadline(2024, 5, 7), want: "Tuesday"},
		{name: "Exactly a week out", date: deadline(2024, 5, 8), want: "May 8"},
		{name: "Forty days out", date: deadline(2024, 6, 10), want: "Jun 10"},
		{name: "In the past", date: deadline(2024, 4, 29), want: "Apr 29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.FormatDueDate(tt.date, base); got != tt.want {
				t.Errorf("FormatDueDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLocalISODate(t *testing.T) {
	zones := []string{"UTC", "America/Los_Angeles", "Pacific/Honolulu", "Asia/Tokyo", "Pacific/Kiritimati"}

	for _, zone := range zones {
		t.Run(zone, func(t *testing.T) {
			parser, err := datemath.NewParser(zone)
			if err != nil {
				t.Fatalf("NewParser(%s): %v", zone, err)
			}

			got, err := parser.ParseLocalISODate("2024-01-01")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Year() != 2024 || got.Month() != time.January || got.Day() != 1 {
				t.Errorf("components = %d-%d-%d, want 2024-1-1", got.Year(), got.Month(), got.Day())
			}
			if got.Hour() != 0 || got.Location().String() != zone {
				t.Errorf("expected local midnight in %s, got %v", zone, got)
			}
			if s := parser.ToISODateString(got); s != "2024-01-01" {
				t.Errorf("round trip = %q, want 2024-01-01", s)
			}
		})
	}
}

func TestParseLocalISODate_Invalid(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	for _, input := range []string{"", "2024-13-01", "2024-02-30", "01/01/2024", "2024-1-1"} {
		t.Run(input, func(t *testing.T) {
			_, err := parser.ParseLocalISODate(input)
			if !errors.Is(err, datemath.ErrInvalidISODate) {
				t.Errorf("ParseLocalISODate(%q) error = %v, want ErrInvalidISODate", input, err)
			}
		})
	}
}
