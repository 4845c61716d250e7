package calendar

import (
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/pfrederiksen/f1-schedule/internal/schedule"
)

func testSchedule() schedule.Schedule {
	return schedule.Schedule{
		{City: " Bahrain ", Events: []schedule.Event{
			{Name: "Qualifying", Date: "Mar 27", Time: "11:00 AM", Network: "TSN5"},
			{Name: "Race", Date: "Mar 28", Time: "TBD", Network: "TSN1/CTV"},
		}},
		{City: "Imola", Events: []schedule.Event{
			{Name: "Race", Date: "Apr 18", Time: "9:00 a.m. ET", Network: ""},
		}},
	}
}

func TestGenerateICS(t *testing.T) {
	loc := time.FixedZone("ET", -4*60*60)
	now := time.Date(2021, 3, 20, 12, 0, 0, 0, time.UTC)

	out, err := GenerateICS(testSchedule(), 2021, loc, now)
	if err != nil {
		t.Fatalf("GenerateICS() error: %v", err)
	}

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"PRODID:" + ProductID,
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"SUMMARY:F1 Bahrain - Qualifying",
		"LOCATION:Imola",
		"END:VCALENDAR",
	}
	for _, field := range requiredFields {
		if !strings.Contains(out, field) {
			t.Errorf("ICS missing required field: %s", field)
		}
	}

	if !strings.Contains(out, "\r\n") {
		t.Error("ICS should use \\r\\n line endings")
	}

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ParseCalendar() error: %v", err)
	}

	events := cal.Events()
	if len(events) != 3 {
		t.Fatalf("calendar has %d events, want 3", len(events))
	}

	start, err := events[0].GetStartAt()
	if err != nil {
		t.Fatalf("GetStartAt() error: %v", err)
	}
	want := time.Date(2021, 3, 27, 11, 0, 0, 0, loc)
	if !start.Equal(want) {
		t.Errorf("qualifying start = %v, want %v", start, want)
	}

	start, err = events[2].GetStartAt()
	if err != nil {
		t.Fatalf("GetStartAt() error: %v", err)
	}
	want = time.Date(2021, 4, 18, 9, 0, 0, 0, loc)
	if !start.Equal(want) {
		t.Errorf("imola start = %v, want %v", start, want)
	}

	if p := events[0].GetProperty(ics.ComponentPropertyDescription); p == nil || p.Value != "Watch on TSN5" {
		t.Errorf("description = %v, want 'Watch on TSN5'", p)
	}
	if p := events[2].GetProperty(ics.ComponentPropertyDescription); p != nil {
		t.Errorf("description = %q, want none without a network", p.Value)
	}
}

func TestGenerateICS_AllDay(t *testing.T) {
	out, err := GenerateICS(testSchedule(), 2021, time.UTC, time.Now())
	if err != nil {
		t.Fatalf("GenerateICS() error: %v", err)
	}

	if !strings.Contains(out, "DTSTART;VALUE=DATE:20210328") {
		t.Errorf("race with unknown time should be an all-day event:\n%s", out)
	}
}

func TestGenerateICS_Empty(t *testing.T) {
	out, err := GenerateICS(schedule.Schedule{}, 2021, nil, time.Now())
	if err != nil {
		t.Fatalf("GenerateICS() error: %v", err)
	}
	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Error("empty schedule should produce no events")
	}
}

func TestGenerateICS_BadDate(t *testing.T) {
	races := schedule.Schedule{{City: "Bahrain", Events: []schedule.Event{{Name: "Race", Date: "TBD"}}}}

	if _, err := GenerateICS(races, 2021, time.UTC, time.Now()); err == nil {
		t.Error("GenerateICS() expected error for unparseable date")
	}
}

func TestGenerateUID(t *testing.T) {
	a := GenerateUID("Bahrain", "Race", "Mar 28")
	b := GenerateUID("Bahrain", "Race", " Mar 28 ")
	c := GenerateUID("Bahrain", "Qualifying", "Mar 27")

	if a != b {
		t.Errorf("UID should ignore date whitespace: %s != %s", a, b)
	}
	if a == c {
		t.Error("different sessions should have different UIDs")
	}
	if !strings.HasSuffix(a, "@f1-schedule") {
		t.Errorf("UID = %q, want @f1-schedule suffix", a)
	}
}

func TestSessionStart(t *testing.T) {
	day := time.Date(2021, 3, 28, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		text   string
		wantH  int
		wantM  int
		wantOK bool
	}{
		{"11:00 AM", 11, 0, true},
		{"1:30 PM", 13, 30, true},
		{"9:55 a.m.", 9, 55, true},
		{"2 p.m. ET", 14, 0, true},
		{"10:00AM", 10, 0, true},
		{"14:05", 14, 5, true},
		{"TBD", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := sessionStart(day, tt.text)
			if ok != tt.wantOK {
				t.Fatalf("sessionStart(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Hour() != tt.wantH || got.Minute() != tt.wantM || got.Day() != 28 {
				t.Errorf("sessionStart(%q) = %v, want %02d:%02d on the 28th", tt.text, got, tt.wantH, tt.wantM)
			}
		})
	}
}
