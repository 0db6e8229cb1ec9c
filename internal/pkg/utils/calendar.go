package utils

import (
	"petgromee-web/internal/pkg/constvars"
	"strings"
	"time"
)

type CalendarEvent struct {
	Title       string
	Start       time.Time
	End         time.Time
	Description string
}

// BuildICS renders the minimal iCalendar document offered as "Add to Calendar".
// Lines are joined with a bare LF and timestamps are written in UTC.
func BuildICS(event CalendarEvent) string {
	description := event.Description
	if description == "" {
		description = constvars.AppCalendarDescription
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"SUMMARY:" + event.Title,
		"DTSTART:" + event.Start.UTC().Format(constvars.TimeLayoutICS),
		"DTEND:" + event.End.UTC().Format(constvars.TimeLayoutICS),
		"DESCRIPTION:" + description,
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\n")
}

// BuildAppointmentICS places start and end clocks on the scheduled day in loc.
func BuildAppointmentICS(title string, scheduledDate int64, startTime, endTime string, loc *time.Location) (string, error) {
	start, err := AtClock(scheduledDate, startTime, loc)
	if err != nil {
		return "", err
	}
	end, err := AtClock(scheduledDate, endTime, loc)
	if err != nil {
		return "", err
	}
	return BuildICS(CalendarEvent{Title: title, Start: start, End: end}), nil
}
