package utils

import (
	"fmt"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/dto/responses"
	"strings"
	"time"
)

// ParseClock reads a wall-clock "HH:MM" string into minutes after midnight.
func ParseClock(clock string) (int, error) {
	parsed, err := time.Parse(constvars.TimeLayoutClock, strings.TrimSpace(clock))
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

func FormatClock(minutes int) string {
	minutes = ((minutes % constvars.MinutesPerDay) + constvars.MinutesPerDay) % constvars.MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CalculateEndTime adds durationMinutes to start. There is no day field, so an end
// past midnight wraps modulo 24h and wrapped reports it.
func CalculateEndTime(start string, durationMinutes int) (end string, wrapped bool, err error) {
	startMinutes, err := ParseClock(start)
	if err != nil {
		return "", false, err
	}
	total := startMinutes + durationMinutes
	return FormatClock(total), total >= constvars.MinutesPerDay, nil
}

// TimeSlots lists the bookable start times of a day.
func TimeSlots() []string {
	opening, _ := ParseClock(constvars.SlotOpeningTime)
	closing, _ := ParseClock(constvars.SlotClosingTime)

	slots := make([]string, 0, (closing-opening)/constvars.SlotIntervalMinute+1)
	for minute := opening; minute <= closing; minute += constvars.SlotIntervalMinute {
		slots = append(slots, FormatClock(minute))
	}
	return slots
}

// TimeSlotOptions labels every slot for the appointment form.
func TimeSlotOptions() []responses.TimeSlot {
	slots := TimeSlots()
	options := make([]responses.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		options = append(options, responses.TimeSlot{Value: slot, Label: FormatTime12Hour(slot)})
	}
	return options
}

func IsTimeSlot(value string) bool {
	for _, slot := range TimeSlots() {
		if slot == value {
			return true
		}
	}
	return false
}

// FormatDuration renders minutes as "45 min", "1h" or "1h 30m".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	remainder := minutes % 60
	if remainder == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, remainder)
}

// FormatTime12Hour renders "13:05" as "1:05 PM" and "00:30" as "12:30 AM".
func FormatTime12Hour(clock string) string {
	minutes, err := ParseClock(clock)
	if err != nil {
		return clock
	}
	return time.Date(2000, time.January, 1, minutes/60, minutes%60, 0, 0, time.UTC).Format(constvars.TimeLayout12Hour)
}

// LoadLocation falls back to UTC for an empty or unknown zone name.
func LoadLocation(name string) *time.Location {
	if strings.TrimSpace(name) == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func FormatLongDate(epochMillis int64, loc *time.Location) string {
	return time.UnixMilli(epochMillis).In(loc).Format(constvars.TimeLayoutLongDate)
}

// ParseAppointmentDate returns the midnight that opens the given calendar date in loc.
func ParseAppointmentDate(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(constvars.TimeLayoutDate, strings.TrimSpace(date), loc)
}

// AtClock keeps the calendar day and seconds of epochMillis in loc and replaces its hour and minute.
func AtClock(epochMillis int64, clock string, loc *time.Location) (time.Time, error) {
	minutes, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	day := time.UnixMilli(epochMillis).In(loc)
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, day.Second(), day.Nanosecond(), loc), nil
}

func IsPastDate(date string, now time.Time) bool {
	parsed, err := ParseAppointmentDate(date, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return parsed.Before(today)
}

func ConfirmationNumber(appointmentID string) string {
	if len(appointmentID) > constvars.AppConfirmationIDLength {
		appointmentID = appointmentID[:constvars.AppConfirmationIDLength]
	}
	return strings.ToUpper(appointmentID)
}
