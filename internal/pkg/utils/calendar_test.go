package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAppointmentICS(t *testing.T) {
	t.Run("UTC Day After Epoch", func(t *testing.T) {
		ics, err := BuildAppointmentICS("Full Grooming for Buddy", 86400000, "10:00", "11:30", time.UTC)
		require.NoError(t, err)

		expected := strings.Join([]string{
			"BEGIN:VCALENDAR",
			"VERSION:2.0",
			"BEGIN:VEVENT",
			"SUMMARY:Full Grooming for Buddy",
			"DTSTART:19700102T100000Z",
			"DTEND:19700102T113000Z",
			"DESCRIPTION:Pet grooming appointment",
			"END:VEVENT",
			"END:VCALENDAR",
		}, "\n")
		assert.Equal(t, expected, ics)
		assert.NotContains(t, ics, "\r")
	})

	t.Run("Converts Local Wall Clock To UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+7", 7*60*60)
		scheduled := time.Date(2026, time.November, 2, 0, 0, 0, 0, loc).UnixMilli()

		ics, err := BuildAppointmentICS("Bath for Milo", scheduled, "09:00", "09:45", loc)
		require.NoError(t, err)

		assert.Contains(t, ics, "DTSTART:20261102T020000Z\n")
		assert.Contains(t, ics, "DTEND:20261102T024500Z\n")
	})

	t.Run("Invalid Clock", func(t *testing.T) {
		_, err := BuildAppointmentICS("Bath for Milo", 0, "9am", "10:00", time.UTC)
		assert.Error(t, err)
	})
}
