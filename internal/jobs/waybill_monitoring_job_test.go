package jobs

import (
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitoringSchedule_ParsesWithSecondsField(t *testing.T) {
	parser := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)

	schedule, err := parser.Parse(monitoringSchedule)
	require.NoError(t, err)

	// Fires exactly once per minute, at second zero.
	from := time.Date(2026, 8, 31, 10, 30, 15, 0, time.UTC)
	first := schedule.Next(from)
	second := schedule.Next(first)

	assert.Equal(t, time.Date(2026, 8, 31, 10, 31, 0, 0, time.UTC), first)
	assert.Equal(t, time.Minute, second.Sub(first))
}
