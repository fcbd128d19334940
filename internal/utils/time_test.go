package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{42 * time.Second, "00:42"},
		{5*time.Minute + 7*time.Second, "05:07"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour, "01:00:00"},
		{2*time.Hour + 3*time.Minute + 4*time.Second, "02:03:04"},
		{-time.Second, "00:00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatElapsed(tc.d))
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0min", FormatDuration(0))
	assert.Equal(t, "45min", FormatDuration(45))
	assert.Equal(t, "1h 0min", FormatDuration(60))
	assert.Equal(t, "1h 5min", FormatDuration(65))
	assert.Equal(t, "2h 30min", FormatDuration(150))
}
