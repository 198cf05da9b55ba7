package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		minutes int32
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"13:45", 825, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"9:00", 0, false},
		{"9:0", 0, false},
		{"09:60", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		m, err := ParseClock(c.input)
		if c.ok {
			require.NoError(t, err, c.input)
			assert.Equal(t, c.minutes, m, c.input)
		} else {
			assert.Error(t, err, c.input)
		}
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "23:59", FormatClock(EndOfDayMinutes))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "08:15", "12:30", "18:45", "23:59"} {
		m, err := ParseClock(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatClock(m))
	}
}

func TestQuantizeQuarterHour(t *testing.T) {
	// 对齐始终向下取整到 :00/:15/:30/:45
	assert.Equal(t, int32(600), QuantizeQuarterHour(600)) // 10:00 不变
	assert.Equal(t, int32(600), QuantizeQuarterHour(607)) // 10:07 -> 10:00
	assert.Equal(t, int32(615), QuantizeQuarterHour(615)) // 10:15 不变
	assert.Equal(t, int32(615), QuantizeQuarterHour(629)) // 10:29 -> 10:15
	assert.Equal(t, int32(0), QuantizeQuarterHour(14))
	assert.Equal(t, int32(1425), QuantizeQuarterHour(EndOfDayMinutes)) // 23:59 -> 23:45
}
