package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"08:50", 8*3600 + 50*60, false},
		{"08:50:00", 8*3600 + 50*60, false},
		{"16:40:30", 16*3600 + 40*60 + 30, false},
		{" 09:10:00 ", 9*3600 + 10*60, false},
		{"25:00", 0, true},
		{"08:61", 0, true},
		{"", 0, true},
		{"morning", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestTimeOfDayString(t *testing.T) {
	v, err := ParseTimeOfDay("08:50")
	require.NoError(t, err)
	assert.Equal(t, "08:50:00", v.String())
}

func TestNormalizeTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2025-04-08 08:50:00", "2025-04-08 08:50:00", true},
		{"2025-04-08 08:50", "2025-04-08 08:50:00", true},
		{"2025-04-08T08:50", "2025-04-08 08:50:00", true},
		{"2025-04-08 08:50:00.123456", "2025-04-08 08:50:00", true},
		{"2025-04-08", "", false},
		{"not a time", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeTimestamp(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseDateAcceptsSlashes(t *testing.T) {
	a, err := ParseDate("2025/04/08")
	require.NoError(t, err)
	b, err := ParseDate("2025-04-08")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "2025-04-08", DateOnly(a))
}
