package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "24-hour evening", input: "18:30", want: "18:30"},
		{name: "24-hour single digit hour", input: "6:05", want: "06:05"},
		{name: "midnight", input: "0:00", want: "00:00"},
		{name: "PM marker", input: "6:30 PM", want: "18:30"},
		{name: "pm marker lowercase no space", input: "6:30pm", want: "18:30"},
		{name: "AM marker", input: "9:15 AM", want: "09:15"},
		{name: "12 AM is midnight", input: "12:00 AM", want: "00:00"},
		{name: "12 PM stays noon", input: "12:00 PM", want: "12:00"},
		{name: "11 PM", input: "11:45 PM", want: "23:45"},
		{name: "padded meridiem input", input: "  7:00 am ", want: "07:00"},
		{name: "unparseable minute", input: "6:xx PM", wantErr: true},
		{name: "unparseable hour", input: "ab:30", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "meridiem hour out of range", input: "13:00 PM", wantErr: true},
		{name: "zero hour with meridiem", input: "0:30 AM", wantErr: true},
		{name: "minute out of range", input: "18:60", wantErr: true},
		{name: "missing minute", input: "18", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := NewTimeStringFromString("6:30 PM")
	require.NoError(t, err)

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 18*60+30, minutes)

	_, err = TimeString("garbage").Minutes()
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("23:30")

	next, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:15"), next)

	prev, err := ts.AddMinutes(-60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("22:30"), prev)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("18:00")))
	assert.False(t, TimeString("18:00").IsBefore(TimeString("18:00")))
	assert.True(t, TimeString("18:30").IsAfter(TimeString("18:00")))
	assert.False(t, TimeString("bad").IsBefore(TimeString("18:00")))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 6, 1, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}
