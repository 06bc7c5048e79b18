package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func TestBlocks(t *testing.T) {
	tests := []struct {
		name        string
		slot        types.TimeString
		booking     types.TimeString
		turningTime int
		want        bool
	}{
		{name: "booking exactly at slot time blocks it", slot: "18:00", booking: "18:00", turningTime: 60, want: true},
		{name: "slot inside occupancy window", slot: "18:30", booking: "18:00", turningTime: 60, want: true},
		{name: "window end is exclusive", slot: "19:00", booking: "18:00", turningTime: 60, want: false},
		{name: "slot before booking", slot: "17:30", booking: "18:00", turningTime: 60, want: false},
		{name: "last minute of window", slot: "18:59", booking: "18:00", turningTime: 60, want: true},
		{name: "long turning time", slot: "19:25", booking: "18:00", turningTime: 90, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Blocks(tt.slot, tt.booking, tt.turningTime)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlocks_MalformedTimes(t *testing.T) {
	_, err := Blocks("6:xx PM", "18:00", 60)
	assert.ErrorIs(t, err, types.ErrMalformedTime)

	_, err = Blocks("18:00", "6:xx PM", 60)
	assert.ErrorIs(t, err, types.ErrMalformedTime)
}
