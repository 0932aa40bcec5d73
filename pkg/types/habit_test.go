package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSavingActivity(t *testing.T) {
	tests := []struct {
		activity string
		want     bool
	}{
		{activity: "Hemat Air", want: true},
		{activity: "hemat listrik di rumah", want: true},
		{activity: "Penghematan energi", want: true},
		{activity: "PENGHEMATAN", want: true},
		{activity: "Jalan Kaki", want: false},
		{activity: "Menanam pohon", want: false},
		{activity: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.activity, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSavingActivity(tt.activity))
		})
	}
}

func TestHabitPoints(t *testing.T) {
	assert.Equal(t, 50, HabitPoints(10, 5))
	assert.Equal(t, 0, HabitPoints(0, 5))
	assert.Equal(t, 13, HabitPoints(2.5, 5))
	assert.Equal(t, 12, HabitPoints(2.4, 5))
}

func TestEcoHabitLogDerive(t *testing.T) {
	log := EcoHabitLog{ActivityType: "hemat air"}
	log.Derive()
	assert.True(t, log.IsSaving)

	log.ActivityType = "Jalan Kaki"
	log.Derive()
	assert.False(t, log.IsSaving)
}
