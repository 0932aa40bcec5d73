package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDonationStatusCanAdvanceTo(t *testing.T) {
	tests := []struct {
		from DonationStatus
		to   DonationStatus
		want bool
	}{
		{from: DonationStatusAvailable, to: DonationStatusMatched, want: true},
		{from: DonationStatusAvailable, to: DonationStatusDelivered, want: true},
		{from: DonationStatusMatched, to: DonationStatusDelivered, want: true},
		{from: DonationStatusMatched, to: DonationStatusMatched, want: true},
		{from: DonationStatusMatched, to: DonationStatusAvailable, want: false},
		{from: DonationStatusDelivered, to: DonationStatusMatched, want: false},
		{from: DonationStatusDelivered, to: DonationStatusAvailable, want: false},
		{from: DonationStatusAvailable, to: DonationStatus("unknown"), want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
