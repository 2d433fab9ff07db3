package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{
			name:  "Plain pair",
			input: "6.5955,3.3671",
			lat:   6.5955,
			lng:   3.3671,
		},
		{
			name:  "Whitespace tolerated",
			input: " 9.0765 , 7.3986 ",
			lat:   9.0765,
			lng:   7.3986,
		},
		{
			name:    "Missing longitude",
			input:   "6.5955",
			wantErr: true,
		},
		{
			name:    "Non numeric",
			input:   "abc,def",
			wantErr: true,
		},
		{
			name:    "Too many parts",
			input:   "1,2,3",
			wantErr: true,
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lng, err := ParseCoordinates(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lat, lat)
			assert.Equal(t, tt.lng, lng)
		})
	}
}

func TestDistance(t *testing.T) {
	// identical points
	assert.Zero(t, Distance(6.5955, 3.3671, 6.5955, 3.3671))

	// Ikeja to Abuja is roughly 600 km
	d := Distance(6.5955, 3.3671, 9.0765, 7.3986)
	assert.InDelta(t, 520_000, d, 100_000)

	// symmetric
	assert.InDelta(t, d, Distance(9.0765, 7.3986, 6.5955, 3.3671), 0.001)
}

func TestWithinRadius(t *testing.T) {
	// user standing at the store reference point
	ok, err := WithinRadius("6.5955,3.3671", 6.5955, 3.3671, DefaultGeofenceRadiusMeters)
	require.NoError(t, err)
	assert.True(t, ok)

	// a few hundred meters away still passes with the default radius
	ok, err = WithinRadius("6.5955,3.3671", 6.5930, 3.3637, DefaultGeofenceRadiusMeters)
	require.NoError(t, err)
	assert.True(t, ok)

	// another city fails even with the generous default
	ok, err = WithinRadius("6.5955,3.3671", 9.0765, 7.3986, DefaultGeofenceRadiusMeters)
	require.NoError(t, err)
	assert.False(t, ok)

	// tight radius rejects nearby positions
	ok, err = WithinRadius("6.5955,3.3671", 6.5930, 3.3637, 100)
	require.NoError(t, err)
	assert.False(t, ok)

	// malformed store data surfaces as an error, not a silent false
	_, err = WithinRadius("not-a-coordinate", 6.5955, 3.3671, DefaultGeofenceRadiusMeters)
	assert.Error(t, err)
}
