package maps_test

import (
	"testing"

	"github.com/UnknownOlympus/metamap/internal/maps"
	"github.com/UnknownOlympus/metamap/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkBuilder_Link(t *testing.T) {
	builder, err := maps.NewLinkBuilder(maps.DefaultHost)
	require.NoError(t, err)

	t.Run("example coordinates", func(t *testing.T) {
		coords := models.Coordinates{Latitude: 40.44611111111111, Longitude: -79.98222222222222}

		assert.Equal(t,
			"https://www.google.com/maps?q=40.44611111111111,-79.98222222222222",
			builder.Link(coords),
		)
	})

	t.Run("whole degrees", func(t *testing.T) {
		assert.Equal(t, "https://www.google.com/maps?q=10,-20", builder.Link(models.Coordinates{Latitude: 10, Longitude: -20}))
	})

	t.Run("custom host", func(t *testing.T) {
		custom, err := maps.NewLinkBuilder("maps.example.org")
		require.NoError(t, err)

		assert.Equal(t, "https://maps.example.org/maps?q=1.5,2.25", custom.Link(models.Coordinates{Latitude: 1.5, Longitude: 2.25}))
	})
}

func TestNewLinkBuilder_InvalidHost(t *testing.T) {
	for _, host := range []string{"", "https://www.google.com", "www.google.com/maps", "bad host"} {
		builder, err := maps.NewLinkBuilder(host)

		require.ErrorIs(t, err, maps.ErrInvalidHost, host)
		assert.Nil(t, builder)
	}
}
