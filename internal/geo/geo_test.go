package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	t.Parallel()

	taipei101 := orb.Point{121.5645, 25.0330}
	taipeiMain := orb.Point{121.5170, 25.0478}
	kaohsiung := orb.Point{120.3014, 22.6273}

	t.Run("zero distance for identical points", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, DistanceKm(taipei101, taipei101))
	})

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, DistanceKm(taipei101, kaohsiung), DistanceKm(kaohsiung, taipei101), 1e-9)
	})

	t.Run("short hop within the city", func(t *testing.T) {
		t.Parallel()

		d := DistanceKm(taipei101, taipeiMain)
		assert.InDelta(t, 5.07, d, 0.2)
	})

	t.Run("cross-island distance", func(t *testing.T) {
		t.Parallel()

		d := DistanceKm(taipei101, kaohsiung)
		assert.InDelta(t, 297, d, 5)
	})

	t.Run("relevance radius boundary", func(t *testing.T) {
		t.Parallel()

		// Roughly 0.36 degrees of latitude is 40km.
		near := orb.Point{121.5645, 25.0330 + 0.35}
		far := orb.Point{121.5645, 25.0330 + 0.37}

		assert.Less(t, DistanceKm(taipei101, near), 40.0)
		assert.Greater(t, DistanceKm(taipei101, far), 40.0)
	})
}
