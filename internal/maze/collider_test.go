package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegame/internal/core"
)

func TestColliderAt(t *testing.T) {
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := Collider{X: float64(BlockSize * x), Y: float64(BlockSize * y), W: BlockSize, H: BlockSize}
			assert.Equal(t, want, ColliderAt(x, y))
		}
	}
}

func TestCollidesWith(t *testing.T) {
	base := Collider{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name  string
		other Collider
		want  bool
	}{
		{"overlap", Collider{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Collider{X: 2, Y: 2, W: 1, H: 1}, true},
		{"touching right edge", Collider{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching top edge", Collider{X: 0, Y: 10, W: 5, H: 5}, false},
		{"touching corner", Collider{X: 10, Y: 10, W: 5, H: 5}, false},
		{"apart", Collider{X: 20, Y: 20, W: 1, H: 1}, false},
		{"overlap on x only", Collider{X: 5, Y: 11, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.CollidesWith(tt.other))
			assert.Equal(t, tt.want, tt.other.CollidesWith(base))
		})
	}
}

func TestCollidesWithSymmetric(t *testing.T) {
	rng := core.NewRNG(5)
	for i := 0; i < 2000; i++ {
		a := randomCollider(rng, 50)
		b := randomCollider(rng, 50)
		require.Equal(t, a.CollidesWith(b), b.CollidesWith(a), "a=%+v b=%+v", a, b)
	}
}

func randomCollider(rng *core.RNG, span float64) Collider {
	return Collider{
		X: rng.Float64()*span - 5,
		Y: rng.Float64()*span - 5,
		W: rng.Float64() * 15,
		H: rng.Float64() * 15,
	}
}

func TestCheckCollision(t *testing.T) {
	m, err := Parse("" +
		"..#\n" +
		"S.E\n")
	require.NoError(t, err)

	// Wall at cell (2,1) spans [20,30]x[10,20].
	assert.False(t, m.CheckCollision(Collider{X: 0, Y: 0, W: 5, H: 5}))
	assert.False(t, m.CheckCollision(Collider{X: 15, Y: 5, W: 5, H: 5}), "touching the wall corner is not a collision")
	assert.True(t, m.CheckCollision(Collider{X: 16, Y: 6, W: 5, H: 5}))
	assert.True(t, m.CheckCollision(Collider{X: 22, Y: 12, W: 1, H: 1}))
	assert.False(t, m.CheckCollision(Collider{X: 40, Y: 40, W: 5, H: 5}), "space outside the grid is open")
}

func TestCheckCollisionNearMatchesFullScan(t *testing.T) {
	rng := core.NewRNG(11)
	for seed := int64(1); seed <= 5; seed++ {
		m := generateSeeded(12, 8, seed)
		for i := 0; i < 3000; i++ {
			c := Collider{
				X: rng.Float64()*140 - 10,
				Y: rng.Float64()*100 - 10,
				W: rng.Float64() * 12,
				H: rng.Float64() * 12,
			}
			if rng.IntN(10) == 0 {
				// Snap onto the cell lattice to exercise edge contact.
				c.X = float64(BlockSize * rng.IntN(12))
				c.Y = float64(BlockSize * rng.IntN(8))
				c.W, c.H = BlockSize/2, BlockSize/2
			}
			require.Equal(t, m.CheckCollision(c), m.CheckCollisionNear(c), "collider %+v\n%s", c, m)
		}
	}
}

func TestCheckCollisionNoWalls(t *testing.T) {
	m, err := Parse("S.E")
	require.NoError(t, err)
	assert.False(t, m.CheckCollision(Collider{X: 0, Y: 0, W: 30, H: 10}))
	assert.False(t, m.CheckCollisionNear(Collider{X: 0, Y: 0, W: 30, H: 10}))
}
