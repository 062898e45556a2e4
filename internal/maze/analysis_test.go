package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegame/internal/core"
)

func TestDistancesAndSolutionLength(t *testing.T) {
	m, err := Parse("" +
		"#..E\n" +
		"#.##\n" +
		"S.##\n")
	require.NoError(t, err)

	dist := m.Distances(m.Start())
	assert.Equal(t, 0, dist[0])
	assert.Equal(t, 1, dist[1])
	assert.Equal(t, -1, dist[2], "walls are unreachable")
	assert.Equal(t, 5, m.SolutionLength())
	assert.Equal(t, 2, m.DeadEnds(), "start and end are the only dead ends")
}

func TestDistancesFromWall(t *testing.T) {
	m, err := Parse("S#\n")
	require.NoError(t, err)
	for _, d := range m.Distances(core.Point{X: 1, Y: 0}) {
		assert.Equal(t, -1, d)
	}
}

func TestGeneratedSolutionReachesEnd(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		m := generateSeeded(15, 12, seed)
		assert.GreaterOrEqual(t, m.SolutionLength(), 0, "seed %d", seed)
	}
}
