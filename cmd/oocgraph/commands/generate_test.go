package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildFixtureDispatchesByName(t *testing.T) {
	require := require.New(t)

	genFlags.fixture = "cycle"
	genFlags.nodes = 5
	edges, err := buildFixture()
	require.NoError(err)
	require.Len(edges, 5)

	genFlags.fixture = "complete"
	genFlags.nodes = 4
	edges, err = buildFixture()
	require.NoError(err)
	require.Len(edges, 6)

	genFlags.fixture = "random-regular"
	genFlags.nodes = 6
	genFlags.degree = 3
	genFlags.seed = 7
	edges, err = buildFixture()
	require.NoError(err)
	require.Len(edges, 9)

	genFlags.fixture = "nonsense"
	_, err = buildFixture()
	require.Error(err)
}
