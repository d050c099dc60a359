package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelfPlayGames(t *testing.T) {
	require.NoError(t, RunSelfPlayGames(1, 10, 20000))
}

func TestSelfPlayManySeeds(t *testing.T) {
	if testing.Short() {
		t.Skip("long self-play sweep")
	}
	for seed := int64(100); seed < 130; seed++ {
		require.NoError(t, RunSelfPlayGames(seed, 3, 20000), "seed %d", seed)
	}
}

func FuzzSelfPlay(f *testing.F) {
	f.Add(int64(7))
	f.Add(int64(42))
	f.Fuzz(func(t *testing.T, seed int64) {
		if err := RunSelfPlayGames(seed, 1, 20000); err != nil {
			t.Fatal(err)
		}
	})
}
