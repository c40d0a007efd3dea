// Package cluster_test validates the min-odd-cycle monoid and the in-process
// communicator's broadcast and reduce collectives, including the gob wire
// round trip.
package cluster_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcb/cluster"
	"github.com/katalvlaran/mcb/gf2"
)

func TestMin_IdentityAndValidity(t *testing.T) {
	cyc := cluster.MinOddCycle{Edges: []int{1, 2}, Weight: 7, Exists: true}
	zero := cluster.MinOddCycle{}

	require.Equal(t, cyc, cluster.Min(zero, cyc))
	require.Equal(t, cyc, cluster.Min(cyc, zero))
	require.Equal(t, zero, cluster.Min(zero, zero))
}

func TestMin_PrefersLowerWeight(t *testing.T) {
	light := cluster.MinOddCycle{Edges: []int{5}, Weight: 3, Exists: true}
	heavy := cluster.MinOddCycle{Edges: []int{0}, Weight: 4, Exists: true}

	require.Equal(t, light, cluster.Min(light, heavy))
	require.Equal(t, light, cluster.Min(heavy, light))
}

func TestMin_BreaksWeightTiesLexicographically(t *testing.T) {
	a := cluster.MinOddCycle{Edges: []int{0, 3, 9}, Weight: 5, Exists: true}
	b := cluster.MinOddCycle{Edges: []int{0, 4}, Weight: 5, Exists: true}

	// Same weight either order: the lexicographically smaller vector wins,
	// so every partition of the candidate space elects the same cycle.
	require.Equal(t, a, cluster.Min(a, b))
	require.Equal(t, a, cluster.Min(b, a))

	// A strict prefix precedes its extension.
	p := cluster.MinOddCycle{Edges: []int{0, 3}, Weight: 5, Exists: true}
	require.Equal(t, p, cluster.Min(a, p))
}

func TestNewLocalWorld_Validation(t *testing.T) {
	_, err := cluster.NewLocalWorld(0)
	require.ErrorIs(t, err, cluster.ErrBadWorldSize)
}

func TestBroadcast_DeliversRootValue(t *testing.T) {
	var mu sync.Mutex
	received := make(map[int][]int)

	err := cluster.Run(4, func(c cluster.Communicator) error {
		v := gf2.Zero()
		if c.Rank() == 0 {
			var err error
			if v, err = gf2.FromIndices([]int{2, 5, 8}); err != nil {
				return err
			}
		}
		if err := c.Broadcast(0, v); err != nil {
			return err
		}
		mu.Lock()
		received[c.Rank()] = v.Indices()
		mu.Unlock()

		return nil
	})
	require.NoError(t, err)
	for r := 0; r < 4; r++ {
		require.Equal(t, []int{2, 5, 8}, received[r], "rank %d", r)
	}
}

func TestBroadcast_BadRoot(t *testing.T) {
	comms, err := cluster.NewLocalWorld(1)
	require.NoError(t, err)
	require.ErrorIs(t, comms[0].Broadcast(5, gf2.Zero()), cluster.ErrBadRoot)
}

func TestReduceMinOddCycle_ElectsGlobalWinner(t *testing.T) {
	// Rank r contributes weight 10-r; rank 3 must win on every run, and only
	// the root sees the result.
	var mu sync.Mutex
	got := make(map[int]cluster.MinOddCycle)

	err := cluster.Run(4, func(c cluster.Communicator) error {
		local := cluster.MinOddCycle{
			Edges:  []int{c.Rank()},
			Weight: float64(10 - c.Rank()),
			Exists: true,
		}
		res, err := c.ReduceMinOddCycle(0, local)
		if err != nil {
			return err
		}
		mu.Lock()
		got[c.Rank()] = res
		mu.Unlock()

		return nil
	})
	require.NoError(t, err)

	require.Equal(t, cluster.MinOddCycle{Edges: []int{3}, Weight: 7, Exists: true}, got[0])
	for r := 1; r < 4; r++ {
		require.False(t, got[r].Exists, "non-root rank %d must receive the zero value", r)
	}
}

func TestReduceMinOddCycle_TieAcrossRanks(t *testing.T) {
	// Equal weights on every rank: the lexicographically smallest edge
	// vector must win regardless of arrival order.
	var mu sync.Mutex
	var winner cluster.MinOddCycle

	err := cluster.Run(3, func(c cluster.Communicator) error {
		local := cluster.MinOddCycle{
			Edges:  []int{c.Rank(), 9},
			Weight: 5,
			Exists: true,
		}
		res, err := c.ReduceMinOddCycle(0, local)
		if err != nil {
			return err
		}
		if c.Rank() == 0 {
			mu.Lock()
			winner = res
			mu.Unlock()
		}

		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 9}, winner.Edges)
}

func TestSingleRankWorld_IsATrivialLoop(t *testing.T) {
	comms, err := cluster.NewLocalWorld(1)
	require.NoError(t, err)
	c := comms[0]
	require.Equal(t, 0, c.Rank())
	require.Equal(t, 1, c.Size())

	total := 1.5
	require.NoError(t, c.Broadcast(0, &total))
	res, err := c.ReduceMinOddCycle(0, cluster.MinOddCycle{Edges: []int{1}, Weight: 2, Exists: true})
	require.NoError(t, err)
	require.True(t, res.Exists)
}
