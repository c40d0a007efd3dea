package cluster

// Communicator is the collective-communication surface the distributed driver
// needs: rank identification, a broadcast, and a reduction under the Min
// monoid. It mirrors the minimal MPI subset the algorithm uses — nothing
// point-to-point, no asynchrony, one collective at a time per world.
//
// All ranks of a world must call the same collective in the same order;
// collectives block until every rank has participated.
type Communicator interface {
	// Rank returns this process's rank in [0, Size()).
	Rank() int

	// Size returns the number of ranks in the world.
	Size() int

	// Broadcast distributes root's value to every rank. value must be a
	// pointer to a gob-encodable value; on non-root ranks it is overwritten
	// with the decoded payload, on the root it is left untouched.
	Broadcast(root int, value interface{}) error

	// ReduceMinOddCycle folds every rank's local value under Min and delivers
	// the result to root. Non-root ranks receive the zero MinOddCycle.
	ReduceMinOddCycle(root int, local MinOddCycle) (MinOddCycle, error)
}
