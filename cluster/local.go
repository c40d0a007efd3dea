package cluster

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// localWorld is an in-process Communicator: size ranks wired pairwise with
// buffered byte channels. Every payload crosses a real gob encode/decode
// round trip, so the in-process world exercises exactly the wire path a
// multi-process deployment would.
type localWorld struct {
	size int
	// mail[from][to] carries gob frames from rank `from` to rank `to`.
	mail [][]chan []byte
}

// localComm is one rank's handle on a localWorld.
type localComm struct {
	world *localWorld
	rank  int
}

// NewLocalWorld creates an in-process world of the given size and returns one
// Communicator per rank. Run each rank's program on its own goroutine; the
// collectives provide the lockstep synchronization.
func NewLocalWorld(size int) ([]Communicator, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadWorldSize, size)
	}

	w := &localWorld{size: size, mail: make([][]chan []byte, size)}
	for from := 0; from < size; from++ {
		w.mail[from] = make([]chan []byte, size)
		for to := 0; to < size; to++ {
			w.mail[from][to] = make(chan []byte, 1)
		}
	}

	comms := make([]Communicator, size)
	for r := 0; r < size; r++ {
		comms[r] = &localComm{world: w, rank: r}
	}

	return comms, nil
}

// Run is a convenience SPMD harness: it creates a local world of the given
// size and runs fn once per rank on its own goroutine, returning the first
// error any rank produced.
func Run(size int, fn func(Communicator) error) error {
	comms, err := NewLocalWorld(size)
	if err != nil {
		return err
	}

	var eg errgroup.Group
	for _, c := range comms {
		c := c
		eg.Go(func() error { return fn(c) })
	}

	return eg.Wait()
}

func (c *localComm) Rank() int { return c.rank }
func (c *localComm) Size() int { return c.world.size }

// Broadcast implements Communicator. The root encodes once and fans the frame
// out; every other rank blocks on its inbox and decodes in place.
func (c *localComm) Broadcast(root int, value interface{}) error {
	if root < 0 || root >= c.world.size {
		return fmt.Errorf("%w: %d", ErrBadRoot, root)
	}
	if c.world.size == 1 {
		return nil
	}

	if c.rank == root {
		frame, err := encodeFrame(value)
		if err != nil {
			return err
		}
		for to := 0; to < c.world.size; to++ {
			if to == root {
				continue
			}
			c.world.mail[root][to] <- frame
		}

		return nil
	}

	frame := <-c.world.mail[root][c.rank]

	return decodeFrame(frame, value)
}

// ReduceMinOddCycle implements Communicator. Every non-root rank ships its
// local value to the root; the root folds the payloads in rank order under
// Min, which fixes the winner deterministically.
func (c *localComm) ReduceMinOddCycle(root int, local MinOddCycle) (MinOddCycle, error) {
	if root < 0 || root >= c.world.size {
		return MinOddCycle{}, fmt.Errorf("%w: %d", ErrBadRoot, root)
	}

	if c.rank != root {
		frame, err := encodeFrame(&local)
		if err != nil {
			return MinOddCycle{}, err
		}
		c.world.mail[c.rank][root] <- frame

		return MinOddCycle{}, nil
	}

	acc := MinOddCycle{}
	for from := 0; from < c.world.size; from++ {
		var contribution MinOddCycle
		if from == root {
			contribution = local
		} else {
			frame := <-c.world.mail[from][root]
			if err := decodeFrame(frame, &contribution); err != nil {
				return MinOddCycle{}, err
			}
		}
		acc = Min(acc, contribution)
	}

	return acc, nil
}

// encodeFrame gob-encodes a collective payload.
func encodeFrame(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return nil, fmt.Errorf("cluster: encode: %w", err)
	}

	return buf.Bytes(), nil
}

// decodeFrame gob-decodes a collective payload into value (a pointer).
func decodeFrame(frame []byte, value interface{}) error {
	if err := gob.NewDecoder(bytes.NewReader(frame)).Decode(value); err != nil {
		return fmt.Errorf("cluster: decode: %w", err)
	}

	return nil
}
