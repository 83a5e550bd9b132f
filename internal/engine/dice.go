package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

const DieSides = 6

// Roller throws the two dice of a turn.
type Roller interface {
	Roll() (int, int)
}

// Dice rolls two six-sided dice from the shared random source.
type Dice struct {
	rng Rand
}

func NewDice(rng Rand) *Dice {
	return &Dice{rng: rng}
}

func (d *Dice) Roll() (int, int) {
	return rollDie(d.rng), rollDie(d.rng)
}

func rollDie(rng Rand) int {
	return rng.IntN(DieSides) + 1
}

// NewRand returns a PCG source for seed. A zero seed is replaced with one
// read from crypto/rand; the seed actually used is returned.
func NewRand(seed uint64) (*rand.Rand, uint64, error) {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			return nil, 0, fmt.Errorf("read random seed: %w", err)
		}
		seed = binary.LittleEndian.Uint64(b[:])
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed, nil
}
