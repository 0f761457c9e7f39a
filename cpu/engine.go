package cpu

import "github.com/vktec/leafseed"

// Draws an oak makes between its position and its trunk height, and
// between the trunk height and the first checked corner leaf.
const (
	drawsBeforeHeight = 2
	drawsBeforeLeaves = 5
)

// Engine checks candidate seeds against a table of tree signatures. It keeps
// its generator and scratch space between seeds, so each worker needs its own.
type Engine struct {
	table   []leafseed.Signature
	params  leafseed.Params
	live    Xoroshiro
	pending []int
}

func NewEngine(table []leafseed.Signature, params leafseed.Params) *Engine {
	if err := leafseed.ValidateTable(table); err != nil {
		panic(err)
	}
	return &Engine{
		table:   table,
		params:  params,
		pending: make([]int, 0, len(table)),
	}
}

// Check replays the tree placement attempts for seed. It reports the seed
// once no more than params.Remaining signatures are left unmatched.
func (e *Engine) Check(seed int32) (leafseed.Result, bool) {
	r := NewChunkRandom(&e.live)
	popSeed := r.SetPopulationSeed(int64(seed), e.params.ChunkX, e.params.ChunkZ)
	r.SetDecoratorSeed(popSeed, e.params.Index, e.params.Step)

	e.pending = e.pending[:0]
	for i := range e.table {
		e.pending = append(e.pending, i)
	}

	x := r.NextInt(leafseed.ChunkSize)
	for attempt := 0; attempt < e.params.MaxAttempts; attempt++ {
		z := r.NextInt(leafseed.ChunkSize)

		for i, idx := range e.pending {
			sig := &e.table[idx]
			if x != sig.X || z != sig.Z {
				continue
			}

			peek, ok := e.peekTree(sig)
			if !ok {
				continue
			}

			// Commit the speculative draws
			e.live = peek
			z = r.NextInt(leafseed.ChunkSize)
			e.pending = append(e.pending[:i], e.pending[i+1:]...)

			if len(e.pending) <= e.params.Remaining {
				return leafseed.Result{Seed: seed, Matched: len(e.table) - len(e.pending)}, true
			}
			break
		}
		x = z
	}
	return leafseed.Result{}, false
}

// peekTree draws a tree's shape from a copy of the live generator and
// returns that copy if the shape matches sig.
func (e *Engine) peekTree(sig *leafseed.Signature) (Xoroshiro, bool) {
	peek := e.live
	r := NewChunkRandom(&peek)

	peek.Skip(drawsBeforeHeight)
	if r.NextInt(leafseed.MaxHeight) != sig.Height {
		return peek, false
	}

	peek.Skip(drawsBeforeLeaves)
	for _, leaf := range sig.Leaves {
		if !leaf.Matches(r.NextInt(2)) {
			return peek, false
		}
	}
	return peek, true
}
