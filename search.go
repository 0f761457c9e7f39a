package leafseed

import (
	"context"
	"time"
)

// Searcher sweeps the inclusive seed range [from, to].
type Searcher interface {
	Search(ctx context.Context, from, to int32) ([]Result, error)
}

// Progress is a snapshot from the reporting worker.
type Progress struct {
	Percent float64
	Elapsed time.Duration
}

// Params fixes where and how the tree signatures are looked for.
type Params struct {
	// ChunkX and ChunkZ are the block coordinates of the chunk's minimum corner.
	ChunkX, ChunkZ int32
	// Step and Index select the decoration step and the tree feature's index
	// within it.
	Step, Index int
	// MaxAttempts bounds the placement attempts tried per seed.
	MaxAttempts int
	// Remaining is the number of unmatched signatures at which a seed is
	// reported.
	Remaining int
}

func DefaultParams() Params {
	return Params{
		ChunkX:      64,
		ChunkZ:      -96,
		Step:        9,
		Index:       20,
		MaxAttempts: 100,
		Remaining:   1,
	}
}
