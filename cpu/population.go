package cpu

// SetPopulationSeed reseeds r with the per-chunk population seed for the
// chunk whose minimum corner is at (blockX, blockZ), and returns that seed.
func (r ChunkRandom) SetPopulationSeed(worldSeed int64, blockX, blockZ int32) int64 {
	r.SetSeed(worldSeed)
	l := r.NextLong() | 1
	m := r.NextLong() | 1
	seed := (int64(blockX)*l + int64(blockZ)*m) ^ worldSeed
	r.SetSeed(seed)
	return seed
}

// SetDecoratorSeed reseeds r for one feature of one decoration step, given
// the chunk's population seed.
func (r ChunkRandom) SetDecoratorSeed(populationSeed int64, index, step int) int64 {
	seed := populationSeed + DecoratorOffset(index, step)
	r.SetSeed(seed)
	return seed
}

func DecoratorOffset(index, step int) int64 {
	return int64(index) + 10000*int64(step)
}
