package leafseed

type Result struct {
	Seed    int32
	Matched int
}

func (a Result) OrderBefore(b Result) bool {
	// Sort by matched trees
	if a.Matched != b.Matched {
		return a.Matched > b.Matched
	}

	// Then by distance from 0
	aD, bD := abs(int64(a.Seed)), abs(int64(b.Seed))
	if aD != bD {
		return aD < bD
	}

	// Then finally break ties by sign
	return a.Seed < b.Seed
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
