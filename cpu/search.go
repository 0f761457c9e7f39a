package cpu

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vktec/leafseed"
	"github.com/vktec/leafseed/util"
)

const DefaultProgressInterval = 10_000_000

// Workers poll for cancellation every cancelCheckMask+1 seeds.
const cancelCheckMask = 1<<16 - 1

var _ leafseed.Searcher = (*Searcher)(nil)

type Searcher struct {
	workerCount int
	table       []leafseed.Signature
	params      leafseed.Params
	log         *slog.Logger

	// ProgressInterval is the number of seeds the reporting worker checks
	// between calls to Progress.
	ProgressInterval int64
	// Progress, if set, is called from the worker whose range ends at the
	// top of the searched range.
	Progress func(leafseed.Progress)
	// Found, if set, is called once per result as results arrive. Calls are
	// never concurrent.
	Found func(leafseed.Result)
}

func NewSearcher(workerCount int, table []leafseed.Signature, params leafseed.Params, log *slog.Logger) (*Searcher, error) {
	if err := leafseed.ValidateTable(table); err != nil {
		return nil, err
	}
	if workerCount <= 0 {
		workerCount = runtime.GOMAXPROCS(0)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Searcher{
		workerCount:      workerCount,
		table:            table,
		params:           params,
		log:              log,
		ProgressInterval: DefaultProgressInterval,
	}, nil
}

// Search checks every seed in [from, to]. If ctx is cancelled it stops
// early and returns the results found so far along with ctx's error.
func (s *Searcher) Search(ctx context.Context, from, to int32) ([]leafseed.Result, error) {
	if from > to {
		from, to = to, from
	}

	start := time.Now()
	ranges := Partition(from, to, s.workerCount)
	resultCh := make(chan leafseed.Result, 8)

	g, gctx := errgroup.WithContext(ctx)
	for i, rng := range ranges {
		s.log.Debug("starting worker", "worker", i, "from", rng.From, "to", rng.To)
		reporter := rng.To == to
		g.Go(func() error {
			return s.search(gctx, rng, reporter, start, resultCh)
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
		close(resultCh)
	}()

	var results []leafseed.Result
	for res := range resultCh {
		s.log.Debug("seed found", "seed", res.Seed, "matched", res.Matched)
		if s.Found != nil {
			s.Found(res)
		}

		i := len(results)
		results = append(results, res)
		for ; i > 0 && res.OrderBefore(results[i-1]); i-- {
			results[i] = results[i-1]
		}
		results[i] = res
	}
	err := <-done

	s.log.Info("search finished",
		"from", from,
		"to", to,
		"workers", len(ranges),
		"results", len(results),
		"elapsed", time.Since(start),
	)
	return results, err
}

func (s *Searcher) search(ctx context.Context, rng SeedRange, reporter bool, start time.Time, resultCh chan<- leafseed.Result) error {
	interval := s.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	e := NewEngine(s.table, s.params)
	total := float64(rng.Count())
	for seed := int64(rng.From); seed <= int64(rng.To); seed++ {
		done := seed - int64(rng.From)
		if done&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if reporter && s.Progress != nil && done%interval == 0 {
			s.Progress(leafseed.Progress{
				Percent: 100 * float64(done) / total,
				Elapsed: time.Since(start),
			})
		}

		if res, ok := e.Check(int32(seed)); ok {
			select {
			case resultCh <- res:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}

// SeedRange is an inclusive range of seeds.
type SeedRange struct {
	From, To int32
}

func (r SeedRange) Count() int64 {
	return int64(r.To) - int64(r.From) + 1
}

// Partition splits [from, to] into at most n contiguous, disjoint ranges of
// near-equal size, in ascending order.
func Partition(from, to int32, n int) []SeedRange {
	if from > to {
		from, to = to, from
	}
	total := SeedRange{from, to}.Count()
	if n <= 0 {
		n = 1
	}
	if int64(n) > total {
		n = int(total)
	}

	ranges := make([]SeedRange, 0, n)
	next := int64(from)
	for i := 0; i < n; i++ {
		size := total / int64(n)
		if int64(i) < total%int64(n) {
			size++
		}
		ranges = append(ranges, SeedRange{int32(next), int32(next + size - 1)})
		next += size
	}
	util.Assert(next == int64(to)+1, "partition does not cover the range")
	return ranges
}
