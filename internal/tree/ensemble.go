package tree

import (
	"context"
	"sync"
)

// Ensemble generates one tree per seed in parallel. Every member owns its
// generator, so results depend only on the seed and not on scheduling.
type Ensemble struct {
	variant          Variant
	originX, originY float64
	numRuns          int
	seedStart        int64
}

func NewEnsemble(v Variant, originX, originY float64, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{variant: v, originX: originX, originY: originY, numRuns: numRuns, seedStart: seedStart}
}

// Seed returns the seed used for member i.
func (e *Ensemble) Seed(i int) int64 {
	return e.seedStart + int64(i)
}

// Run returns the members in seed order, or ctx.Err() if ctx ends first.
func (e *Ensemble) Run(ctx context.Context) ([]Sequence, error) {
	results := make([]Sequence, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			results[idx] = NewSeededGenerator(e.Seed(idx)).Generate(e.variant, e.originX, e.originY)
		}(i)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// MeanLengthByDepth averages the per-depth means of every member.
func MeanLengthByDepth(seqs []Sequence) []float64 {
	var sums []float64
	var counts []int
	for _, s := range seqs {
		for d, m := range s.MeanLengthByDepth() {
			for len(sums) <= d {
				sums = append(sums, 0)
				counts = append(counts, 0)
			}
			sums[d] += m
			counts[d]++
		}
	}
	for d := range sums {
		sums[d] /= float64(counts[d])
	}
	return sums
}
