package graph

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"unitcalc/core/determinism"
	"unitcalc/internal/errors"
)

// transitiveClosure completes the conversion table within each unit type.
// Types are independent subgraphs: each one's seed edges are snapshotted
// up front, closed on its own worker, and merged back into the shared
// table under a single lock.
func (b *Builder) transitiveClosure(ctx context.Context) error {
	var typeNames []string
	for _, t := range b.cat.Types() {
		typeNames = append(typeNames, t.Name)
	}
	determinism.SortStrings(typeNames)

	members := make(map[string][]string, len(typeNames))
	seeds := make(map[string]*ConversionTable, len(typeNames))
	for _, typeName := range typeNames {
		names := b.unitsOfType(typeName)
		members[typeName] = names
		seeds[typeName] = b.seedSubgraph(names)
	}

	workers := b.workers
	if workers > len(typeNames) {
		workers = len(typeNames)
	}

	tasks := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for typeName := range tasks {
				sub := closeSubgraph(members[typeName], seeds[typeName])
				mu.Lock()
				b.table.Merge(sub)
				mu.Unlock()
			}
		}()
	}

	var cancelled error
	for _, typeName := range typeNames {
		select {
		case <-ctx.Done():
			cancelled = errors.Wrap(errors.TypeInternal, "closure cancelled", ctx.Err())
		case tasks <- typeName:
		}
		if cancelled != nil {
			break
		}
	}
	close(tasks)
	wg.Wait()

	if cancelled != nil {
		return cancelled
	}
	b.logger.Debug("transitive closure complete",
		zap.Int("types", len(typeNames)), zap.Int("conversions", b.table.Len()))
	return nil
}

// seedSubgraph extracts the existing edges among one type's units
func (b *Builder) seedSubgraph(names []string) *ConversionTable {
	sub := NewConversionTable()
	for _, from := range names {
		for _, to := range names {
			if from == to {
				continue
			}
			if f, ok := b.table.Get(from, to); ok {
				sub.Set(from, to, f)
			}
		}
	}
	return sub
}

// closeSubgraph runs the subgraph to its fixed point. Each round, an
// edge (a,c) plus an edge (c,d) propagates to (a,d) with the product
// factor and its reciprocal back. Terminates because edges only
// accumulate and the pair count is finite.
func closeSubgraph(names []string, sub *ConversionTable) *ConversionTable {
	for {
		added := 0
		for _, a := range names {
			for _, c := range names {
				if a == c {
					continue
				}
				fac, ok := sub.Get(a, c)
				if !ok {
					continue
				}
				for _, d := range names {
					if d == a || d == c {
						continue
					}
					if fcd, ok := sub.Get(c, d); ok && !sub.Has(a, d) {
						fad := fac.Mul(fcd)
						sub.Set(a, d, fad)
						sub.Set(d, a, determinism.Inv(fad))
						added++
					}
				}
			}
		}
		if added == 0 {
			break
		}
	}
	return sub
}
