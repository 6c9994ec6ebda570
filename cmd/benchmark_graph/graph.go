package main

import (
	"math"
	"math/rand"

	"github.com/delaneyj/effectparty/reactivity"
)

type node interface {
	Value() int
}

// source adapts one key of the sources object to node.
type source struct {
	obj *reactivity.Object[int]
	key int
}

func (s source) Value() int {
	return reactivity.GetAs[int](s.obj, s.key)
}

type graph struct {
	engine  *reactivity.Engine
	sources *reactivity.Object[int]
	layers  [][]*reactivity.ComputedCell[int]
}

func makeGraph(cfg graphConfig) *graph {
	e := reactivity.New()
	raw := make(map[int]any, cfg.Width)
	for i := 0; i < cfg.Width; i++ {
		raw[i] = i
	}
	g := &graph{engine: e, sources: reactivity.Reactive(e, raw)}

	prevRow := make([]node, cfg.Width)
	for i := range prevRow {
		prevRow[i] = source{obj: g.sources, key: i}
	}

	random := rand.New(rand.NewSource(0))
	for l := 1; l < cfg.TotalLayers; l++ {
		row := makeRow(e, prevRow, cfg, random)
		g.layers = append(g.layers, row)

		prevRow = make([]node, len(row))
		for i, c := range row {
			prevRow[i] = c
		}
	}
	return g
}

func makeRow(e *reactivity.Engine, sources []node, cfg graphConfig, random *rand.Rand) []*reactivity.ComputedCell[int] {
	row := make([]*reactivity.ComputedCell[int], len(sources))
	for myDex := range sources {
		mySources := make([]node, 0, cfg.NSources)
		for sourceDex := 0; sourceDex < cfg.NSources; sourceDex++ {
			mySources = append(mySources, sources[(myDex+sourceDex)%len(sources)])
		}

		if random.Float64() < cfg.StaticFraction {
			row[myDex] = reactivity.Computed(e, func() int {
				sum := 0
				for _, src := range mySources {
					sum += src.Value()
				}
				return sum
			})
			continue
		}

		first, tail := mySources[0], mySources[1:]
		row[myDex] = reactivity.Computed(e, func() int {
			sum := first.Value()
			if len(tail) == 0 {
				return sum
			}
			// odd values skip one of the tail reads
			shouldDrop := sum&0x1 > 0
			dropDex := sum % len(tail)
			for i, src := range tail {
				if shouldDrop && i == dropDex {
					continue
				}
				sum += src.Value()
			}
			return sum
		})
	}
	return row
}

type runResult struct {
	sum   int
	evals uint64
}

// run writes one source per iteration and reads a fixed random subset of
// the leaves, returning the sum of those leaves afterwards.
func (g *graph) run(iterations int64, readFraction float64) runResult {
	before := g.engine.Stats().ComputedEvals

	random := rand.New(rand.NewSource(0))
	leaves := g.layers[len(g.layers)-1]
	skipCount := int(math.Round(float64(len(leaves)) * (1 - readFraction)))
	readLeaves := removeElems(leaves, skipCount, random)

	width := g.sources.Len()
	for i := 0; i < int(iterations); i++ {
		sourceDex := i % width
		g.sources.Set(sourceDex, i+sourceDex)

		for _, leaf := range readLeaves {
			leaf.Value()
		}
	}

	sum := 0
	for _, leaf := range readLeaves {
		sum += leaf.Value()
	}
	return runResult{sum: sum, evals: g.engine.Stats().ComputedEvals - before}
}

func removeElems[T any](src []T, rmCount int, random *rand.Rand) []T {
	out := make([]T, len(src))
	copy(out, src)
	for i := 0; i < rmCount; i++ {
		rmDex := random.Intn(len(out))
		out[rmDex] = out[len(out)-1]
		out = out[:len(out)-1]
	}
	return out
}
