package reactivity

import (
	"cmp"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Track records that the running effect read target[key]. It does nothing
// when no effect is running or tracking is paused.
//
// target must be comparable by identity, in practice a pointer.
func (e *Engine) Track(target, key any) {
	eff := e.active()
	if eff == nil || eff.stopped {
		return
	}

	depsMap, ok := e.bucket[target]
	if !ok {
		depsMap = map[any]mapset.Set[*Effect]{}
		e.bucket[target] = depsMap
		e.stats.targets.Add(1)
	}
	deps, ok := depsMap[key]
	if !ok {
		deps = mapset.NewThreadUnsafeSet[*Effect]()
		depsMap[key] = deps
	}

	// only remember the set once, reading a key twice must not grow the index
	if deps.Add(eff) {
		eff.deps = append(eff.deps, dep{target: target, key: key, set: deps})
	}
}

// dep is one entry of an effect's reverse index.
type dep struct {
	target, key any
	set         mapset.Set[*Effect]
}

// untrack removes eff from one subscriber set and drops the set, and then the
// target, once nothing subscribes to them any more.
func (e *Engine) untrack(eff *Effect, d dep) {
	d.set.Remove(eff)
	if d.set.Cardinality() > 0 {
		return
	}
	depsMap, ok := e.bucket[d.target]
	if !ok {
		return
	}
	// the key may already hold a newer set that someone subscribed to
	if cur, ok := depsMap[d.key]; !ok || cur.Cardinality() > 0 {
		return
	}
	delete(depsMap, d.key)
	if len(depsMap) == 0 {
		delete(e.bucket, d.target)
		e.stats.targets.Add(-1)
	}
}

// Trigger re-runs or schedules every effect that read target[key], except
// the effect that is doing the write. Keys nobody read are ignored.
func (e *Engine) Trigger(target, key any) {
	depsMap, ok := e.bucket[target]
	if !ok {
		return
	}
	deps, ok := depsMap[key]
	if !ok {
		return
	}
	e.stats.triggers.Add(1)

	current := e.active()
	toRun := make([]*Effect, 0, deps.Cardinality())
	deps.Each(func(eff *Effect) bool {
		if eff != current {
			toRun = append(toRun, eff)
		}
		return false
	})
	// creation order keeps notification deterministic
	slices.SortFunc(toRun, func(a, b *Effect) int {
		return cmp.Compare(a.id, b.id)
	})

	for _, eff := range toRun {
		if eff.stopped {
			continue
		}
		if eff.scheduler != nil {
			e.stats.scheduled.Add(1)
			e.logger.Debug("reactivity: scheduling effect", "effect", eff.id)
			eff.scheduler.Schedule(eff)
			continue
		}
		eff.runReported()
	}
}

// subscribers returns how many effects currently depend on target[key].
func (e *Engine) subscribers(target, key any) int {
	depsMap, ok := e.bucket[target]
	if !ok {
		return 0
	}
	deps, ok := depsMap[key]
	if !ok {
		return 0
	}
	return deps.Cardinality()
}
