package tesseract4d

import (
	"fmt"
	"sort"
	"sync"
)

// logKeep bounds how many updates are retained per object.
const logKeep = 256

type UpdateLog struct {
	ID       string
	Params   Params
	Singular int  // vertices that used the fallback scale
	Finite   bool // all coordinates finite
}

type UpdateLogCache struct {
	mu      sync.Mutex
	total   map[string]int
	updates map[string][]UpdateLog // last logKeep updates per object id
}

var cache = &UpdateLogCache{
	total:   make(map[string]int),
	updates: make(map[string][]UpdateLog),
}

func logUpdate(id string, pr *Projection) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.total[id]++
	l := append(cache.updates[id], UpdateLog{
		ID:       id,
		Params:   pr.Params,
		Singular: pr.Singular(),
		Finite:   pr.Finite(),
	})
	if len(l) > logKeep {
		l = l[len(l)-logKeep:]
	}
	cache.updates[id] = l
}

func updateStats() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	ids := make([]string, 0, len(cache.total))
	for id := range cache.total {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		singular, bad := 0, 0
		for _, u := range cache.updates[id] {
			if u.Singular > 0 {
				singular++
			}
			if !u.Finite {
				bad++
			}
		}
		fmt.Printf("Object %s: %d updates, last %d: %d near-singular, %d non-finite\n",
			id, cache.total[id], len(cache.updates[id]), singular, bad)
	}
}
