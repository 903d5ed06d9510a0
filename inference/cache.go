// SPDX-License-Identifier: MIT

package inference

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/bayesnet/ordering"
)

// orderCache memoizes heuristic orders. Each key is computed at most once
// even under concurrent misses; stored orders are never mutated.
type orderCache struct {
	group  singleflight.Group
	orders sync.Map // key -> []string
}

// orderKey is independent of the order of query and evidence names.
func orderKey(query []string, evidence map[string]int, h ordering.Heuristic, prune bool) string {
	q := append([]string(nil), query...)
	sort.Strings(q)
	e := make([]string, 0, len(evidence))
	for k := range evidence {
		e = append(e, k)
	}
	sort.Strings(e)

	var b strings.Builder
	b.WriteString(h.String())
	if prune {
		b.WriteString("|pruned")
	}
	b.WriteString("|q:")
	b.WriteString(strings.Join(q, "\x00"))
	b.WriteString("|e:")
	b.WriteString(strings.Join(e, "\x00"))

	return b.String()
}

// get returns the order for key, computing it with compute on a miss.
// hit reports whether the order came from the cache.
func (c *orderCache) get(key string, compute func() ([]string, error)) (order []string, hit bool, err error) {
	if v, ok := c.orders.Load(key); ok {
		return v.([]string), true, nil
	}
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if v, ok := c.orders.Load(key); ok {
			return v, nil
		}
		o, err := compute()
		if err != nil {
			return nil, err
		}
		c.orders.Store(key, o)

		return o, nil
	})
	if err != nil {
		return nil, false, err
	}

	return v.([]string), false, nil
}

// len counts cached keys.
func (c *orderCache) len() int {
	n := 0
	c.orders.Range(func(_, _ interface{}) bool {
		n++
		return true
	})

	return n
}
