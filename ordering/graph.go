// SPDX-License-Identifier: MIT

package ordering

// interaction is the undirected moral graph of a factor multiset: two
// variables are adjacent iff some scope contains both.
type interaction struct {
	adj map[string]map[string]struct{}
}

func newInteraction(scopes [][]string) *interaction {
	g := &interaction{adj: make(map[string]map[string]struct{})}
	for _, scope := range scopes {
		for i, u := range scope {
			g.ensure(u)
			for _, w := range scope[i+1:] {
				g.connect(u, w)
			}
		}
	}

	return g
}

func (g *interaction) ensure(v string) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[string]struct{})
	}
}

func (g *interaction) connect(u, w string) {
	if u == w {
		return
	}
	g.ensure(u)
	g.ensure(w)
	g.adj[u][w] = struct{}{}
	g.adj[w][u] = struct{}{}
}

func (g *interaction) adjacent(u, w string) bool {
	_, ok := g.adj[u][w]
	return ok
}

func (g *interaction) neighbors(v string) []string {
	out := make([]string, 0, len(g.adj[v]))
	for w := range g.adj[v] {
		out = append(out, w)
	}

	return out
}

// eliminate turns the neighbourhood of v into a clique and removes v.
func (g *interaction) eliminate(v string) {
	nb := g.neighbors(v)
	for i, u := range nb {
		for _, w := range nb[i+1:] {
			g.connect(u, w)
		}
		delete(g.adj[u], v)
	}
	delete(g.adj, v)
}

// cost scores eliminating v under h. Lower is better.
func (g *interaction) cost(v string, h Heuristic, cards map[string]int) float64 {
	nb := g.neighbors(v)
	switch h {
	case MinNeighbors:
		return float64(len(nb))

	case MinWeight:
		w := 1.0
		for _, u := range nb {
			w *= float64(cards[u])
		}

		return w

	case WeightedMinFill:
		var total float64
		for i, u := range nb {
			for _, x := range nb[i+1:] {
				if !g.adjacent(u, x) {
					total += float64(cards[u]) * float64(cards[x])
				}
			}
		}

		return total

	default: // MinFill
		var fill int
		for i, u := range nb {
			for _, x := range nb[i+1:] {
				if !g.adjacent(u, x) {
					fill++
				}
			}
		}

		return float64(fill)
	}
}
