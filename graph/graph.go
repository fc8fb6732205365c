package graph

// Graph is an undirected graph over vertices 0..n-1.
type Graph struct {
	adj [][]int
}

func NewGraph(n int) *Graph {
	return &Graph{adj: make([][]int, n)}
}

func (g *Graph) AddEdge(u, v int) {
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
}

// Components returns the connected components in order of their lowest
// vertex; vertices within a component appear in DFS order.
func (g *Graph) Components() [][]int {
	visited := make([]bool, len(g.adj))
	var component []int

	var dfs func(int)
	dfs = func(v int) {
		visited[v] = true
		component = append(component, v)
		for _, w := range g.adj[v] {
			if !visited[w] {
				dfs(w)
			}
		}
	}

	components := make([][]int, 0)
	for v := range g.adj {
		if !visited[v] {
			component = nil
			dfs(v)
			components = append(components, component)
		}
	}
	return components
}

// Digraph is a directed graph over vertices 0..n-1.
type Digraph struct {
	adj [][]int
}

func NewDigraph(n int) *Digraph {
	return &Digraph{adj: make([][]int, n)}
}

func (g *Digraph) AddEdge(from, to int) {
	g.adj[from] = append(g.adj[from], to)
}

// Reachable marks every vertex reachable from start along directed
// edges, start included.
func (g *Digraph) Reachable(start int) []bool {
	reachable := make([]bool, len(g.adj))

	var dfs func(int)
	dfs = func(v int) {
		reachable[v] = true
		for _, w := range g.adj[v] {
			if !reachable[w] {
				dfs(w)
			}
		}
	}

	dfs(start)
	return reachable
}
