// Package routing computes and caches all-pairs least-Δv paths across
// the location graph using Dijkstra, invalidated by a content hash of
// the edge set.
package routing

import (
	"container/heap"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/locationgraph"
)

// MatrixEntry is one cached least-Δv path between two locations.
type MatrixEntry struct {
	FromID string
	ToID   string
	DvMS   float64
	TofS   float64
	Path   []string
}

// RouteResult is the wire-surface equivalent of the route(from,to)
// operation in §6: a matrix entry, or NotFound for unreachable pairs.
type RouteResult struct {
	DvMS  float64
	TofS  float64
	Path  []string
	Found bool
}

// MatrixRepository persists the derived transfer matrix and the last
// materialized edges hash.
type MatrixRepository interface {
	ReplaceMatrix(entries []MatrixEntry) error
	MatrixCount() (int, error)
	Get(fromID, toID string) (MatrixEntry, bool, error)
	StoredEdgesHash() (string, bool, error)
	SetStoredEdgesHash(hash string) error
}

// GraphSource supplies the current edge set and non-group node ids.
type GraphSource interface {
	AllEdges() ([]locationgraph.Edge, error)
	NonGroupLocationIDs() ([]string, error)
}

// hashableEdge mirrors the original system's edge row JSON shape for
// stable hashing: sorted keys, compact separators.
type hashableEdge struct {
	FromID string  `json:"from_id"`
	ToID   string  `json:"to_id"`
	DvMS   float64 `json:"dv_m_s"`
	TofS   float64 `json:"tof_s"`
}

// HashEdges returns the SHA-256 hash over the edge set, ordered by
// (from_id, to_id), matching the original system's content-hash
// invalidation scheme.
func HashEdges(edges []locationgraph.Edge) (string, error) {
	sorted := make([]locationgraph.Edge, len(edges))
	copy(sorted, edges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].FromID != sorted[j].FromID {
			return sorted[i].FromID < sorted[j].FromID
		}
		return sorted[i].ToID < sorted[j].ToID
	})

	rows := make([]hashableEdge, len(sorted))
	for i, e := range sorted {
		rows[i] = hashableEdge{FromID: e.FromID, ToID: e.ToID, DvMS: e.DvMS, TofS: e.TofS}
	}
	blob, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:]), nil
}

// RegenerateIfNeeded recomputes the all-pairs matrix when the stored
// edges hash differs from the current one or the matrix is empty.
func RegenerateIfNeeded(graph GraphSource, matrix MatrixRepository) error {
	edges, err := graph.AllEdges()
	if err != nil {
		return err
	}
	currentHash, err := HashEdges(edges)
	if err != nil {
		return err
	}

	stored, found, err := matrix.StoredEdgesHash()
	if err != nil {
		return err
	}
	count, err := matrix.MatrixCount()
	if err != nil {
		return err
	}

	if found && stored == currentHash && count > 0 {
		return nil
	}

	nodeIDs, err := graph.NonGroupLocationIDs()
	if err != nil {
		return err
	}
	entries := DijkstraAllPairs(nodeIDs, edges)
	if err := matrix.ReplaceMatrix(entries); err != nil {
		return err
	}
	return matrix.SetStoredEdgesHash(currentHash)
}

// Route looks up the cached least-Δv path between from and to,
// regenerating the matrix first if the edge set has changed.
func Route(graph GraphSource, matrix MatrixRepository, from, to string) (RouteResult, error) {
	if err := RegenerateIfNeeded(graph, matrix); err != nil {
		return RouteResult{}, err
	}
	entry, found, err := matrix.Get(from, to)
	if err != nil {
		return RouteResult{}, err
	}
	if !found {
		return RouteResult{Found: false}, nil
	}
	return RouteResult{DvMS: entry.DvMS, TofS: entry.TofS, Path: entry.Path, Found: true}, nil
}

// --- Dijkstra -------------------------------------------------------------

type pqItem struct {
	dist float64
	node string
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

const epsilon = 1e-9

// DijkstraAllPairs runs single-source Dijkstra from every non-group
// node, weighted by dv_m_s with tof_s accumulated alongside (never
// minimized), and reconstructs the path for every reachable pair.
// Self-entries are (0, 0, [x]); unreachable pairs are omitted.
func DijkstraAllPairs(nodeIDs []string, edges []locationgraph.Edge) []MatrixEntry {
	nodeSet := make(map[string]struct{}, len(nodeIDs))
	for _, id := range nodeIDs {
		nodeSet[id] = struct{}{}
	}

	adj := make(map[string][]locationgraph.Edge, len(nodeIDs))
	for _, id := range nodeIDs {
		adj[id] = nil
	}
	for _, e := range edges {
		if _, ok := nodeSet[e.FromID]; !ok {
			continue
		}
		if _, ok := nodeSet[e.ToID]; !ok {
			continue
		}
		adj[e.FromID] = append(adj[e.FromID], e)
	}

	var entries []MatrixEntry

	for _, src := range nodeIDs {
		dist := map[string]float64{src: 0}
		tof := map[string]float64{src: 0}
		prev := map[string]string{}
		visited := map[string]bool{}

		pq := &priorityQueue{{dist: 0, node: src}}
		heap.Init(pq)

		for pq.Len() > 0 {
			item := heap.Pop(pq).(pqItem)
			u := item.node
			if d, ok := dist[u]; !ok || item.dist != d {
				continue
			}
			if visited[u] {
				continue
			}
			visited[u] = true

			for _, e := range adj[u] {
				nd := item.dist + e.DvMS
				if cur, ok := dist[e.ToID]; !ok || nd < cur-epsilon {
					dist[e.ToID] = nd
					tof[e.ToID] = tof[u] + e.TofS
					prev[e.ToID] = u
					heap.Push(pq, pqItem{dist: nd, node: e.ToID})
				}
			}
		}

		for _, dst := range nodeIDs {
			if dst == src {
				entries = append(entries, MatrixEntry{FromID: src, ToID: dst, DvMS: 0, TofS: 0, Path: []string{src}})
				continue
			}
			d, ok := dist[dst]
			if !ok {
				continue
			}
			path := reconstructPath(prev, src, dst)
			entries = append(entries, MatrixEntry{FromID: src, ToID: dst, DvMS: d, TofS: tof[dst], Path: path})
		}
	}

	return entries
}

func reconstructPath(prev map[string]string, src, dst string) []string {
	var path []string
	cur := dst
	for {
		path = append(path, cur)
		if cur == src {
			break
		}
		p, ok := prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
