package solve

import (
	"container/heap"

	"github.com/mfranke/bridgecross/pkg/bridge"
)

// PriorityQueue is the Dijkstra-style solver. It expands configurations in
// non-decreasing cumulative time using a min-heap, so the first goal popped
// within the limit is a provably optimal plan and the search stops there.
//
// Stale heap entries (configurations re-reached more cheaply after they were
// queued) are skipped lazily on pop rather than removed eagerly, the usual
// lazy-decrease-key strategy for heap-based shortest path search.
type PriorityQueue struct{}

// NewPriorityQueue creates the Dijkstra-style solver.
func NewPriorityQueue() *PriorityQueue { return &PriorityQueue{} }

// Name returns "dijkstra".
func (p *PriorityQueue) Name() string { return "dijkstra" }

// Solve implements [Solver].
func (p *PriorityQueue) Solve(scn *bridge.Scenario, limit int) (*Result, error) {
	if err := validate(scn, limit); err != nil {
		return nil, err
	}

	start := scn.Start()
	arrivals := map[bridge.State]int{start: 0}
	pq := entryHeap{{path: []bridge.State{start}}}

	for pq.Len() > 0 {
		e := heap.Pop(&pq).(*entry)
		st := e.path[len(e.path)-1]

		if scn.IsGoal(st) {
			if e.time <= limit {
				// Heap pop order guarantees no cheaper completion remains.
				return &Result{Time: e.time, Path: e.path, Arrivals: arrivals}, nil
			}
			// Over the limit; a costlier-but-qualifying alternative may
			// still exist elsewhere in the queue.
			continue
		}

		if best, ok := arrivals[st]; ok && e.time > best {
			continue // stale entry, a cheaper route was queued since
		}

		for _, mv := range scn.Moves(st) {
			t := e.time + mv.Cost
			if t > limit {
				continue
			}
			if best, ok := arrivals[mv.Next]; ok && t >= best {
				continue
			}
			arrivals[mv.Next] = t
			heap.Push(&pq, &entry{time: t, path: extend(e.path, mv.Next)})
		}
	}

	return noSolution(arrivals, limit)
}

// entry is a queued partial plan ending in the last state of path.
type entry struct {
	time int // cumulative minutes along path
	path []bridge.State
}

// entryHeap implements heap.Interface ordered by cumulative time. Ties break
// arbitrarily; the optimal time is deterministic regardless.
type entryHeap []*entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return h[i].time < h[j].time }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(*entry))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}
