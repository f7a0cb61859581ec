package meshsimp

// candidate is an undirected edge awaiting collapse, canonicalized so that
// u < v. Stale entries are tolerated in the heap and discarded at pop time,
// so no removal or decrease-key operation is needed.
type candidate struct {
	u, v int
	cost float64
}

type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }

// Ties on cost order by the canonical pair so that identical input and
// options reproduce identical output.
func (h candidateHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	if h[i].u != h[j].u {
		return h[i].u < h[j].u
	}
	return h[i].v < h[j].v
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) {
	*h = append(*h, x.(candidate))
}

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
