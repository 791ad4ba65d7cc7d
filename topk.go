package tokens

import "container/heap"

// topKItem pairs a candidate with its score for the min-heap below.
type topKItem[T any] struct {
	item T
	gain int64
}

// topKHeap is a min-heap over topKItem, ordered ascending by gain with a
// caller-supplied tiebreak for equal gains. Keeping a min-heap of size k
// lets TopK select the k highest-scoring candidates out of n in
// O(n log k) rather than sorting all n, the same trick train.go's
// qsymHeap used for symbol-candidate selection during FSST training.
type topKHeap[T any] struct {
	items    []topKItem[T]
	tiebreak func(a, b T) bool // true if a should be evicted before b on a gain tie
}

func (h topKHeap[T]) Len() int { return len(h.items) }
func (h topKHeap[T]) Less(i, j int) bool {
	if h.items[i].gain != h.items[j].gain {
		return h.items[i].gain < h.items[j].gain
	}
	if h.tiebreak == nil {
		return false
	}
	return h.tiebreak(h.items[i].item, h.items[j].item)
}
func (h topKHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *topKHeap[T]) Push(x any)   { h.items = append(h.items, x.(topKItem[T])) }
func (h *topKHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]
	return x
}

// TopK retains the k highest-gain candidates offered to it, breaking gain
// ties with tiebreak (which may be nil for an arbitrary but deterministic
// order).
type TopK[T any] struct {
	k int
	h *topKHeap[T]
}

// NewTopK returns a tracker that keeps the k best candidates by gain.
func NewTopK[T any](k int, tiebreak func(a, b T) bool) *TopK[T] {
	h := &topKHeap[T]{tiebreak: tiebreak}
	heap.Init(h)
	return &TopK[T]{k: k, h: h}
}

// Offer considers a candidate for inclusion in the top-k set.
func (tk *TopK[T]) Offer(item T, gain int64) {
	if tk.k <= 0 {
		return
	}
	if tk.h.Len() < tk.k {
		heap.Push(tk.h, topKItem[T]{item: item, gain: gain})
		return
	}
	root := tk.h.items[0]
	if gain > root.gain || (gain == root.gain && tk.h.tiebreak != nil && tk.h.tiebreak(root.item, item)) {
		heap.Pop(tk.h)
		heap.Push(tk.h, topKItem[T]{item: item, gain: gain})
	}
}

// Items drains the tracker and returns its retained candidates in
// descending gain order.
func (tk *TopK[T]) Items() []T {
	n := tk.h.Len()
	out := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = heap.Pop(tk.h).(topKItem[T]).item
	}
	return out
}
