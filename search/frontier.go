package search

import "container/heap"

// entry is one frontier item. parent is empty for the start word.
type entry struct {
	word   string
	parent string
	g      int    // edits from start
	f      int    // g + h; equals g when h ≡ 0
	seq    uint64 // insertion order, the final tie-breaker
}

// frontier is the strategy-specific ordering of discovered words.
type frontier interface {
	len() int
	push(e entry)
	pop() entry
	// marksOnPush reports whether words are closed when enqueued (true)
	// or when popped (false).
	marksOnPush() bool
}

// fifo is the breadth-first queue. Popped slots are reclaimed once the
// dead prefix outgrows the live part.
type fifo struct {
	items []entry
	head  int
}

func (q *fifo) len() int          { return len(q.items) - q.head }
func (q *fifo) push(e entry)      { q.items = append(q.items, e) }
func (q *fifo) marksOnPush() bool { return true }

func (q *fifo) pop() entry {
	e := q.items[q.head]
	q.items[q.head] = entry{}
	q.head++
	if q.head > 64 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return e
}

// priorityQueue orders entries by f ascending, then g descending, then
// insertion order. Stale duplicates are skipped by the runner
// (lazy decrease-key).
type priorityQueue struct {
	h entryHeap
}

func (pq *priorityQueue) len() int          { return pq.h.Len() }
func (pq *priorityQueue) push(e entry)      { heap.Push(&pq.h, e) }
func (pq *priorityQueue) pop() entry        { return heap.Pop(&pq.h).(entry) }
func (pq *priorityQueue) marksOnPush() bool { return false }

// entryHeap implements heap.Interface.
type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.f != b.f {
		return a.f < b.f
	}
	// deeper first: closer to the target for equal f
	if a.g != b.g {
		return a.g > b.g
	}
	return a.seq < b.seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
