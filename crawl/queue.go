// Package crawl — BFS queue with deduplication.
// Maintains a visited set to avoid documenting the same module twice.
package crawl

// Queue is a BFS queue with module path deduplication.
type Queue struct {
	items   []string
	visited map[string]bool
	idx     int // current read position
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		visited: make(map[string]bool),
	}
}

// Add enqueues a module path if it hasn't been seen before. It reports
// whether the path was added.
func (q *Queue) Add(modulePath string) bool {
	if q.visited[modulePath] {
		return false
	}
	q.visited[modulePath] = true
	q.items = append(q.items, modulePath)
	return true
}

// HasNext returns true if there are unprocessed modules.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed module and advances the pointer.
func (q *Queue) Next() string {
	modulePath := q.items[q.idx]
	q.idx++
	return modulePath
}

// Processed returns the number of modules handed out by Next.
func (q *Queue) Processed() int {
	return q.idx
}

// Visited returns the total number of unique modules seen.
func (q *Queue) Visited() int {
	return len(q.visited)
}
