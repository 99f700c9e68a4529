package crawl

// Frontier holds the crawl state for a single root: a FIFO pending queue
// and the set of URLs already fetched. Insertion order determines visit
// order. Each root crawl owns its own Frontier; nothing is shared across
// roots, and the crawler is sequential, so no locking is needed.
//
// The queue is deliberately not deduplicated at enqueue time: the same URL
// may be queued multiple times but is processed at most once, because the
// crawler checks the visited set at dequeue time. Membership in the visited
// set is exact (a map, not a probabilistic filter) so a page is never
// wrongly skipped.
type Frontier struct {
	queue   []string
	visited map[string]struct{}
}

// NewFrontier creates a Frontier seeded with the root URL.
func NewFrontier(rootURL string) *Frontier {
	return &Frontier{
		queue:   []string{rootURL},
		visited: make(map[string]struct{}),
	}
}

// Push appends URLs to the pending queue without deduplication.
func (f *Frontier) Push(urls ...string) {
	f.queue = append(f.queue, urls...)
}

// Pop removes and returns the oldest pending URL.
// The bool result is false if the queue is empty.
func (f *Frontier) Pop() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// MarkVisited records a URL as fetched.
func (f *Frontier) MarkVisited(url string) {
	f.visited[url] = struct{}{}
}

// Visited reports whether a URL has been fetched.
func (f *Frontier) Visited(url string) bool {
	_, ok := f.visited[url]
	return ok
}

// VisitedCount returns the number of fetched URLs.
func (f *Frontier) VisitedCount() int {
	return len(f.visited)
}

// Len returns the number of pending URLs, duplicates included.
func (f *Frontier) Len() int {
	return len(f.queue)
}
