package docdex

// Chunk represents a bounded-length slice of a page's text, tagged with its
// origin, optimized for embedding and retrieval. Chunks never cross page
// boundaries.
type Chunk struct {
	ID        string        `json:"id,omitempty"`
	Text      string        `json:"text"`
	Embedding []float32     `json:"embedding,omitempty"`
	Metadata  ChunkMetadata `json:"metadata"`
}

// ChunkMetadata carries provenance for a chunk.
type ChunkMetadata struct {
	// Source is the URL of the page the chunk was cut from, unmodified.
	Source string `json:"source"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.Text == "" {
		return Errorf(EINVALID, "chunk text required")
	}
	if c.Metadata.Source == "" {
		return Errorf(EINVALID, "chunk source URL required")
	}
	return nil
}

// SplitText splits text into consecutive windows of size characters,
// advancing by size-overlap each step. The remainder shorter than one
// window becomes the final (possibly shorter) chunk. Size and overlap
// count Unicode code points, not bytes, so a window boundary never falls
// inside a multi-byte character and every chunk is valid UTF-8.
//
// Invariant: trimming the leading overlap characters from every chunk after
// the first and concatenating the results reproduces text exactly.
//
// Panics if size <= 0 or overlap is negative or not smaller than size;
// these are programmer errors, validated at configuration time.
func SplitText(text string, size, overlap int) []string {
	if size <= 0 {
		panic("docdex: chunk size must be positive")
	}
	if overlap < 0 || overlap >= size {
		panic("docdex: chunk overlap must be in [0, size)")
	}
	if text == "" {
		return nil
	}

	runes := []rune(text)
	step := size - overlap
	var chunks []string
	start := 0
	for start+size < len(runes) {
		chunks = append(chunks, string(runes[start:start+size]))
		start += step
	}
	return append(chunks, string(runes[start:]))
}

// SplitPages chunks every page independently and tags each chunk with its
// page's URL. Page order and within-page order are preserved.
func SplitPages(pages []*Page, size, overlap int) []Chunk {
	var chunks []Chunk
	for _, page := range pages {
		for _, text := range SplitText(page.Text, size, overlap) {
			chunks = append(chunks, Chunk{
				Text:     text,
				Metadata: ChunkMetadata{Source: page.URL},
			})
		}
	}
	return chunks
}
