package mock

import (
	"context"

	"github.com/fwojciec/docdex"
)

var _ docdex.IndexStore = (*IndexStore)(nil)

// IndexStore is a mock implementation of docdex.IndexStore. Add and Len
// have working defaults backed by the Chunks field; Save records the
// directory it was called with.
type IndexStore struct {
	Chunks   []docdex.Chunk
	SavedDir string

	SaveFn func(ctx context.Context, dir string) error
}

func (s *IndexStore) Add(chunks ...docdex.Chunk) {
	s.Chunks = append(s.Chunks, chunks...)
}

func (s *IndexStore) Len() int {
	return len(s.Chunks)
}

func (s *IndexStore) Save(ctx context.Context, dir string) error {
	s.SavedDir = dir
	if s.SaveFn == nil {
		return nil
	}
	return s.SaveFn(ctx, dir)
}
