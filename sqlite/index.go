package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docdex"
	"github.com/google/uuid"
)

// IndexFileName is the database file created inside the output directory.
const IndexFileName = "index.db"

// Compile-time interface verification.
var _ docdex.IndexStore = (*Index)(nil)

// Index implements docdex.IndexStore. Chunks accumulate in memory and are
// persisted in a single transaction by Save.
type Index struct {
	chunks []docdex.Chunk
	saved  bool
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{}
}

// Add appends chunks to the index, assigning IDs to chunks that lack one.
func (ix *Index) Add(chunks ...docdex.Chunk) {
	for _, chunk := range chunks {
		if chunk.ID == "" {
			chunk.ID = uuid.New().String()
		}
		ix.chunks = append(ix.chunks, chunk)
	}
}

// Len returns the number of chunks in the index.
func (ix *Index) Len() int {
	return len(ix.chunks)
}

// Save persists the index to dir, creating the directory if needed. The
// database is written in a single transaction so a failed save never leaves
// a partial index behind.
func (ix *Index) Save(ctx context.Context, dir string) error {
	if ix.saved {
		return docdex.Errorf(docdex.EINVALID, "index already saved")
	}
	if len(ix.chunks) == 0 {
		return docdex.Errorf(docdex.EINVALID, "no chunks to save")
	}
	for i, chunk := range ix.chunks {
		if len(chunk.Embedding) == 0 {
			return docdex.Errorf(docdex.EINVALID, "chunk %d has no embedding", i)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db := NewDB(filepath.Join(dir, IndexFileName))
	if err := db.Open(); err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, chunk := range ix.chunks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO chunks (id, source_url, content, content_hash, embedding, position)
			VALUES (?, ?, ?, ?, ?, ?)
		`, chunk.ID, chunk.Metadata.Source, chunk.Text, hashContent(chunk.Text),
			encodeVector(chunk.Embedding), i)
		if err != nil {
			return err
		}
	}

	meta := map[string]string{
		"created_at": time.Now().UTC().Format(time.RFC3339),
		"dimension":  fmt.Sprintf("%d", len(ix.chunks[0].Embedding)),
		"chunks":     fmt.Sprintf("%d", len(ix.chunks)),
	}
	for key, value := range meta {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO index_meta (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	ix.saved = true
	return nil
}

// LoadIndex reads a previously saved index from dir.
func LoadIndex(ctx context.Context, dir string) (*Index, error) {
	path := filepath.Join(dir, IndexFileName)
	if _, err := os.Stat(path); err != nil {
		return nil, docdex.Errorf(docdex.ENOTFOUND, "no index found in %s", dir)
	}

	db := NewDB(path)
	if err := db.Open(); err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT id, source_url, content, embedding
		FROM chunks
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ix := NewIndex()
	for rows.Next() {
		var chunk docdex.Chunk
		var blob []byte
		if err := rows.Scan(&chunk.ID, &chunk.Metadata.Source, &chunk.Text, &blob); err != nil {
			return nil, err
		}
		chunk.Embedding, err = decodeVector(blob)
		if err != nil {
			return nil, err
		}
		ix.chunks = append(ix.chunks, chunk)
	}

	return ix, rows.Err()
}

// Chunks returns the chunks in insertion order.
func (ix *Index) Chunks() []docdex.Chunk {
	return ix.chunks
}

// hashContent computes the xxHash of content and returns it as a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// encodeVector packs a vector as little-endian float32 bytes.
func encodeVector(vec []float32) []byte {
	b := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(v))
	}
	return b
}

// decodeVector unpacks a vector encoded by encodeVector.
func decodeVector(b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, docdex.Errorf(docdex.EINTERNAL, "embedding blob length %d is not a multiple of 4", len(b))
	}
	vec := make([]float32, len(b)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return vec, nil
}
