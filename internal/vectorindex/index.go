package vectorindex

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
)

const (
	indexFileName   = "role_index.bin"
	mappingFileName = "role_mapping.txt"
)

// Hit is one retrieval result: a role identity and its cosine similarity to
// the query.
type Hit struct {
	RoleID string
	Score  float64
}

type snapshot struct {
	dim     int
	vectors [][]float32 // L2-normalized at build time
	roleIDs []string
}

// Index holds one vector per role and retrieves nearest neighbors by inner
// product over L2-normalized vectors, which equals cosine similarity. The
// resident snapshot is swapped wholesale on rebuild; readers always see a
// complete old or complete new snapshot.
type Index struct {
	dir    string
	dim    int
	logger *log.Logger

	current atomic.Pointer[snapshot]
}

func New(dir string, dim int, logger *log.Logger) *Index {
	if logger == nil {
		logger = log.Default()
	}
	return &Index{dir: dir, dim: dim, logger: logger}
}

// Build replaces the whole index: vectors are normalized, persisted next to
// the ordered role-ID mapping (temp files renamed into place so the pair is
// never torn), then swapped in memory.
func (ix *Index) Build(vectors [][]float32, roleIDs []string) error {
	if len(vectors) == 0 || len(roleIDs) == 0 {
		return fmt.Errorf("empty build input")
	}
	if len(vectors) != len(roleIDs) {
		return fmt.Errorf("vector count %d does not match role count %d", len(vectors), len(roleIDs))
	}
	for i, v := range vectors {
		if len(v) != ix.dim {
			return fmt.Errorf("vector %d has dimension %d, index configured for %d", i, len(v), ix.dim)
		}
	}

	normalized := make([][]float32, len(vectors))
	for i, v := range vectors {
		normalized[i] = normalize(v)
	}

	snap := &snapshot{dim: ix.dim, vectors: normalized, roleIDs: append([]string(nil), roleIDs...)}

	if err := ix.persist(snap); err != nil {
		return err
	}

	ix.current.Store(snap)
	ix.logger.Printf("vector index | status=built roles=%d dim=%d", len(roleIDs), ix.dim)
	return nil
}

// Load reads the persisted snapshot pair. Missing or corrupt artifacts leave
// the index empty and return false; callers treat that as a normal state.
func (ix *Index) Load() bool {
	snap, err := ix.readSnapshot()
	if err != nil {
		if !os.IsNotExist(err) {
			ix.logger.Printf("vector index | status=load_failed err=%v", err)
		}
		return false
	}
	ix.current.Store(snap)
	ix.logger.Printf("vector index | status=loaded roles=%d dim=%d", len(snap.roleIDs), snap.dim)
	return true
}

// Search returns up to k hits sorted by descending similarity, ties kept in
// insertion order. A never-built, unloadable index yields an empty slice.
func (ix *Index) Search(query []float32, k int) []Hit {
	// While no snapshot is resident, retry the load on every search so a
	// snapshot written later by an out-of-process build becomes visible.
	// The atomic pointer makes concurrent loads harmless.
	if ix.current.Load() == nil {
		ix.Load()
	}

	snap := ix.current.Load()
	if snap == nil || len(snap.vectors) == 0 || k <= 0 {
		return []Hit{}
	}
	if len(query) != snap.dim {
		ix.logger.Printf("vector index | status=dim_mismatch query=%d index=%d", len(query), snap.dim)
		return []Hit{}
	}

	q := normalize(query)

	hits := make([]Hit, 0, len(snap.vectors))
	for i, v := range snap.vectors {
		hits = append(hits, Hit{RoleID: snap.roleIDs[i], Score: dot(q, v)})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })

	if k < len(hits) {
		hits = hits[:k]
	}
	return hits
}

// Len reports the number of indexed roles in the resident snapshot.
func (ix *Index) Len() int {
	snap := ix.current.Load()
	if snap == nil {
		return 0
	}
	return len(snap.roleIDs)
}

func (ix *Index) indexPath() string   { return filepath.Join(ix.dir, indexFileName) }
func (ix *Index) mappingPath() string { return filepath.Join(ix.dir, mappingFileName) }

func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	out := make([]float32, len(v))
	if sum == 0 {
		return out
	}
	norm := float32(math.Sqrt(sum))
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
