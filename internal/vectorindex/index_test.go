package vectorindex

import (
	"log"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func newTestLogger() *log.Logger {
	return log.New(os.Stderr, "", 0)
}

func testVectors() ([][]float32, []string) {
	vectors := [][]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0.7, 0.7, 0, 0},
	}
	ids := []string{"role-a", "role-b", "role-c"}
	return vectors, ids
}

func TestBuildAndSearch(t *testing.T) {
	ix := New(t.TempDir(), 4, newTestLogger())

	vectors, ids := testVectors()
	if err := ix.Build(vectors, ids); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ix.Len() != 3 {
		t.Fatalf("Len = %d", ix.Len())
	}

	hits := ix.Search([]float32{1, 0, 0, 0}, 3)
	if len(hits) != 3 {
		t.Fatalf("hits = %v", hits)
	}
	if hits[0].RoleID != "role-a" {
		t.Fatalf("top hit = %v", hits[0])
	}
	if math.Abs(hits[0].Score-1.0) > 1e-6 {
		t.Fatalf("self similarity = %v, want 1", hits[0].Score)
	}
	if hits[1].RoleID != "role-c" {
		t.Fatalf("second hit = %v", hits[1])
	}
}

func TestSearchTruncatesToK(t *testing.T) {
	ix := New(t.TempDir(), 4, newTestLogger())
	vectors, ids := testVectors()
	if err := ix.Build(vectors, ids); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if hits := ix.Search([]float32{1, 1, 1, 1}, 2); len(hits) != 2 {
		t.Fatalf("hits = %v", hits)
	}
	if hits := ix.Search([]float32{1, 1, 1, 1}, 0); len(hits) != 0 {
		t.Fatalf("k=0 should return empty, got %v", hits)
	}
}

func TestSearchEmptyIndex(t *testing.T) {
	ix := New(t.TempDir(), 4, newTestLogger())

	hits := ix.Search([]float32{1, 0, 0, 0}, 5)
	if hits == nil || len(hits) != 0 {
		t.Fatalf("Search on empty index = %v, want empty non-nil", hits)
	}
}

func TestSearchDimensionMismatch(t *testing.T) {
	ix := New(t.TempDir(), 4, newTestLogger())
	vectors, ids := testVectors()
	if err := ix.Build(vectors, ids); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if hits := ix.Search([]float32{1, 0}, 5); len(hits) != 0 {
		t.Fatalf("dim mismatch should yield empty, got %v", hits)
	}
}

func TestBuildValidation(t *testing.T) {
	ix := New(t.TempDir(), 4, newTestLogger())

	if err := ix.Build(nil, nil); err == nil {
		t.Fatalf("empty build must fail")
	}
	if err := ix.Build([][]float32{{1, 0, 0, 0}}, []string{"a", "b"}); err == nil {
		t.Fatalf("count mismatch must fail")
	}
	if err := ix.Build([][]float32{{1, 0}}, []string{"a"}); err == nil {
		t.Fatalf("dimension mismatch must fail")
	}
}

func TestPersistAndReload(t *testing.T) {
	dir := t.TempDir()

	ix := New(dir, 4, newTestLogger())
	vectors, ids := testVectors()
	if err := ix.Build(vectors, ids); err != nil {
		t.Fatalf("Build: %v", err)
	}

	reloaded := New(dir, 4, newTestLogger())
	if !reloaded.Load() {
		t.Fatalf("Load failed on persisted index")
	}
	if reloaded.Len() != 3 {
		t.Fatalf("Len after reload = %d", reloaded.Len())
	}

	hits := reloaded.Search([]float32{0, 1, 0, 0}, 1)
	if len(hits) != 1 || hits[0].RoleID != "role-b" {
		t.Fatalf("hits after reload = %v", hits)
	}
}

func TestSearchPicksUpLateSnapshot(t *testing.T) {
	dir := t.TempDir()
	ix := New(dir, 4, newTestLogger())

	if hits := ix.Search([]float32{1, 0, 0, 0}, 3); len(hits) != 0 {
		t.Fatalf("search before any build = %v, want empty", hits)
	}

	// An out-of-process build writes the snapshot after the first search.
	other := New(dir, 4, newTestLogger())
	vectors, ids := testVectors()
	if err := other.Build(vectors, ids); err != nil {
		t.Fatalf("Build: %v", err)
	}

	hits := ix.Search([]float32{1, 0, 0, 0}, 3)
	if len(hits) != 3 || hits[0].RoleID != "role-a" {
		t.Fatalf("post-build search = %v, want role-a first", hits)
	}
	if ix.Len() != 3 {
		t.Fatalf("Len after late load = %d", ix.Len())
	}
}

func TestLoadMissingFiles(t *testing.T) {
	ix := New(t.TempDir(), 4, newTestLogger())
	if ix.Load() {
		t.Fatalf("Load should fail with no files")
	}
}

func TestLoadRejectsDimensionDrift(t *testing.T) {
	dir := t.TempDir()

	built := New(dir, 4, newTestLogger())
	vectors, ids := testVectors()
	if err := built.Build(vectors, ids); err != nil {
		t.Fatalf("Build: %v", err)
	}

	drifted := New(dir, 8, newTestLogger())
	if drifted.Load() {
		t.Fatalf("Load must reject stored dimension 4 for configured 8")
	}
}

func TestLoadRejectsCorruptBlob(t *testing.T) {
	dir := t.TempDir()

	built := New(dir, 4, newTestLogger())
	vectors, ids := testVectors()
	if err := built.Build(vectors, ids); err != nil {
		t.Fatalf("Build: %v", err)
	}

	blob, err := os.ReadFile(filepath.Join(dir, indexFileName))
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, indexFileName), append(blob, 0x01), 0o644); err != nil {
		t.Fatalf("write blob: %v", err)
	}

	ix := New(dir, 4, newTestLogger())
	if ix.Load() {
		t.Fatalf("Load must reject blob with trailing data")
	}
}

func TestLoadRejectsTornMapping(t *testing.T) {
	dir := t.TempDir()

	built := New(dir, 4, newTestLogger())
	vectors, ids := testVectors()
	if err := built.Build(vectors, ids); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, mappingFileName), []byte("only-one\n"), 0o644); err != nil {
		t.Fatalf("write mapping: %v", err)
	}

	ix := New(dir, 4, newTestLogger())
	if ix.Load() {
		t.Fatalf("Load must reject mapping shorter than vector count")
	}
}

func TestBuildSwapsSnapshot(t *testing.T) {
	ix := New(t.TempDir(), 2, newTestLogger())

	if err := ix.Build([][]float32{{1, 0}}, []string{"old"}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := ix.Build([][]float32{{0, 1}, {1, 0}}, []string{"new-a", "new-b"}); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	if ix.Len() != 2 {
		t.Fatalf("Len = %d", ix.Len())
	}
	hits := ix.Search([]float32{0, 1}, 1)
	if len(hits) != 1 || hits[0].RoleID != "new-a" {
		t.Fatalf("hits = %v", hits)
	}
}
