package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"skillcompass/internal/indexer"
	"skillcompass/internal/vectorindex"
)

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) InvalidateRecommendations(ctx context.Context) error {
	f.calls++
	return nil
}

func TestRebuildIndex(t *testing.T) {
	roles, _, _, _ := seedRecommendationWorld()
	encoder := newTestEncoder(t)
	ix := vectorindex.New(t.TempDir(), testDim, log.New(os.Stderr, "", 0))
	cache := newFakeSearchCache()
	invalidator := &fakeInvalidator{}

	builder := indexer.NewBuilder(roles, encoder, ix, 2, nil)
	uc := NewIndexUsecase(builder, cache, invalidator, nil)

	res, err := uc.RebuildIndex(t.Context())
	if err != nil {
		t.Fatalf("RebuildIndex: %v", err)
	}
	if res.RoleCount != len(roles.roles) {
		t.Fatalf("role count = %d, want %d", res.RoleCount, len(roles.roles))
	}
	if ix.Len() != len(roles.roles) {
		t.Fatalf("index len = %d", ix.Len())
	}
	if invalidator.calls != 1 {
		t.Fatalf("invalidator calls = %d, want 1", invalidator.calls)
	}
	if _, held := cache.entries[rebuildLockKey]; held {
		t.Fatalf("rebuild lock not released")
	}
}

func TestRebuildIndexLockContention(t *testing.T) {
	roles, _, _, _ := seedRecommendationWorld()
	encoder := newTestEncoder(t)
	ix := vectorindex.New(t.TempDir(), testDim, log.New(os.Stderr, "", 0))
	cache := newFakeSearchCache()
	cache.entries[rebuildLockKey] = []byte("1")

	uc := NewIndexUsecase(indexer.NewBuilder(roles, encoder, ix, 2, nil), cache, &fakeInvalidator{}, nil)

	if _, err := uc.RebuildIndex(t.Context()); !errors.Is(err, ErrRebuildInProgress) {
		t.Fatalf("err = %v, want ErrRebuildInProgress", err)
	}
	if ix.Len() != 0 {
		t.Fatalf("index built despite held lock")
	}
}

func TestRebuildIndexEmptyCatalog(t *testing.T) {
	roles := newFakeRoleRepo()
	encoder := newTestEncoder(t)
	ix := vectorindex.New(t.TempDir(), testDim, log.New(os.Stderr, "", 0))

	uc := NewIndexUsecase(indexer.NewBuilder(roles, encoder, ix, 2, nil), newFakeSearchCache(), &fakeInvalidator{}, nil)

	if _, err := uc.RebuildIndex(t.Context()); !errors.Is(err, ErrInternal) {
		t.Fatalf("err = %v, want ErrInternal", err)
	}
}
