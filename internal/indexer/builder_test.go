package indexer

import (
	"context"
	"log"
	"os"
	"testing"

	"skillcompass/internal/embedding"
	"skillcompass/internal/repository"
	"skillcompass/internal/vectorindex"

	"github.com/google/uuid"
)

type stubRoleRepo struct {
	roles      []repository.Role
	roleSkills map[uuid.UUID][]repository.RoleSkillRow
}

func (s *stubRoleRepo) ListRoles(ctx context.Context) ([]repository.Role, error) {
	return s.roles, nil
}

func (s *stubRoleRepo) ListSample(ctx context.Context, limit int) ([]repository.Role, error) {
	return s.roles, nil
}

func (s *stubRoleRepo) FindByID(ctx context.Context, id uuid.UUID) (repository.Role, error) {
	return repository.Role{}, repository.ErrRoleNotFound
}

func (s *stubRoleRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]repository.Role, error) {
	return nil, nil
}

func (s *stubRoleRepo) SkillsByRoleID(ctx context.Context, id uuid.UUID) ([]repository.RoleSkillRow, error) {
	return s.roleSkills[id], nil
}

func (s *stubRoleRepo) SkillsByRoleIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]repository.RoleSkillRow, error) {
	return s.roleSkills, nil
}

func TestRoleTextIsTitlePlusSkillNames(t *testing.T) {
	role := repository.Role{
		ID:          uuid.New(),
		Title:       "Backend Developer",
		Description: "Builds APIs, owns the deployment story",
	}
	skills := []repository.RoleSkillRow{
		{SkillID: uuid.New(), SkillName: "Python", ImportanceWeight: 0.9},
		{SkillID: uuid.New(), SkillName: "Docker", ImportanceWeight: 0.7},
	}

	got := roleText(role, skills)
	if got != "Backend Developer Python Docker" {
		t.Fatalf("roleText = %q", got)
	}

	if got := roleText(role, nil); got != "Backend Developer" {
		t.Fatalf("roleText without skills = %q", got)
	}
}

func TestBuildIndexesEveryRole(t *testing.T) {
	const dim = 128

	backend := repository.Role{ID: uuid.New(), Title: "Backend Developer"}
	devops := repository.Role{ID: uuid.New(), Title: "DevOps Engineer"}
	repo := &stubRoleRepo{
		roles: []repository.Role{backend, devops},
		roleSkills: map[uuid.UUID][]repository.RoleSkillRow{
			backend.ID: {{SkillID: uuid.New(), SkillName: "Go", ImportanceWeight: 0.8}},
			devops.ID:  {{SkillID: uuid.New(), SkillName: "Kubernetes", ImportanceWeight: 0.9}},
		},
	}

	encoder := embedding.NewService(func() (embedding.Encoder, error) {
		return embedding.NewLocalEncoder(dim)
	})
	ix := vectorindex.New(t.TempDir(), dim, log.New(os.Stderr, "", 0))

	b := NewBuilder(repo, encoder, ix, 2, nil)
	n, err := b.Build(t.Context())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if n != 2 || ix.Len() != 2 {
		t.Fatalf("indexed = %d, index len = %d", n, ix.Len())
	}

	query, err := encoder.EncodeSingle(t.Context(), "Kubernetes")
	if err != nil {
		t.Fatalf("encode query: %v", err)
	}
	hits := ix.Search(query, 1)
	if len(hits) != 1 || hits[0].RoleID != devops.ID.String() {
		t.Fatalf("hits = %v, want DevOps Engineer", hits)
	}
}

func TestBuildEmptyCatalog(t *testing.T) {
	encoder := embedding.NewService(func() (embedding.Encoder, error) {
		return embedding.NewLocalEncoder(8)
	})
	ix := vectorindex.New(t.TempDir(), 8, log.New(os.Stderr, "", 0))

	b := NewBuilder(&stubRoleRepo{}, encoder, ix, 2, nil)
	if _, err := b.Build(t.Context()); err == nil {
		t.Fatalf("Build on empty catalog must fail")
	}
}
