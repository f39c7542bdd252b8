package indexer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"skillcompass/internal/embedding"
	"skillcompass/internal/repository"
	"skillcompass/internal/vectorindex"
	"skillcompass/internal/ws"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

// Builder rebuilds the role vector index from the catalog. Roles are encoded
// concurrently but written in catalog order, so rebuilds are deterministic
// for a given catalog state.
type Builder struct {
	roles   repository.RoleRepository
	encoder *embedding.Service
	index   *vectorindex.Index
	workers int
	logger  *log.Logger
}

func NewBuilder(
	roles repository.RoleRepository,
	encoder *embedding.Service,
	index *vectorindex.Index,
	workers int,
	logger *log.Logger,
) *Builder {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Builder{
		roles:   roles,
		encoder: encoder,
		index:   index,
		workers: workers,
		logger:  logger,
	}
}

// Build encodes every role and atomically replaces the persisted index.
// It returns the number of indexed roles.
func (b *Builder) Build(ctx context.Context) (int, error) {
	roles, err := b.roles.ListRoles(ctx)
	if err != nil {
		return 0, fmt.Errorf("list roles: %w", err)
	}
	if len(roles) == 0 {
		return 0, fmt.Errorf("no roles to index")
	}

	ids := make([]uuid.UUID, 0, len(roles))
	for _, r := range roles {
		ids = append(ids, r.ID)
	}
	skillRows, err := b.roles.SkillsByRoleIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("load role skills: %w", err)
	}

	vectors := make([][]float32, len(roles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, role := range roles {
		g.Go(func() error {
			vec, err := b.encoder.EncodeSingle(gctx, roleText(role, skillRows[role.ID]))
			if err != nil {
				return fmt.Errorf("encode role %s: %w", role.ID, err)
			}
			vectors[i] = vec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	roleIDs := make([]string, 0, len(roles))
	for _, r := range roles {
		roleIDs = append(roleIDs, r.ID.String())
	}
	if err := b.index.Build(vectors, roleIDs); err != nil {
		return 0, fmt.Errorf("build index: %w", err)
	}

	if b.logger != nil {
		b.logger.Printf("index rebuilt | roles=%d workers=%d", len(roles), b.workers)
	}
	ws.NotifyIndexRebuilt(len(roles))
	return len(roles), nil
}

// roleText is the document the role is retrieved by: title plus skill names.
// Descriptions stay out so retrieval compares skill vocabulary against skill
// vocabulary.
func roleText(role repository.Role, skills []repository.RoleSkillRow) string {
	parts := make([]string, 0, 1+len(skills))
	parts = append(parts, role.Title)
	for _, s := range skills {
		parts = append(parts, s.SkillName)
	}
	return strings.Join(parts, " ")
}
