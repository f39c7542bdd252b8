package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"skillcompass/internal/embedding"
	"skillcompass/internal/ranking"
	"skillcompass/internal/repository"
	"skillcompass/internal/vectorindex"

	"github.com/google/uuid"
)

var ErrNoUserSkills = errors.New("user has no skills")

const (
	// retrievalK is how many nearest roles the index returns before
	// re-ranking narrows them down to topMatches.
	retrievalK = 30
	topMatches = 5

	fallbackSampleSize = 5
)

type RoleMatch struct {
	RoleID          uuid.UUID `json:"role_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	MatchScore      float64   `json:"match_score"`
	SkillCoverage   float64   `json:"skill_coverage"`
	ImportanceScore float64   `json:"importance_score"`
	LexicalScore    float64   `json:"lexical_score"`
	RetrievalScore  float64   `json:"retrieval_score"`
}

type RecommendationResult struct {
	Matches []RoleMatch `json:"matches"`
	// Ranked is false when the vector index was unavailable and the
	// matches are an unranked role sample.
	Ranked bool `json:"ranked"`
}

type RecommendationUsecase interface {
	RecommendRoles(ctx context.Context, userID uuid.UUID) (RecommendationResult, error)
}

type Recommendation struct {
	userSkillsRepo repository.UserSkillRepository
	rolesRepo      repository.RoleRepository
	encoder        *embedding.Service
	index          *vectorindex.Index
	cache          SearchCache
	cacheTTL       time.Duration
	logger         *log.Logger
}

func NewRecommendationUsecase(
	userSkillsRepo repository.UserSkillRepository,
	rolesRepo repository.RoleRepository,
	encoder *embedding.Service,
	index *vectorindex.Index,
	cache SearchCache,
	cacheTTL time.Duration,
	logger *log.Logger,
) *Recommendation {
	return &Recommendation{
		userSkillsRepo: userSkillsRepo,
		rolesRepo:      rolesRepo,
		encoder:        encoder,
		index:          index,
		cache:          cache,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

func (u *Recommendation) RecommendRoles(ctx context.Context, userID uuid.UUID) (RecommendationResult, error) {
	userSkills, err := u.userSkillsRepo.FindByUserID(ctx, userID)
	if err != nil {
		return RecommendationResult{}, ErrInternal
	}
	if len(userSkills) == 0 {
		return RecommendationResult{}, ErrNoUserSkills
	}

	skillIDs := make([]uuid.UUID, 0, len(userSkills))
	skillNames := make([]string, 0, len(userSkills))
	idSet := make(map[uuid.UUID]struct{}, len(userSkills))
	for _, us := range userSkills {
		skillIDs = append(skillIDs, us.SkillID)
		skillNames = append(skillNames, us.SkillName)
		idSet[us.SkillID] = struct{}{}
	}

	cacheKey := RecommendationCacheKey(userID, skillIDs)
	if u.cache != nil {
		var cached RecommendationResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	query, err := u.encoder.EncodeSingle(ctx, strings.Join(skillNames, " "))
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("encode failed | user_id=%s error=%v", userID, err)
		}
		return u.fallback(ctx)
	}

	hits := u.index.Search(query, retrievalK)
	if len(hits) == 0 {
		return u.fallback(ctx)
	}

	candidateIDs := make([]uuid.UUID, 0, len(hits))
	retrieval := make(map[uuid.UUID]float64, len(hits))
	for _, h := range hits {
		id, err := uuid.Parse(h.RoleID)
		if err != nil {
			continue
		}
		candidateIDs = append(candidateIDs, id)
		retrieval[id] = h.Score
	}
	if len(candidateIDs) == 0 {
		return u.fallback(ctx)
	}

	roles, err := u.rolesRepo.FindByIDs(ctx, candidateIDs)
	if err != nil {
		return RecommendationResult{}, ErrInternal
	}
	roleSkillRows, err := u.rolesRepo.SkillsByRoleIDs(ctx, candidateIDs)
	if err != nil {
		return RecommendationResult{}, ErrInternal
	}

	candidates := make([]ranking.Candidate, 0, len(candidateIDs))
	roleSkills := make(map[uuid.UUID][]ranking.RoleSkill, len(candidateIDs))
	for _, id := range candidateIDs {
		role, ok := roles[id]
		if !ok {
			// Stale index entry for a deleted role.
			continue
		}
		candidates = append(candidates, ranking.Candidate{
			RoleID:         id,
			Title:          role.Title,
			Description:    role.Description,
			RetrievalScore: retrieval[id],
		})
		rs := make([]ranking.RoleSkill, 0, len(roleSkillRows[id]))
		for _, row := range roleSkillRows[id] {
			rs = append(rs, ranking.RoleSkill{
				SkillID:          row.SkillID,
				SkillName:        row.SkillName,
				ImportanceWeight: row.ImportanceWeight,
			})
		}
		roleSkills[id] = rs
	}
	if len(candidates) == 0 {
		return u.fallback(ctx)
	}

	ranked := ranking.ReRank(candidates, idSet, skillNames, roleSkills, topMatches)

	matches := make([]RoleMatch, 0, len(ranked))
	for _, r := range ranked {
		matches = append(matches, RoleMatch{
			RoleID:          r.RoleID,
			Title:           r.Title,
			Description:     r.Description,
			MatchScore:      r.MatchScore,
			SkillCoverage:   r.SkillCoverage,
			ImportanceScore: r.ImportanceScore,
			LexicalScore:    r.LexicalScore,
			RetrievalScore:  r.RetrievalScore,
		})
	}

	result := RecommendationResult{Matches: matches, Ranked: true}
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, result, u.cacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("recommendation cache set failed | user_id=%s error=%v", userID, err)
		}
	}
	return result, nil
}

func (u *Recommendation) fallback(ctx context.Context) (RecommendationResult, error) {
	roles, err := u.rolesRepo.ListSample(ctx, fallbackSampleSize)
	if err != nil {
		return RecommendationResult{}, ErrInternal
	}
	matches := make([]RoleMatch, 0, len(roles))
	for _, role := range roles {
		matches = append(matches, RoleMatch{
			RoleID:      role.ID,
			Title:       role.Title,
			Description: role.Description,
		})
	}
	if u.logger != nil {
		u.logger.Printf("recommendation fallback | reason=index_unavailable roles=%d", len(matches))
	}
	return RecommendationResult{Matches: matches, Ranked: false}, nil
}
