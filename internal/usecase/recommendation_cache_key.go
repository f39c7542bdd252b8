package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/google/uuid"
)

type recommendationCacheKeyInput struct {
	UserID   string   `json:"user_id"`
	SkillIDs []string `json:"skill_ids"`
}

// RecommendationCacheKey fingerprints the user's current skill set, so a
// changed skill set always misses the cache without explicit invalidation.
func RecommendationCacheKey(userID uuid.UUID, skillIDs []uuid.UUID) string {
	ids := make([]string, 0, len(skillIDs))
	for _, id := range skillIDs {
		ids = append(ids, id.String())
	}
	sort.Strings(ids)

	in := recommendationCacheKeyInput{
		UserID:   userID.String(),
		SkillIDs: ids,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "recs:roles:" + hex.EncodeToString(sum[:])
}
