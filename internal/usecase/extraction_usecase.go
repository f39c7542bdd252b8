package usecase

import (
	"context"
	"log"
	"strings"

	"skillcompass/internal/extract"
	"skillcompass/internal/repository"
	"skillcompass/internal/skills"
	"skillcompass/internal/ws"

	"github.com/google/uuid"
)

const maxExtractionTextLen = 100_000

type ExtractionResult struct {
	Skills     []UserSkillItem
	AddedCount int
}

type ExtractionUsecase interface {
	ExtractSkills(ctx context.Context, userID uuid.UUID, text string, useLLM bool) (ExtractionResult, error)
}

type Extraction struct {
	pipeline       *extract.Pipeline
	skillsRepo     repository.SkillRepository
	userSkillsRepo repository.UserSkillRepository
	logger         *log.Logger
}

func NewExtractionUsecase(
	pipeline *extract.Pipeline,
	skillsRepo repository.SkillRepository,
	userSkillsRepo repository.UserSkillRepository,
	logger *log.Logger,
) *Extraction {
	return &Extraction{
		pipeline:       pipeline,
		skillsRepo:     skillsRepo,
		userSkillsRepo: userSkillsRepo,
		logger:         logger,
	}
}

func (u *Extraction) ExtractSkills(ctx context.Context, userID uuid.UUID, text string, useLLM bool) (ExtractionResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ExtractionResult{Skills: []UserSkillItem{}}, nil
	}
	if len(text) > maxExtractionTextLen {
		return ExtractionResult{}, ErrInvalidInput
	}

	names := u.pipeline.Extract(ctx, text, useLLM)
	if len(names) == 0 {
		return ExtractionResult{Skills: []UserSkillItem{}}, nil
	}

	existing, err := u.userSkillsRepo.FindByUserID(ctx, userID)
	if err != nil {
		return ExtractionResult{}, ErrInternal
	}
	had := make(map[uuid.UUID]struct{}, len(existing))
	for _, it := range existing {
		had[it.SkillID] = struct{}{}
	}

	out := make([]UserSkillItem, 0, len(names))
	added := 0
	addedNames := make([]string, 0, len(names))
	for _, name := range names {
		skill, err := u.skillsRepo.GetOrCreate(ctx, skills.Normalize(name), skills.NormalizedKey(name))
		if err != nil {
			return ExtractionResult{}, ErrInternal
		}

		attached, err := u.userSkillsRepo.Attach(ctx, userID, skill.ID, repository.SourceDocument)
		if err != nil {
			return ExtractionResult{}, ErrInternal
		}

		if _, ok := had[skill.ID]; !ok {
			had[skill.ID] = struct{}{}
			added++
			addedNames = append(addedNames, attached.SkillName)
		}
		out = append(out, UserSkillItem{
			ID:        attached.ID,
			SkillID:   attached.SkillID,
			SkillName: attached.SkillName,
			Source:    attached.Source,
		})
	}

	if added > 0 {
		ws.NotifySkillsExtracted(userID.String(), addedNames, added)
	}

	if u.logger != nil {
		u.logger.Printf("skills extracted | user_id=%s extracted=%d added=%d llm=%t", userID, len(out), added, useLLM)
	}
	return ExtractionResult{Skills: out, AddedCount: added}, nil
}
