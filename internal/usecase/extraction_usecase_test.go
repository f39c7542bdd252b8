package usecase

import (
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"skillcompass/internal/extract"

	"github.com/google/uuid"
)

func newExtractionFixture() (*Extraction, *fakeSkillRepo, *fakeUserSkillRepo) {
	skillsRepo := newFakeSkillRepo()
	userSkillsRepo := newFakeUserSkillRepo()
	logger := log.New(os.Stderr, "", 0)
	uc := NewExtractionUsecase(extract.NewPipeline(nil), skillsRepo, userSkillsRepo, logger)
	return uc, skillsRepo, userSkillsRepo
}

func TestExtractSkillsAttachesDictionaryHits(t *testing.T) {
	uc, skillsRepo, userSkillsRepo := newExtractionFixture()
	userID := uuid.New()

	res, err := uc.ExtractSkills(t.Context(), userID, "I build services in Python and ship them with Docker.", false)
	if err != nil {
		t.Fatalf("ExtractSkills: %v", err)
	}
	if len(res.Skills) != 2 || res.AddedCount != 2 {
		t.Fatalf("result = %+v", res)
	}
	for _, s := range res.Skills {
		if s.Source != "document" {
			t.Fatalf("source = %q, want document", s.Source)
		}
	}
	if _, ok := skillsRepo.byKey["python"]; !ok {
		t.Fatalf("python not created: %+v", skillsRepo.byKey)
	}
	if len(userSkillsRepo.rows[userID]) != 2 {
		t.Fatalf("user skills = %+v", userSkillsRepo.rows[userID])
	}
}

func TestExtractSkillsIdempotentAddedCount(t *testing.T) {
	uc, _, _ := newExtractionFixture()
	userID := uuid.New()
	text := "Python and Docker experience."

	first, err := uc.ExtractSkills(t.Context(), userID, text, false)
	if err != nil {
		t.Fatalf("first ExtractSkills: %v", err)
	}
	if first.AddedCount != 2 {
		t.Fatalf("first added = %d", first.AddedCount)
	}

	second, err := uc.ExtractSkills(t.Context(), userID, text, false)
	if err != nil {
		t.Fatalf("second ExtractSkills: %v", err)
	}
	if second.AddedCount != 0 {
		t.Fatalf("second added = %d, want 0", second.AddedCount)
	}
	if len(second.Skills) != 2 {
		t.Fatalf("second skills = %+v", second.Skills)
	}
}

func TestExtractSkillsBlankText(t *testing.T) {
	uc, _, _ := newExtractionFixture()

	res, err := uc.ExtractSkills(t.Context(), uuid.New(), "   \n\t", true)
	if err != nil {
		t.Fatalf("ExtractSkills: %v", err)
	}
	if res.Skills == nil || len(res.Skills) != 0 || res.AddedCount != 0 {
		t.Fatalf("result = %+v", res)
	}
}

func TestExtractSkillsRejectsOversizedText(t *testing.T) {
	uc, _, _ := newExtractionFixture()

	text := strings.Repeat("a", maxExtractionTextLen+1)
	if _, err := uc.ExtractSkills(t.Context(), uuid.New(), text, false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestExtractSkillsRepoFailure(t *testing.T) {
	uc, skillsRepo, _ := newExtractionFixture()
	skillsRepo.fail = true

	if _, err := uc.ExtractSkills(t.Context(), uuid.New(), "Python everywhere", false); !errors.Is(err, ErrInternal) {
		t.Fatalf("err = %v, want ErrInternal", err)
	}
}
