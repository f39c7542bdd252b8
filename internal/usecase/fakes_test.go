package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"skillcompass/internal/repository"

	"github.com/google/uuid"
)

var errFakeDB = errors.New("fake db down")

type fakeSkillRepo struct {
	byKey map[string]repository.Skill
	fail  bool
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{byKey: make(map[string]repository.Skill)}
}

func (f *fakeSkillRepo) GetAllSkills(ctx context.Context) ([]repository.Skill, error) {
	if f.fail {
		return nil, errFakeDB
	}
	out := make([]repository.Skill, 0, len(f.byKey))
	for _, s := range f.byKey {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSkillRepo) GetOrCreate(ctx context.Context, displayName, normalizedName string) (repository.Skill, error) {
	if f.fail {
		return repository.Skill{}, errFakeDB
	}
	if s, ok := f.byKey[normalizedName]; ok {
		return s, nil
	}
	s := repository.Skill{ID: uuid.New(), Name: displayName, NormalizedName: normalizedName}
	f.byKey[normalizedName] = s
	return s, nil
}

type fakeUserSkillRepo struct {
	rows map[uuid.UUID][]repository.UserSkill
	fail bool
}

func newFakeUserSkillRepo() *fakeUserSkillRepo {
	return &fakeUserSkillRepo{rows: make(map[uuid.UUID][]repository.UserSkill)}
}

func (f *fakeUserSkillRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]repository.UserSkill, error) {
	if f.fail {
		return nil, errFakeDB
	}
	return append([]repository.UserSkill(nil), f.rows[userID]...), nil
}

func (f *fakeUserSkillRepo) Attach(ctx context.Context, userID, skillID uuid.UUID, source string) (repository.UserSkill, error) {
	if f.fail {
		return repository.UserSkill{}, errFakeDB
	}
	for _, us := range f.rows[userID] {
		if us.SkillID == skillID {
			return us, nil
		}
	}
	us := repository.UserSkill{
		ID:        uuid.New(),
		UserID:    userID,
		SkillID:   skillID,
		SkillName: "skill-" + skillID.String()[:8],
		Source:    source,
	}
	f.rows[userID] = append(f.rows[userID], us)
	return us, nil
}

func (f *fakeUserSkillRepo) Detach(ctx context.Context, userID, skillID uuid.UUID) error {
	if f.fail {
		return errFakeDB
	}
	rows := f.rows[userID]
	for i, us := range rows {
		if us.SkillID == skillID {
			f.rows[userID] = append(rows[:i], rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrUserSkillNotFound
}

func (f *fakeUserSkillRepo) put(userID uuid.UUID, skillID uuid.UUID, name, source string) {
	f.rows[userID] = append(f.rows[userID], repository.UserSkill{
		ID:        uuid.New(),
		UserID:    userID,
		SkillID:   skillID,
		SkillName: name,
		Source:    source,
	})
}

type fakeRoleRepo struct {
	roles      []repository.Role
	roleSkills map[uuid.UUID][]repository.RoleSkillRow
	fail       bool
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roleSkills: make(map[uuid.UUID][]repository.RoleSkillRow)}
}

func (f *fakeRoleRepo) ListRoles(ctx context.Context) ([]repository.Role, error) {
	if f.fail {
		return nil, errFakeDB
	}
	return append([]repository.Role(nil), f.roles...), nil
}

func (f *fakeRoleRepo) ListSample(ctx context.Context, limit int) ([]repository.Role, error) {
	if f.fail {
		return nil, errFakeDB
	}
	if limit > 0 && limit < len(f.roles) {
		return append([]repository.Role(nil), f.roles[:limit]...), nil
	}
	return append([]repository.Role(nil), f.roles...), nil
}

func (f *fakeRoleRepo) FindByID(ctx context.Context, id uuid.UUID) (repository.Role, error) {
	if f.fail {
		return repository.Role{}, errFakeDB
	}
	for _, r := range f.roles {
		if r.ID == id {
			return r, nil
		}
	}
	return repository.Role{}, repository.ErrRoleNotFound
}

func (f *fakeRoleRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]repository.Role, error) {
	if f.fail {
		return nil, errFakeDB
	}
	out := make(map[uuid.UUID]repository.Role, len(ids))
	for _, id := range ids {
		for _, r := range f.roles {
			if r.ID == id {
				out[id] = r
			}
		}
	}
	return out, nil
}

func (f *fakeRoleRepo) SkillsByRoleID(ctx context.Context, id uuid.UUID) ([]repository.RoleSkillRow, error) {
	if f.fail {
		return nil, errFakeDB
	}
	return append([]repository.RoleSkillRow(nil), f.roleSkills[id]...), nil
}

func (f *fakeRoleRepo) SkillsByRoleIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]repository.RoleSkillRow, error) {
	if f.fail {
		return nil, errFakeDB
	}
	out := make(map[uuid.UUID][]repository.RoleSkillRow, len(ids))
	for _, id := range ids {
		if rows, ok := f.roleSkills[id]; ok {
			out[id] = append([]repository.RoleSkillRow(nil), rows...)
		}
	}
	return out, nil
}

type fakeCourseRepo struct {
	courses []repository.Course
	fail    bool
}

func (f *fakeCourseRepo) FindBySkillNames(ctx context.Context, skillNames []string) ([]repository.Course, error) {
	if f.fail {
		return nil, errFakeDB
	}
	wanted := make(map[string]struct{}, len(skillNames))
	for _, n := range skillNames {
		wanted[n] = struct{}{}
	}
	out := make([]repository.Course, 0)
	for _, c := range f.courses {
		for _, taught := range c.SkillsTaught {
			if _, ok := wanted[taught]; ok {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

type fakeSearchCache struct {
	entries map[string][]byte
	sets    int
	gets    int
}

func newFakeSearchCache() *fakeSearchCache {
	return &fakeSearchCache{entries: make(map[string][]byte)}
}

func (f *fakeSearchCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	f.gets++
	b, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeSearchCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = b
	f.sets++
	return nil
}

func (f *fakeSearchCache) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func (f *fakeSearchCache) SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	if _, ok := f.entries[key]; ok {
		return false, nil
	}
	f.entries[key] = []byte(value)
	return true, nil
}
