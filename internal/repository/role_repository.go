package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillcompass/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrRoleNotFound = errors.New("role not found")

type Role struct {
	ID          uuid.UUID
	Title       string
	Description string
}

type RoleSkillRow struct {
	SkillID          uuid.UUID
	SkillName        string
	ImportanceWeight float64
}

type RoleRepository interface {
	ListRoles(ctx context.Context) ([]Role, error)
	// ListSample returns up to limit roles in stable order, used as the
	// unranked fallback when the vector index is unavailable.
	ListSample(ctx context.Context, limit int) ([]Role, error)
	FindByID(ctx context.Context, id uuid.UUID) (Role, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Role, error)
	SkillsByRoleID(ctx context.Context, id uuid.UUID) ([]RoleSkillRow, error)
	SkillsByRoleIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]RoleSkillRow, error)
}

type PostgresRoleRepository struct {
	db database.DB
}

func NewPostgresRoleRepository(db database.DB) *PostgresRoleRepository {
	return &PostgresRoleRepository{db: db}
}

func (r *PostgresRoleRepository) ListRoles(ctx context.Context) ([]Role, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, description FROM roles ORDER BY title ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRoles(rows)
}

func (r *PostgresRoleRepository) ListSample(ctx context.Context, limit int) ([]Role, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db.Query(ctx, `SELECT id, title, description FROM roles ORDER BY title ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRoles(rows)
}

func (r *PostgresRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (Role, error) {
	row := r.db.QueryRow(ctx, `SELECT id, title, description FROM roles WHERE id = $1`, id)
	var role Role
	if err := row.Scan(&role.ID, &role.Title, &role.Description); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Role{}, ErrRoleNotFound
		}
		return Role{}, err
	}
	return role, nil
}

func (r *PostgresRoleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Role, error) {
	out := make(map[uuid.UUID]Role, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, title, description FROM roles WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Title, &role.Description); err != nil {
			return nil, err
		}
		out[role.ID] = role
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRoleRepository) SkillsByRoleID(ctx context.Context, id uuid.UUID) ([]RoleSkillRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT rs.skill_id, s.name, rs.importance_weight
		 FROM role_skills rs
		 JOIN skills s ON s.id = rs.skill_id
		 WHERE rs.role_id = $1
		 ORDER BY rs.created_at ASC, s.name ASC`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRoleSkills(rows)
}

func (r *PostgresRoleRepository) SkillsByRoleIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]RoleSkillRow, error) {
	out := make(map[uuid.UUID][]RoleSkillRow, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT rs.role_id, rs.skill_id, s.name, rs.importance_weight
		 FROM role_skills rs
		 JOIN skills s ON s.id = rs.skill_id
		 WHERE rs.role_id = ANY($1)
		 ORDER BY rs.created_at ASC, s.name ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var roleID uuid.UUID
		var rs RoleSkillRow
		if err := rows.Scan(&roleID, &rs.SkillID, &rs.SkillName, &rs.ImportanceWeight); err != nil {
			return nil, err
		}
		out[roleID] = append(out[roleID], rs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRoles(rows database.Rows) ([]Role, error) {
	out := make([]Role, 0)
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Title, &role.Description); err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRoleSkills(rows database.Rows) ([]RoleSkillRow, error) {
	out := make([]RoleSkillRow, 0)
	for rows.Next() {
		var rs RoleSkillRow
		if err := rows.Scan(&rs.SkillID, &rs.SkillName, &rs.ImportanceWeight); err != nil {
			return nil, err
		}
		out = append(out, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
