// internal/careers/repository.go

package careers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, career *Career) error
	GetByID(ctx context.Context, id int64) (*Career, error)
	Update(ctx context.Context, career *Career) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params *ListParams) ([]*Career, int, error)

	// FindCandidates returns a bounded candidate pool for scoring
	FindCandidates(ctx context.Context, limit int) ([]*Career, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, career *Career) error {
	query := `
        INSERT INTO careers (
            name, description, salary_min, salary_max, growth_rate, demand,
            skills, industries, job_roles, courses, requirements
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at, updated_at
    `

	err := r.db.QueryRowxContext(
		ctx, query,
		career.Name, career.Description, career.SalaryMin, career.SalaryMax,
		career.GrowthRate, career.Demand, career.Skills, career.Industries,
		career.JobRoles, career.Courses, career.Requirement,
	).Scan(&career.ID, &career.CreatedAt, &career.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create career: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*Career, error) {
	var career Career
	query := `SELECT * FROM careers WHERE id = $1`

	err := r.db.GetContext(ctx, &career, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrCareerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get career: %w", err)
	}

	return &career, nil
}

func (r *postgresRepository) Update(ctx context.Context, career *Career) error {
	query := `
        UPDATE careers
        SET name = $2, description = $3, salary_min = $4, salary_max = $5,
            growth_rate = $6, demand = $7, skills = $8, industries = $9,
            job_roles = $10, courses = $11, requirements = $12,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $1
        RETURNING updated_at
    `

	err := r.db.QueryRowxContext(
		ctx, query,
		career.ID, career.Name, career.Description, career.SalaryMin,
		career.SalaryMax, career.GrowthRate, career.Demand, career.Skills,
		career.Industries, career.JobRoles, career.Courses, career.Requirement,
	).Scan(&career.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrCareerNotFound
	}

	return err
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM careers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCareerNotFound
	}

	return nil
}

func (r *postgresRepository) List(ctx context.Context, params *ListParams) ([]*Career, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argIdx := 1

	if params.Demand != "" {
		conditions = append(conditions, fmt.Sprintf("demand = $%d", argIdx))
		args = append(args, params.Demand)
		argIdx++
	}
	if params.Industry != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(industries)", argIdx))
		args = append(args, params.Industry)
		argIdx++
	}
	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIdx))
		args = append(args, "%"+params.Search+"%")
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM careers" + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count careers: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT * FROM careers%s ORDER BY name ASC LIMIT $%d OFFSET $%d",
		where, argIdx, argIdx+1,
	)
	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	var careers []*Career
	if err := r.db.SelectContext(ctx, &careers, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list careers: %w", err)
	}

	return careers, total, nil
}

func (r *postgresRepository) FindCandidates(ctx context.Context, limit int) ([]*Career, error) {
	var careers []*Career
	query := `SELECT * FROM careers ORDER BY id ASC LIMIT $1`

	if err := r.db.SelectContext(ctx, &careers, query, limit); err != nil {
		return nil, fmt.Errorf("failed to find career candidates: %w", err)
	}

	return careers, nil
}
