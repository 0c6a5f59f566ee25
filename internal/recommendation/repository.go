// internal/recommendation/repository.go

package recommendation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID int64) (*UserProfile, error)
	Create(ctx context.Context, profile *UserProfile) error

	// Save persists the full profile document with a compare-and-swap on
	// the version column. Returns ErrProfileConflict when another writer
	// got there first.
	Save(ctx context.Context, profile *UserProfile) error

	// StaleProfileUserIDs lists users whose recommendation snapshot is
	// older than the cutoff (or was never generated)
	StaleProfileUserIDs(ctx context.Context, cutoff time.Time, limit int) ([]int64, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetByUserID(ctx context.Context, userID int64) (*UserProfile, error) {
	var profile UserProfile
	query := `SELECT * FROM user_profiles WHERE user_id = $1`

	err := r.db.GetContext(ctx, &profile, query, userID)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

func (r *postgresRepository) Create(ctx context.Context, profile *UserProfile) error {
	query := `
        INSERT INTO user_profiles (
            user_id, academic_background, interests, preferences,
            assessment_results, behavior_data, recommendations, version
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, 1)
        ON CONFLICT (user_id) DO NOTHING
        RETURNING id, version, created_at, updated_at
    `

	err := r.db.QueryRowxContext(
		ctx, query,
		profile.UserID, profile.AcademicBackground, profile.Interests,
		profile.Preferences, profile.AssessmentResults, profile.BehaviorData,
		profile.Recommendations,
	).Scan(&profile.ID, &profile.Version, &profile.CreatedAt, &profile.UpdatedAt)

	// A concurrent request may have created the row first; that profile
	// wins and we read it back
	if err == sql.ErrNoRows {
		existing, getErr := r.GetByUserID(ctx, profile.UserID)
		if getErr != nil {
			return fmt.Errorf("failed to create profile: %w", getErr)
		}
		*profile = *existing
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func (r *postgresRepository) Save(ctx context.Context, profile *UserProfile) error {
	query := `
        UPDATE user_profiles
        SET academic_background = $3, interests = $4, preferences = $5,
            assessment_results = $6, behavior_data = $7, recommendations = $8,
            version = version + 1, updated_at = CURRENT_TIMESTAMP
        WHERE user_id = $1 AND version = $2
        RETURNING version, updated_at
    `

	err := r.db.QueryRowxContext(
		ctx, query,
		profile.UserID, profile.Version,
		profile.AcademicBackground, profile.Interests, profile.Preferences,
		profile.AssessmentResults, profile.BehaviorData, profile.Recommendations,
	).Scan(&profile.Version, &profile.UpdatedAt)

	if err == sql.ErrNoRows {
		return ErrProfileConflict
	}
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

func (r *postgresRepository) StaleProfileUserIDs(ctx context.Context, cutoff time.Time, limit int) ([]int64, error) {
	var userIDs []int64
	query := `
        SELECT user_id FROM user_profiles
        WHERE recommendations->>'generated_at' IS NULL
           OR (recommendations->>'generated_at')::timestamptz < $1
        ORDER BY updated_at DESC
        LIMIT $2
    `

	if err := r.db.SelectContext(ctx, &userIDs, query, cutoff, limit); err != nil {
		return nil, fmt.Errorf("failed to list stale profiles: %w", err)
	}

	return userIDs, nil
}
