package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/instant_transfer/internal/apperrors"
	"github.com/SscSPs/instant_transfer/internal/core/domain"
	portsrepo "github.com/SscSPs/instant_transfer/internal/core/ports/repositories"
	"github.com/SscSPs/instant_transfer/internal/models"
	"github.com/SscSPs/instant_transfer/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// SaveUser persists a new user and fills in the database-assigned UserSeq.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	modelUser := mapping.ToModelUser(*user)
	query := `
		INSERT INTO users (user_id, username, email, password_hash, is_verified, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING user_seq;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelUser.UserID,
		modelUser.Username,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.IsVerified,
		modelUser.CreatedAt,
		modelUser.CreatedBy,
		modelUser.LastUpdatedAt,
		modelUser.LastUpdatedBy,
	).Scan(&user.UserSeq)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.ErrDuplicate
			}
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// MarkUserVerified flips the verification flag.
func (r *PgxUserRepository) MarkUserVerified(ctx context.Context, userID string) error {
	query := `
		UPDATE users
		SET is_verified = TRUE, last_updated_at = $1, last_updated_by = $2
		WHERE user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to mark user %s verified: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindUserByID retrieves a user by their UUID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUserBy(ctx, "user_id", userID)
}

// FindUserByEmail retrieves a user by their unique email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUserBy(ctx, "email", email)
}

func (r *PgxUserRepository) findUserBy(ctx context.Context, column, value string) (*domain.User, error) {
	query := fmt.Sprintf(`
		SELECT user_id, user_seq, username, email, password_hash, is_verified, created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE %s = $1;
	`, column)

	var modelUser models.User
	err := r.Pool.QueryRow(ctx, query, value).Scan(
		&modelUser.UserID,
		&modelUser.UserSeq,
		&modelUser.Username,
		&modelUser.Email,
		&modelUser.PasswordHash,
		&modelUser.IsVerified,
		&modelUser.CreatedAt,
		&modelUser.CreatedBy,
		&modelUser.LastUpdatedAt,
		&modelUser.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", column, err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}
