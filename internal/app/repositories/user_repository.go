package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mgdelacruz/regisys/internal/app/models"
	"github.com/mgdelacruz/regisys/internal/pkg/apperrors"
	"github.com/mgdelacruz/regisys/internal/pkg/dberrors"
)

// Partial unique indexes on the users table; empty strings are excluded so
// manual and Google accounts can leave each other's identifier blank.
const (
	usernameConstraint = "users_username_key"
	googleIDConstraint = "users_google_id_key"
)

// userColumns is the column list shared by every user SELECT
const userColumns = `
	id,
	fullname,
	COALESCE(username, ''),
	COALESCE(password, ''),
	role,
	COALESCE(email, ''),
	COALESCE(google_id, ''),
	created_at
`

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.Email,
		&user.GoogleID,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user account by exact username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByGoogleID retrieves a user account by Google subject id
func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, googleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// CreateManual inserts a username/password account. The role has already been
// whitelisted by the service; a duplicate username surfaces as
// apperrors.ErrUsernameTaken.
func (r *UserRepository) CreateManual(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (fullname, username, password, role, email, google_id)
		VALUES ($1, $2, $3, $4, '', '')
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.FullName,
		user.Username,
		user.Password,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, usernameConstraint) {
			return apperrors.ErrUsernameTaken
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// CreateGoogle inserts an account provisioned from a verified Google
// identity. Federated accounts always start as students.
func (r *UserRepository) CreateGoogle(ctx context.Context, user *models.User) error {
	user.Role = models.RoleStudent

	query := `
		INSERT INTO users (fullname, email, google_id, role, username, password)
		VALUES ($1, $2, $3, $4, '', '')
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.FullName,
		user.Email,
		user.GoogleID,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, googleIDConstraint) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating google user: %w", err)
	}

	return nil
}
