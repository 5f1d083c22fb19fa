package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/account-service/internal/domain"
)

// UserRepository defines persistence access for user accounts.
// Implementations must bind every value as a query parameter and must enforce
// username uniqueness with a constraint, reporting it as domain.ErrUsernameTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.Profile, error)
}

const pgUniqueViolation = "23505"

// PgxQuerier is the subset of *pgxpool.Pool the repository needs.
type PgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type userRepository struct {
	pool PgxQuerier
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool PgxQuerier) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (username, password, created_at)
        VALUES ($1, $2, $3)
        RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			err = errors.Join(domain.ErrUsernameTaken, err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
        SELECT id, username, password, created_at
        FROM users WHERE id=$1`

	return r.getOne(ctx, query, id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT id, username, password, created_at
        FROM users WHERE username=$1`

	return r.getOne(ctx, query, username)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = errors.Join(domain.ErrUserNotFound, err)
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.Profile, error) {
	const query = `
        SELECT id, username, created_at
        FROM users ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	profiles := make([]domain.Profile, 0)
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.Username, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return profiles, nil
}
