package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/spec-kit/account-service/internal/domain"
)

// SQLiteUserRepository implements UserRepository on a modernc SQLite database.
type SQLiteUserRepository struct {
	db        *sql.DB
	writeLock *sync.Mutex // go-sqlite does not support concurrent writes
}

var _ UserRepository = (*SQLiteUserRepository)(nil)

// NewSQLiteUserRepository wraps an open database whose schema is already migrated.
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db, writeLock: new(sync.Mutex)}
}

// Create implements UserRepository.Create.
func (r *SQLiteUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.writeLock.Lock()
	defer r.writeLock.Unlock()

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, password, created_at) VALUES (?, ?, ?)",
		user.Username,
		user.PasswordHash,
		user.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		var liteErr *sqlite.Error
		if errors.As(err, &liteErr) {
			switch liteErr.Code() {
			case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
				err = errors.Join(domain.ErrUsernameTaken, err)
			}
		}
		return fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	user.ID = id
	return nil
}

// GetByID implements UserRepository.GetByID.
func (r *SQLiteUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "SELECT id, username, password, created_at FROM users WHERE id = ?", id)
}

// GetByUsername implements UserRepository.GetByUsername.
func (r *SQLiteUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, "SELECT id, username, password, created_at FROM users WHERE username = ?", username)
}

func (r *SQLiteUserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var (
		user      domain.User
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&user.ID, &user.Username, &user.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = errors.Join(domain.ErrUserNotFound, err)
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	if user.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	return &user, nil
}

// List implements UserRepository.List.
func (r *SQLiteUserRepository) List(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, username, created_at FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	profiles := make([]domain.Profile, 0)
	for rows.Next() {
		var (
			p         domain.Profile
			createdAt string
		)
		if err := rows.Scan(&p.ID, &p.Username, &createdAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if p.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return profiles, nil
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse created_at %q: %w", s, err)
	}
	return t, nil
}
