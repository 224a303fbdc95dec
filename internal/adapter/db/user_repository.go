package db

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
)

const selectUserQuery = `
SELECT id, email, username, password_hash, created_at, updated_at
FROM users
`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           uint64    `db:"id"`
	Email        string    `db:"email"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	result, err := conn(ctx, r.db).ExecContext(ctx,
		"INSERT INTO users (email, username, password_hash) VALUES (?, ?, ?)",
		input.Email, input.Username, input.PasswordHash,
	)
	if err != nil {
		// Lost a race against a concurrent registration.
		if key, ok := duplicateKey(err); ok {
			if strings.Contains(key, "username") {
				return domain.User{}, domain.ErrUsernameTaken
			}
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	return r.FindByID(ctx, uint64(id))
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (domain.User, error) {
	return r.findOne(ctx, selectUserQuery+"WHERE id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, selectUserQuery+"WHERE email = ?", email)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.findOne(ctx, selectUserQuery+"WHERE username = ?", username)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg interface{}) (domain.User, error) {
	var row userRow
	if err := conn(ctx, r.db).GetContext(ctx, &row, query, arg); err != nil {
		return domain.User{}, notFound(err, domain.ErrUserNotFound)
	}
	return domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}
