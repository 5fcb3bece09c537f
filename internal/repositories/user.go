package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/bc99/gaming-platform/internal/logger"
	"github.com/bc99/gaming-platform/internal/models"
)

const userColumns = `id, uid, username, password_hash, mobile, balance, is_admin, is_banned, created_at`

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil if absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ExistsByUID reports whether a user with the given public uid exists.
func (r *UserReadRepository) ExistsByUID(ctx context.Context, uid string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE uid = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, uid); err != nil {
		return false, err
	}
	return exists, nil
}

// List returns all users ordered by id ascending.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY id ASC
	`

	var users []models.UserDB
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}

// UserWriteRepository handles user write operations. When a transaction is
// present in the context it is used instead of the pool.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user with the starting balance and returns the row.
// A unique violation on username surfaces as a database error.
func (r *UserWriteRepository) Save(ctx context.Context, uid, username, passwordHash, mobile string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (uid, username, password_hash, mobile)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns + `
	`
	args := []any{uid, username, passwordHash, mobile}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"username", username,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateBalance applies delta to the user's balance in a single atomic
// statement. The guard keeps the balance from going negative: when the row
// exists but the resulting balance would be below zero, no row is updated
// and (nil, nil) is returned, same as for a missing user.
func (r *UserWriteRepository) UpdateBalance(ctx context.Context, id int64, delta float64) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET balance = balance + $2
		WHERE id = $1 AND balance + $2 >= 0
		RETURNING ` + userColumns + `
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, id, delta)

	logger.Log.Infow("balance update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, delta},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateBanStatus sets the banned flag and returns the updated row, or nil
// if the user does not exist.
func (r *UserWriteRepository) UpdateBanStatus(ctx context.Context, id int64, banned bool) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET is_banned = $2
		WHERE id = $1
		RETURNING ` + userColumns + `
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, id, banned)

	logger.Log.Infow("ban update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, banned},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
