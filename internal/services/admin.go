package services

import (
	"context"

	"github.com/bc99/gaming-platform/internal/logger"
	"github.com/bc99/gaming-platform/internal/models"
)

// UserLister lists all users.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserModerator defines the administrative write operations.
type UserModerator interface {
	UpdateBalance(ctx context.Context, id int64, delta float64) (*models.UserDB, error)
	UpdateBanStatus(ctx context.Context, id int64, banned bool) (*models.UserDB, error)
}

// AdminService handles administrative user management.
type AdminService struct {
	reader  UserLister
	writer  UserModerator
	history HistoryReader
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(reader UserLister, writer UserModerator, history HistoryReader) *AdminService {
	return &AdminService{
		reader:  reader,
		writer:  writer,
		history: history,
	}
}

// ListUsers returns all users ordered by id ascending.
func (svc *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}

	out := make([]models.User, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}

// AdjustBalance applies an administrative balance override. The amount may
// be negative but cannot push the balance below zero.
func (svc *AdminService) AdjustBalance(ctx context.Context, userID int64, amount float64) (*models.User, error) {
	existing, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	updated, err := svc.writer.UpdateBalance(ctx, userID, amount)
	if err != nil {
		logger.Log.Errorw("failed to adjust balance", "user_id", userID, "amount", amount, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrInsufficientBalance
	}

	public := updated.Public()
	return &public, nil
}

// SetBanStatus bans or unbans a user.
func (svc *AdminService) SetBanStatus(ctx context.Context, userID int64, banned bool) (*models.User, error) {
	updated, err := svc.writer.UpdateBanStatus(ctx, userID, banned)
	if err != nil {
		logger.Log.Errorw("failed to update ban status", "user_id", userID, "banned", banned, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	public := updated.Public()
	return &public, nil
}

// UserHistory returns another user's settlement history for review.
func (svc *AdminService) UserHistory(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
	entries, err := svc.history.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to query user history", "user_id", userID, "error", err)
		return nil, err
	}

	out := make([]models.HistoryEntry, 0, len(entries))
	for i := range entries {
		out = append(out, entries[i].Public())
	}
	return out, nil
}
