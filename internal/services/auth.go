package services

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bc99/gaming-platform/internal/logger"
	"github.com/bc99/gaming-platform/internal/models"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserBanned         = errors.New("account is banned")
	ErrUIDSpaceExhausted  = errors.New("could not allocate a unique uid")
)

// uidAttemptsPerWidth bounds the sampling loop for each uid digit width.
const uidAttemptsPerWidth = 10

// UserReader defines read operations needed for authentication.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	ExistsByUID(ctx context.Context, uid string) (bool, error)
}

// UserCreator defines the user insert operation.
type UserCreator interface {
	Save(ctx context.Context, uid, username, passwordHash, mobile string) (*models.UserDB, error)
}

// SessionStore defines session record operations.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, userID int64) error
	Delete(ctx context.Context, sessionID string) error
}

// TokenProvider signs and verifies session tokens.
type TokenProvider interface {
	Generate(ctx context.Context, userID int64, sessionID string) (string, error)
	Parse(ctx context.Context, tokenString string) (int64, string, error)
}

// AuthService handles registration, login, and logout.
type AuthService struct {
	reader   UserReader
	creator  UserCreator
	sessions SessionStore
	tokens   TokenProvider
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, creator UserCreator, sessions SessionStore, tokens TokenProvider) *AuthService {
	return &AuthService{
		reader:   reader,
		creator:  creator,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Register creates a new user and opens a session for it. The returned
// token authenticates subsequent requests.
func (svc *AuthService) Register(ctx context.Context, username, password, mobile string) (*models.User, string, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	uid, err := svc.generateUID(ctx)
	if err != nil {
		logger.Log.Errorw("failed to generate uid", "err", err)
		return nil, "", err
	}

	user, err := svc.creator.Save(ctx, uid, username, string(hashedPassword), mobile)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	tok, err := svc.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	public := user.Public()
	return &public, tok, nil
}

// Login verifies credentials and opens a session. Banned accounts are
// rejected even with a valid password.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	if user.IsBanned {
		return nil, "", ErrUserBanned
	}

	tok, err := svc.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	public := user.Public()
	return &public, tok, nil
}

// CurrentUser returns the public view of an authenticated user.
func (svc *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load current user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	public := user.Public()
	return &public, nil
}

// Logout invalidates the session behind the token. An unparsable or
// already-expired token is not an error.
func (svc *AuthService) Logout(ctx context.Context, tokenString string) error {
	_, sessionID, err := svc.tokens.Parse(ctx, tokenString)
	if err != nil {
		return nil
	}
	return svc.sessions.Delete(ctx, sessionID)
}

func (svc *AuthService) openSession(ctx context.Context, userID int64) (string, error) {
	sessionID := uuid.NewString()

	if err := svc.sessions.Save(ctx, sessionID, userID); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return "", err
	}

	tok, err := svc.tokens.Generate(ctx, userID, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return tok, nil
}

// generateUID samples the 5-digit display-id space until it finds a free
// value. The loop is bounded: after uidAttemptsPerWidth misses the space is
// widened by one digit, up to 8 digits.
func (svc *AuthService) generateUID(ctx context.Context) (string, error) {
	for width := 5; width <= 8; width++ {
		lo := int64(1)
		for i := 1; i < width; i++ {
			lo *= 10
		}
		hi := lo * 10

		for attempt := 0; attempt < uidAttemptsPerWidth; attempt++ {
			uid := strconv.FormatInt(lo+rand.Int64N(hi-lo), 10)

			exists, err := svc.reader.ExistsByUID(ctx, uid)
			if err != nil {
				return "", err
			}
			if !exists {
				return uid, nil
			}
		}

		logger.Log.Warnw("uid space crowded, widening", "width", width+1)
	}

	return "", ErrUIDSpaceExhausted
}
