package auth

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kimdohyun-dev/actionlog/errors"
	"github.com/kimdohyun-dev/actionlog/internal/domain/entities"
	"github.com/kimdohyun-dev/actionlog/internal/domain/repositories"
	pkgjwt "github.com/kimdohyun-dev/actionlog/pkg/jwt"
)

// SignupInput carries the fields needed to register a new user
type SignupInput struct {
	LoginID  string
	Password string
	Name     string
	Email    string
}

// LoginResult is returned on successful authentication
type LoginResult struct {
	AccessToken string
	LoginID     string
	Name        string
}

// Service implements signup, login and principal resolution
type Service struct {
	users  repositories.UserRepository
	tokens *pkgjwt.Manager
	logger *zap.Logger
}

// NewService creates a new auth service
func NewService(users repositories.UserRepository, tokens *pkgjwt.Manager, logger *zap.Logger) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Signup registers a new user. Login id and email must both be unused.
func (s *Service) Signup(ctx context.Context, input SignupInput) (uuid.UUID, error) {
	exists, err := s.users.ExistsByLoginID(ctx, input.LoginID)
	if err != nil {
		return uuid.Nil, errors.ErrInternal(err)
	}
	if exists {
		return uuid.Nil, errors.ErrDuplicateLoginID(input.LoginID)
	}

	exists, err = s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return uuid.Nil, errors.ErrInternal(err)
	}
	if exists {
		return uuid.Nil, errors.ErrDuplicateEmail(input.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, errors.ErrInternal(err)
	}

	user := entities.NewUser(input.LoginID, string(hash), input.Name, input.Email)
	if err := user.Validate(); err != nil {
		return uuid.Nil, errors.ErrInvalidArgument(err.Error())
	}

	if err := s.users.Create(ctx, user); err != nil {
		return uuid.Nil, errors.ErrInternal(err)
	}

	s.logger.Info("user registered",
		zap.String("login_id", user.LoginID),
		zap.String("user_id", user.ID.String()),
	)

	return user.ID, nil
}

// Login verifies credentials and issues a fresh token. An unknown login id and
// a wrong password fail identically so the response does not leak which it was.
func (s *Service) Login(ctx context.Context, loginID, password string) (*LoginResult, error) {
	user, err := s.users.FindByLoginID(ctx, loginID)
	if err != nil {
		if stderrors.Is(err, entities.ErrUserNotFound) {
			return nil, errors.ErrInvalidCredentials()
		}
		return nil, errors.ErrInternal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials()
	}

	token, err := s.tokens.Issue(user.LoginID)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	s.logger.Info("user logged in", zap.String("login_id", user.LoginID))

	return &LoginResult{
		AccessToken: token,
		LoginID:     user.LoginID,
		Name:        user.Name,
	}, nil
}

// ResolvePrincipal bridges a validated token subject back to a full user
// record. The user may have been deleted after token issuance.
func (s *Service) ResolvePrincipal(ctx context.Context, loginID string) (*entities.User, error) {
	user, err := s.users.FindByLoginID(ctx, loginID)
	if err != nil {
		if stderrors.Is(err, entities.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound()
		}
		return nil, errors.ErrInternal(err)
	}
	return user, nil
}
