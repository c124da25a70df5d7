package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/HarshAvichal/EventEase/internal/auth"
	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/HarshAvichal/EventEase/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const resetTokenTTL = time.Hour

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@gmail\.com$`)

	// One class per rule; Go's regexp has no lookaheads.
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[@$!%*?&]`)
)

type UserService struct {
	userRepo    ports.UserRepo
	tokens      *auth.TokenManager
	notifier    ports.Notifier
	clock       ports.Clock
	frontendURL string
	logger      logger.Logger
}

func NewUserService(
	userRepo ports.UserRepo,
	tokens *auth.TokenManager,
	notifier ports.Notifier,
	clock ports.Clock,
	frontendURL string,
	logger logger.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		tokens:      tokens,
		notifier:    notifier,
		clock:       clock,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

func validatePassword(password string) error {
	if len(password) < 8 ||
		!upperRe.MatchString(password) ||
		!lowerRe.MatchString(password) ||
		!digitRe.MatchString(password) ||
		!specialRe.MatchString(password) {
		return fmt.Errorf("%w: password must be at least 8 characters long, include an uppercase letter, a lowercase letter, a number, and a special character", domain.ErrValidation)
	}
	return nil
}

func (s *UserService) Signup(ctx context.Context, input domain.SignupInput) (*domain.User, domain.TokenPair, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	role := domain.Role(strings.ToLower(input.Role))

	if firstName == "" || lastName == "" || email == "" || input.Password == "" || input.Role == "" {
		return nil, domain.TokenPair{}, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if !nameRe.MatchString(firstName) {
		return nil, domain.TokenPair{}, fmt.Errorf("%w: first name must contain only letters", domain.ErrValidation)
	}
	if !nameRe.MatchString(lastName) {
		return nil, domain.TokenPair{}, fmt.Errorf("%w: last name must contain only letters", domain.ErrValidation)
	}
	if !emailRe.MatchString(email) {
		return nil, domain.TokenPair{}, fmt.Errorf("%w: invalid email, only Gmail addresses are allowed", domain.ErrValidation)
	}
	if role != domain.RoleOrganizer && role != domain.RoleParticipant {
		return nil, domain.TokenPair{}, fmt.Errorf("%w: invalid role, must be either 'organizer' or 'participant'", domain.ErrValidation)
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, domain.TokenPair{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.TokenPair{}, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, domain.TokenPair{}, err
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, domain.TokenPair{}, err
	}

	s.logger.Info("user signed up",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)),
	)

	return user, pair, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, domain.TokenPair, error) {
	if email == "" || password == "" {
		return nil, domain.TokenPair{}, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, domain.TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, domain.TokenPair{}, domain.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, domain.TokenPair{}, err
	}

	s.logger.Info("user logged in", logger.String("user_id", user.ID))

	return user, pair, nil
}

// Refresh rotates the token pair. The presented refresh token must both
// verify and match the copy persisted on the user row, so a stolen token
// dies on first legitimate rotation.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	userID, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return domain.TokenPair{}, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.TokenPair{}, domain.ErrInvalidToken
	}
	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return domain.TokenPair{}, domain.ErrInvalidToken
	}

	return s.issueTokens(ctx, user)
}

func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	user, err := s.userRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		// Unknown token: logout is idempotent.
		return nil
	}
	return s.userRepo.SetRefreshToken(ctx, user.ID, nil)
}

func (s *UserService) issueTokens(ctx context.Context, user *domain.User) (domain.TokenPair, error) {
	pair, err := s.tokens.NewPair(user)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("issue tokens: %w", err)
	}
	if err := s.userRepo.SetRefreshToken(ctx, user.ID, &pair.RefreshToken); err != nil {
		return domain.TokenPair{}, fmt.Errorf("persist refresh token: %w", err)
	}
	return pair, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, input domain.UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		name := strings.TrimSpace(*input.FirstName)
		if !nameRe.MatchString(name) {
			return nil, fmt.Errorf("%w: first name must contain only letters", domain.ErrValidation)
		}
		user.FirstName = name
	}
	if input.LastName != nil {
		name := strings.TrimSpace(*input.LastName)
		if !nameRe.MatchString(name) {
			return nil, fmt.Errorf("%w: last name must contain only letters", domain.ErrValidation)
		}
		user.LastName = name
	}

	if err := s.userRepo.UpdateProfile(ctx, id, user.FirstName, user.LastName); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) DeleteAccount(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: invalid email, only Gmail addresses are allowed", domain.ErrValidation)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.userRepo.SetResetToken(ctx, user.ID, token, s.clock.Now().Add(resetTokenTTL)); err != nil {
		return fmt.Errorf("persist reset token: %w", err)
	}

	resetURL := s.frontendURL + "/reset-password/" + token
	if err := s.notifier.SendPasswordReset(ctx, user, resetURL); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}

	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, token, password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", domain.ErrValidation)
	}

	user, err := s.userRepo.GetByResetToken(ctx, token, s.clock.Now())
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	s.logger.Info("password reset", logger.String("user_id", user.ID))

	return nil
}
