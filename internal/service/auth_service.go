package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"wordscramble/internal/database"
	"wordscramble/internal/models"
	"wordscramble/internal/repository"
	"wordscramble/internal/security"
	"wordscramble/internal/validation"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNameNotAllowed     = errors.New("display name contains inappropriate language")
)

// AuthService handles registration, login and token issuance
type AuthService struct {
	userRepo     *repository.UserRepository
	db           *database.DB
	tokenService *security.TokenService
	emailService *EmailService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, db *database.DB, tokenService *security.TokenService, emailService *EmailService) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		db:           db,
		tokenService: tokenService,
		emailService: emailService,
	}
}

// Register creates a new account and returns the user with a signed token
func (s *AuthService) Register(name, email, password string) (*models.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validation.ValidateName(name); err != nil {
		return nil, "", err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	flagged, err := s.db.ContainsBadWord(name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to screen display name: %w", err)
	}
	if flagged {
		return nil, "", ErrNameNotAllowed
	}

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.CreateUser(name, email, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokenService.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	// A failed welcome email must not fail the registration.
	if s.emailService != nil && s.emailService.IsEnabled() {
		go func(email, name string) {
			if err := s.emailService.SendWelcomeEmail(context.Background(), email, name); err != nil {
				log.Printf("Failed to send welcome email to %s: %v", email, err)
			}
		}(user.Email, user.Name)
	}

	return user, token, nil
}

// Login verifies credentials and returns the user with a signed token
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, "", ErrInvalidCredentials
	}
	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokenService.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// OAuthSignIn finds or creates the account behind an OAuth identity and
// returns it with a signed token. An existing account with the same email is
// linked to the provider on first use.
func (s *AuthService) OAuthSignIn(provider, subject, email, name string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if subject == "" || email == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserByOAuth(provider, subject)
	if err != nil {
		return nil, "", err
	}

	if user == nil {
		user, err = s.userRepo.GetUserByEmail(email)
		if err != nil {
			return nil, "", err
		}
		if user != nil {
			// An account already linked to another provider still signs in;
			// the provider verified the same email address.
			if err := s.userRepo.LinkOAuthProvider(user.ID, provider, subject); err != nil && !errors.Is(err, repository.ErrProviderLinked) {
				return nil, "", err
			}
		}
	}

	if user == nil {
		name = strings.TrimSpace(name)
		if name != "" {
			// Provider-supplied names get the same screening as registration.
			flagged, err := s.db.ContainsBadWord(name)
			if err != nil {
				return nil, "", fmt.Errorf("failed to screen display name: %w", err)
			}
			if flagged {
				name = ""
			}
		}
		if name == "" {
			name, _, _ = strings.Cut(email, "@")
		}
		user, err = s.userRepo.CreateOAuthUser(name, email, provider, subject)
		if err != nil {
			return nil, "", err
		}
	}

	token, err := s.tokenService.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUser loads the account behind a verified token
func (s *AuthService) GetUser(userID int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
