package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"vconfig-be/internal/models"
	"vconfig-be/internal/repository"
	"vconfig-be/internal/token"
)

var (
	// ErrUserExists is returned when registering an email that already
	// has an account.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so the response cannot be used to enumerate
	// accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// bcryptCost is the work factor for password hashing.
const bcryptCost = 10

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
	CurrentUser(id int) (*models.UserInfo, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, tokens *token.Service) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new user account and logs it in.
func (s *authService) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	// Fast-path duplicate check. The unique constraint on users.email
	// remains the authoritative guard against concurrent registrations.
	_, err := s.userRepo.FindByEmail(req.Email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(req.Name, req.Email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Message: "Registration successful",
		User: models.UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		Token: tokenString,
	}, nil
}

// Login authenticates a user and returns user info with a fresh token.
func (s *authService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokenString, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Message: "Login successful",
		User: models.UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		Token: tokenString,
	}, nil
}

// CurrentUser returns the public view of the user with the given id.
func (s *authService) CurrentUser(id int) (*models.UserInfo, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	return &models.UserInfo{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
