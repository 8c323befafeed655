package service

import (
	"fmt"

	"myfinances-be/internal/entities"
	"myfinances-be/internal/repository"
)

// UserService defines the interface for user business logic
type UserService interface {
	Register(name, email, password string) (*entities.User, error)
	Authenticate(email, password string) (*entities.User, error)
	ValidateEmailUniqueness(email string) error
	FindByID(id int64) (*entities.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a new user account. The email must not be registered yet.
// The password is stored as given; there is no hashing (see DESIGN.md).
func (s *userService) Register(name, email, password string) (*entities.User, error) {
	if err := s.ValidateEmailUniqueness(email); err != nil {
		return nil, err
	}

	user, err := s.userRepo.Create(name, email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate checks the credentials and returns the matching user
func (s *userService) Authenticate(email, password string) (*entities.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, &AuthenticationError{Message: "User not found for the given email."}
	}

	if user.Password != password {
		return nil, &AuthenticationError{Message: "Invalid password."}
	}

	return user, nil
}

// ValidateEmailUniqueness fails when a user with the given email already exists
func (s *userService) ValidateEmailUniqueness(email string) error {
	exists, err := s.userRepo.ExistsByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return &BusinessRuleError{Message: "A user with this email is already registered."}
	}
	return nil
}

// FindByID returns the user with the given id, or nil when it does not exist
func (s *userService) FindByID(id int64) (*entities.User, error) {
	return s.userRepo.FindByID(id)
}
