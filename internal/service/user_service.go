package service

import (
	"errors"

	"wordscramble/internal/models"
	"wordscramble/internal/repository"
)

// ErrSelfDelete is returned when an admin tries to delete their own account
var ErrSelfDelete = errors.New("cannot delete your own account")

// UserService exposes account administration
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns all accounts, newest first
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAllUsers()
}

// DeleteUser removes an account and, through cascades, its sessions and
// results. Admins cannot remove themselves.
func (s *UserService) DeleteUser(adminID, userID int64) error {
	if adminID == userID {
		return ErrSelfDelete
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	return s.userRepo.DeleteUser(userID)
}
