package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"nura_backend/internal/model"
	"nura_backend/internal/repository"
	"nura_backend/internal/util"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{UserRepo: userRepo, Storage: storage}
}

func (s *UserService) GetProfile(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

// UpdateProfile changes the caller's own mutable fields. Role and email stay
// fixed here; role changes go through the admin endpoint.
func (s *UserService) UpdateProfile(id uint, name string) (*model.User, error) {
	user, err := s.GetProfile(id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		user.Name = name
	}
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ChangePassword(id uint, oldPassword, newPassword string) error {
	user, err := s.GetProfile(id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return util.ErrInvalidCredentials
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.UserRepo.Update(user)
}

func (s *UserService) UploadAvatar(ctx context.Context, id uint, reader io.Reader, size int64, filename, contentType string) (string, error) {
	user, err := s.GetProfile(id)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("avatars/%d/%s%s", id, uuid.NewString(), filepath.Ext(filename))
	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}

	user.AvatarURL = url
	if err := s.UserRepo.Update(user); err != nil {
		return "", err
	}
	return url, nil
}

func (s *UserService) List(page, limit int, role model.UserRole) ([]model.User, int64, error) {
	return s.UserRepo.List(page, limit, role)
}

// SetRole is admin-only; the controller enforces that.
func (s *UserService) SetRole(id uint, role model.UserRole) error {
	user, err := s.GetProfile(id)
	if err != nil {
		return err
	}
	user.Role = role
	return s.UserRepo.Update(user)
}

func (s *UserService) Delete(id uint) error {
	return s.UserRepo.Delete(id)
}
