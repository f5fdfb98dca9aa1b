package auth

import (
	"errors"

	"gorm.io/gorm"
)

// UserStore is the persistence capability the credential service needs.
// Field maps passed to UpdateByID are keyed by column name.
type UserStore interface {
	FindByEmail(email string) (*User, error)
	FindByID(id string) (*User, error)
	Insert(user *User) error
	UpdateByID(id string, fields map[string]any) error
}

type GormUserStore struct {
	DB *gorm.DB
}

func NewGormUserStore(conn *gorm.DB) *GormUserStore {
	return &GormUserStore{DB: conn}
}

func (s *GormUserStore) FindByEmail(email string) (*User, error) {
	var user User
	err := s.DB.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) FindByID(id string) (*User, error) {
	var user User
	err := s.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) Insert(user *User) error {
	return s.DB.Create(user).Error
}

func (s *GormUserStore) UpdateByID(id string, fields map[string]any) error {
	return s.DB.Model(&User{}).Where("id = ?", id).Updates(fields).Error
}
