package contact

import "gorm.io/gorm"

type MessageStore interface {
	Insert(m *Message) error
}

type GormMessageStore struct {
	DB *gorm.DB
}

func NewGormMessageStore(conn *gorm.DB) *GormMessageStore {
	return &GormMessageStore{DB: conn}
}

func (s *GormMessageStore) Insert(m *Message) error {
	return s.DB.Create(m).Error
}
