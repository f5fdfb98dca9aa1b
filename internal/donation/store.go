package donation

import (
	"errors"

	"gorm.io/gorm"
)

// DonationStore is the persistence capability the lifecycle service needs.
// Listings are ordered by creation time descending, id ascending as the
// tie-break.
type DonationStore interface {
	Insert(d *Donation) error
	FindByID(id string) (*Donation, error)
	ListAll() ([]Donation, error)
	ListByOwner(ownerID string) ([]Donation, error)
	// UpdateStatusIfPending performs a conditional update guarded on the
	// current status being pending. It reports whether a row was changed.
	UpdateStatusIfPending(id, status string) (bool, error)
	DeleteByID(id string) error
}

type GormDonationStore struct {
	DB *gorm.DB
}

func NewGormDonationStore(conn *gorm.DB) *GormDonationStore {
	return &GormDonationStore{DB: conn}
}

func (s *GormDonationStore) Insert(d *Donation) error {
	return s.DB.Create(d).Error
}

func (s *GormDonationStore) FindByID(id string) (*Donation, error) {
	var d Donation
	err := s.DB.First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *GormDonationStore) ListAll() ([]Donation, error) {
	var donations []Donation
	err := s.DB.Order("created_at DESC, id ASC").Find(&donations).Error
	return donations, err
}

func (s *GormDonationStore) ListByOwner(ownerID string) ([]Donation, error) {
	var donations []Donation
	err := s.DB.Where("owner_id = ?", ownerID).
		Order("created_at DESC, id ASC").
		Find(&donations).Error
	return donations, err
}

func (s *GormDonationStore) UpdateStatusIfPending(id, status string) (bool, error) {
	res := s.DB.Model(&Donation{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Update("status", status)
	return res.RowsAffected > 0, res.Error
}

func (s *GormDonationStore) DeleteByID(id string) error {
	return s.DB.Delete(&Donation{}, "id = ?", id).Error
}
