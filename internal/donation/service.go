package donation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifestream-health/donation-backend/internal/auth"
	"github.com/lifestream-health/donation-backend/internal/utils"
)

// ProfileSource yields the owner profile to snapshot at creation time.
// Satisfied by auth.UserStore.
type ProfileSource interface {
	FindByID(id string) (*auth.User, error)
}

// Service owns the donation request state machine and the authorization
// rules for who may create, list, transition or cancel a request.
type Service struct {
	donations DonationStore
	users     ProfileSource
}

func NewService(donations DonationStore, users ProfileSource) *Service {
	return &Service{donations: donations, users: users}
}

type CreateInput struct {
	Type          string
	Details       string
	PreferredDate string
	Hospital      string
	Time          string
}

// Create submits a new pending request for a donor principal, copying the
// donor's contact fields onto the record as a one-time snapshot.
func (s *Service) Create(principal utils.Principal, input CreateInput) (*Donation, error) {
	if principal.Role != auth.RoleDonor {
		return nil, ErrForbidden
	}
	if !ValidType(input.Type) {
		return nil, fmt.Errorf("%w: type must be blood or organ", ErrInvalidInput)
	}
	if input.PreferredDate == "" || input.Hospital == "" || input.Time == "" {
		return nil, fmt.Errorf("%w: preferredDate, hospital and time are required", ErrInvalidInput)
	}

	owner, err := s.users.FindByID(principal.UserID)
	if err != nil {
		return nil, err
	}

	d := &Donation{
		ID:            uuid.NewString(),
		OwnerID:       owner.ID,
		Type:          input.Type,
		Details:       input.Details,
		Status:        StatusPending,
		FullName:      owner.FullName,
		Email:         owner.Email,
		Contact:       owner.Telephone,
		Address:       owner.Address,
		BloodGroup:    owner.BloodGroup,
		Hospital:      input.Hospital,
		PreferredDate: input.PreferredDate,
		Time:          input.Time,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.donations.Insert(d); err != nil {
		return nil, err
	}
	return d, nil
}

// ListAll returns every request, most recent first. Admin only.
func (s *Service) ListAll(principal utils.Principal) ([]Donation, error) {
	if principal.Role != auth.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.donations.ListAll()
}

// ListOwn returns the caller's own requests, most recent first.
func (s *Service) ListOwn(principal utils.Principal) ([]Donation, error) {
	return s.donations.ListByOwner(principal.UserID)
}

// Transition moves a pending request to approved or rejected. The update is
// conditional on the stored status still being pending, so two admins racing
// on the same request cannot both win.
func (s *Service) Transition(principal utils.Principal, requestID, newStatus string) (*Donation, error) {
	if principal.Role != auth.RoleAdmin {
		return nil, ErrForbidden
	}
	if !ValidTargetStatus(newStatus) {
		return nil, fmt.Errorf("%w: status must be approved or rejected", ErrInvalidInput)
	}

	if _, err := s.donations.FindByID(requestID); err != nil {
		return nil, err
	}

	updated, err := s.donations.UpdateStatusIfPending(requestID, newStatus)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrConflict
	}

	return s.donations.FindByID(requestID)
}

// Cancel deletes the caller's own pending request. A request owned by
// someone else reports not-found, the same as a missing one.
func (s *Service) Cancel(principal utils.Principal, requestID string) error {
	d, err := s.donations.FindByID(requestID)
	if err != nil {
		return err
	}
	if d.OwnerID != principal.UserID {
		return ErrNotFound
	}
	if d.Status != StatusPending {
		return ErrConflict
	}
	return s.donations.DeleteByID(requestID)
}
