package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// CredentialService turns plaintext credentials into stored accounts and
// stored accounts back into verified identities.
type CredentialService struct {
	store UserStore
}

func NewCredentialService(store UserStore) *CredentialService {
	return &CredentialService{store: store}
}

type RegisterInput struct {
	Email      string
	Password   string
	Role       string
	FullName   string
	Telephone  string
	Address    string
	BloodGroup string
}

// Register creates an account with a bcrypt hash of the password. The
// plaintext never reaches the store or the logs.
func (s *CredentialService) Register(input RegisterInput) (*User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	if !ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: role must be donor or admin", ErrInvalidInput)
	}

	_, err := s.store.FindByEmail(input.Email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:             uuid.NewString(),
		Email:          input.Email,
		HashedPassword: string(hashed),
		Role:           input.Role,
		FullName:       input.FullName,
		Telephone:      input.Telephone,
		Address:        input.Address,
		BloodGroup:     input.BloodGroup,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.store.Insert(user); err != nil {
		return nil, err
	}
	return user, nil
}

// VerifyCredentials looks up the account and compares the bcrypt hash. An
// unknown email and a wrong password report the same failure.
func (s *CredentialService) VerifyCredentials(email, password string) (*User, error) {
	user, err := s.store.FindByEmail(email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *CredentialService) Profile(userID string) (*User, error) {
	return s.store.FindByID(userID)
}

// ProfileUpdate carries the mutable profile fields. Nil means "leave as is".
// Email is immutable after signup.
type ProfileUpdate struct {
	FullName   *string
	Telephone  *string
	Address    *string
	BloodGroup *string
}

func (s *CredentialService) UpdateProfile(userID string, update ProfileUpdate) (*User, error) {
	if _, err := s.store.FindByID(userID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if update.FullName != nil {
		fields["full_name"] = *update.FullName
	}
	if update.Telephone != nil {
		fields["telephone"] = *update.Telephone
	}
	if update.Address != nil {
		fields["address"] = *update.Address
	}
	if update.BloodGroup != nil {
		fields["blood_group"] = *update.BloodGroup
	}

	if len(fields) > 0 {
		if err := s.store.UpdateByID(userID, fields); err != nil {
			return nil, err
		}
	}
	return s.store.FindByID(userID)
}
