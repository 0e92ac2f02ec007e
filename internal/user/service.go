package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Service wraps the repository with credential handling. Passwords are
// hashed here, before they ever leave the gateway, so the backend only
// sees bcrypt hashes.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, u User) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u.Password = string(hash)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return User{}, err
	}
	return sanitizeUser(created), nil
}

// Authenticate verifies the password against the stored hash. A missing
// account and a wrong password return the same error so that the
// response does not reveal which addresses are registered.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if u.Status == StatusSuspended {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return sanitizeUser(u), nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = sanitizeUser(users[i])
	}
	return users, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	return sanitizeUser(u), nil
}

// UpdateProfile changes contact fields only. Email, role, status and
// password keep their stored values regardless of what the payload
// carries.
func (s *Service) UpdateProfile(ctx context.Context, id int64, patch User) (User, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	current.FirstName = patch.FirstName
	current.LastName = patch.LastName
	current.PhoneNumber = patch.PhoneNumber
	current.Address = patch.Address
	current.City = patch.City
	current.State = patch.State
	current.ZipCode = patch.ZipCode
	current.Country = patch.Country
	updated, err := s.repo.Update(ctx, id, current)
	if err != nil {
		return User{}, err
	}
	return sanitizeUser(updated), nil
}

// UpdateStatus is the admin lever for suspending or reactivating an
// account.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (User, error) {
	switch status {
	case StatusActive, StatusInactive, StatusSuspended:
	default:
		return User{}, errors.New("invalid status: " + status)
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	current.Status = status
	updated, err := s.repo.Update(ctx, id, current)
	if err != nil {
		return User{}, err
	}
	return sanitizeUser(updated), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
