package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/carebridge/carebridge-go/internal/crypto"
	"github.com/carebridge/carebridge-go/internal/model"
	"github.com/carebridge/carebridge-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already taken")
)

// AuthService handles registration, login, and profile lookups.
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register validates a role-specific registration request and creates the
// account. It returns an acknowledgement only; the client logs in separately.
func (s *AuthService) Register(ctx context.Context, req model.RegistrationRequest) (model.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return model.RegisterResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	details, err := registrationDetails(req)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	rec := &repository.UserRecord{
		User: model.User{
			Name:        req.Name,
			Email:       req.Email,
			Role:        req.UserType,
			Phone:       req.Phone,
			DateOfBirth: req.DateOfBirth,
		},
		AuthHash: hash,
		Details:  details,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.RegisterResponse{}, ErrEmailTaken
		}
		return model.RegisterResponse{}, err
	}

	return model.RegisterResponse{
		Message: "registration successful",
		UserID:  rec.ID,
	}, nil
}

// Login verifies credentials and mints a bearer token carrying the user's
// role claim.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	rec, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, rec.AuthHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(rec.ID, rec.Role, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		User:  rec.User,
		Token: token,
	}, nil
}

// GetUser retrieves the public profile for an account ID.
func (s *AuthService) GetUser(ctx context.Context, userID string) (model.User, error) {
	rec, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, err
	}
	return rec.User, nil
}

// registrationDetails extracts the role-specific part of a registration
// request into the JSON document stored alongside the account.
func registrationDetails(req model.RegistrationRequest) (json.RawMessage, error) {
	var details any
	switch req.UserType {
	case model.RolePatient:
		details = struct {
			Address          string                  `json:"address,omitempty"`
			EmergencyContact *model.EmergencyContact `json:"emergencyContact,omitempty"`
		}{req.Address, req.EmergencyContact}
	case model.RoleCaregiver:
		details = struct {
			PatientID          string `json:"patient,omitempty"`
			DeviceID           string `json:"deviceId,omitempty"`
			Relationship       string `json:"relationship"`
			IsAlsoFamilyMember bool   `json:"isAlsoFamilyMember"`
		}{req.PatientID, req.DeviceID, req.Relationship, req.IsAlsoFamilyMember}
	case model.RoleFamily:
		details = struct {
			Relationship string `json:"relationship"`
		}{req.Relationship}
	default:
		return nil, model.ErrUnknownUserType
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("encoding registration details: %w", err)
	}
	return raw, nil
}
