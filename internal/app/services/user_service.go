package services

import (
	"context"
	"fmt"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/app/models/dto"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
)

// TokenSigner produces signed bearer tokens for a user id.
type TokenSigner interface {
	Sign(userID string) (string, error)
}

// UserService handles mock-account signup, user lookup and token issuance
type UserService struct {
	userStore UserStore
	signer    TokenSigner
}

// NewUserService creates a new user service instance
func NewUserService(userStore UserStore, signer TokenSigner) *UserService {
	return &UserService{
		userStore: userStore,
		signer:    signer,
	}
}

// CreateMockUser persists a self-service account. The mock flag is forced;
// externally provisioned accounts never pass through this path.
func (s *UserService) CreateMockUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown role %q", req.Role))
	}

	user := &models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsMock:    true,
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// FindUsersByEmail retrieves users matching an exact email address.
func (s *UserService) FindUsersByEmail(ctx context.Context, email string) ([]*models.User, error) {
	return s.userStore.FindByEmail(ctx, email)
}

// IssueToken signs a bearer token for a mock account identified by email.
// Non-mock accounts are rejected; a real identity provider issues their
// tokens.
func (s *UserService) IssueToken(ctx context.Context, email string) (string, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if !user.IsMock {
		return "", apperrors.ErrNotMockAccount
	}

	return s.signer.Sign(user.ID)
}
