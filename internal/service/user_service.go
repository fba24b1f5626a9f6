package service

import (
	"context"
	"errors"
	"log"
	"os"

	"hrportal/internal/model"
	"hrportal/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// DTOs for Request validation
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
	Division string `json:"division"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// UserService defines the interface for business logic related to User
type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (model.ViewerIdentity, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	// Me resolves the authoritative viewer identity from the database, not
	// from token claims.
	Me(ctx context.Context, userID string) (model.ViewerIdentity, error)
}

type userService struct {
	repo  repository.UserRepository
	audit repository.AuditRepository
}

// NewUserService returns a new instance of UserService
func NewUserService(repo repository.UserRepository, audit repository.AuditRepository) UserService {
	return &userService{repo: repo, audit: audit}
}

// Helper: check if role is allowed
func validateRole(role string) bool {
	return role == model.RoleStaff || role == model.RoleDivHead || role == model.RoleAdmin
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (model.ViewerIdentity, error) {
	if !validateRole(req.Role) {
		return model.ViewerIdentity{}, errors.New("invalid role: must be staff, div_head, or admin")
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return model.ViewerIdentity{}, errors.New("email already exists")
	}

	// Hash password automatically
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.ViewerIdentity{}, errors.New("failed to hash password")
	}

	division := req.Division
	if division == "" {
		division = model.DivisionGeneral
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     req.Role,
		Division: division,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return model.ViewerIdentity{}, err
	}

	entry := model.AuditLog{
		UserID:     &user.ID,
		Action:     model.ActionRegisterUser,
		EntityName: user.Name,
		Details:    `{"role":"` + user.Role + `"}`,
	}
	if err := s.audit.Log(ctx, &entry); err != nil {
		log.Printf("failed to audit registration of %s: %v", user.Email, err)
	}

	return user.Viewer(), nil
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	// Generate JWT Token. Role and division ride along so the middleware
	// can build the viewer identity without a lookup per request.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID.String(),
		"name":     user.Name,
		"email":    user.Email,
		"role":     user.Role,
		"division": user.Division,
	})

	// Use same fallback strategy as middleware for simplicity here or get from env centrally
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_super_secret_key"
	}

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &TokenResponse{Token: tokenString}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (model.ViewerIdentity, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return model.ViewerIdentity{}, errors.New("user not found")
	}
	return user.Viewer(), nil
}
