package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"harvesthub/logger"
	"harvesthub/model"
	"harvesthub/repository"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles password hashing and access token issuing for farmers.
type AuthService struct {
	repo       repository.IFarmerRepository
	jwtKey     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

// NewAuthService creates an AuthService signing tokens with secret. repo may be nil when
// only hashing and token helpers are needed.
func NewAuthService(repo repository.IFarmerRepository, secret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{
		repo:       repo,
		jwtKey:     []byte(secret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken issues a signed access token for farmer.
func (s *AuthService) GenerateToken(farmer *model.Farmer) (string, error) {
	now := time.Now()
	claims := &model.AppClaims{
		FarmerID: farmer.ID,
		Role:     string(farmer.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(farmer.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		logger.Log.WithError(err).WithField("farmer_id", farmer.ID).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}
	return tokenString, nil
}

// ParseToken verifies tokenString and returns the session it grants.
func (s *AuthService) ParseToken(tokenString string) (model.Session, error) {
	claims := &model.AppClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return model.Session{}, ErrInvalidToken
	}
	return model.Session{FarmerID: claims.FarmerID, Role: model.Role(claims.Role)}, nil
}

// Login checks the credentials and returns a token response for the farmer.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	farmer, err := s.repo.GetFarmerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.CheckPasswordHash(password, farmer.PasswordHash) {
		logger.Log.WithField("farmer_id", farmer.ID).Warn("Login attempt with wrong password")
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(farmer)
	if err != nil {
		return nil, err
	}
	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}
