package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dancestudio/internal/domain"
)

type jwtService interface {
	GenerateToken(userID int64) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	users      UserRepositoryInterface
	profiles   ProfileRepositoryInterface
	refresh    RefreshTokenRepositoryInterface
	jwt        jwtService
	pepper     string
	refreshTTL time.Duration
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func NewService(
	users UserRepositoryInterface,
	profiles ProfileRepositoryInterface,
	refresh RefreshTokenRepositoryInterface,
	jwt jwtService,
	pepper string,
	refreshTTL time.Duration,
) *Service {
	return &Service{
		users:      users,
		profiles:   profiles,
		refresh:    refresh,
		jwt:        jwt,
		pepper:     pepper,
		refreshTTL: refreshTTL,
	}
}

// Register creates the owner account and its profile in one
// transaction, then signs the first session in.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, *TokenPair, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashedPassword,
	}

	err = s.users.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := &domain.OwnerProfile{
			UserID:     user.ID,
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Address1:   req.Address1,
			Address2:   req.Address2,
			City:       req.City,
			State:      req.State,
			ZipCode:    req.ZipCode,
			StudioName: req.StudioName,
			Website:    req.Website,
			Facebook:   req.Facebook,
			Instagram:  req.Instagram,
			TikTok:     req.TikTok,
		}
		return tx.Create(profile).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, nil, ErrEmailAlreadyExists
		}
		return nil, nil, err
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	user.PasswordHash = ""
	return user, tokens, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, *TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	user.PasswordHash = ""
	return user, tokens, nil
}

// Refresh rotates the refresh token: the presented token is revoked and
// a new pair is issued. A revoked or expired token yields
// ErrInvalidRefreshToken.
func (s *Service) Refresh(ctx context.Context, refreshRaw string) (*TokenPair, error) {
	hash := hashTokenWithPepper(refreshRaw, s.pepper)

	current, err := s.refresh.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if !current.Usable(time.Now()) {
		return nil, ErrInvalidRefreshToken
	}

	if err := s.refresh.Revoke(ctx, current.ID); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, current.UserID)
}

func (s *Service) Logout(ctx context.Context, refreshRaw string) error {
	hash := hashTokenWithPepper(refreshRaw, s.pepper)

	token, err := s.refresh.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return s.refresh.Revoke(ctx, token.ID)
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) issueTokens(ctx context.Context, userID int64) (*TokenPair, error) {
	accessToken, err := s.jwt.GenerateToken(userID)
	if err != nil {
		return nil, err
	}

	raw, hash, err := generateOpaqueRefreshToken(s.pepper)
	if err != nil {
		return nil, err
	}

	if err := s.refresh.Create(ctx, &domain.RefreshToken{
		UserID:    userID,
		TokenHash: hash,
		JTI:       uuid.NewString(),
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: raw}, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func generateOpaqueRefreshToken(pepper string) (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	hash = hashTokenWithPepper(raw, pepper)
	return raw, hash, nil
}

func hashTokenWithPepper(raw, pepper string) string {
	sum := sha256.Sum256([]byte(raw + pepper))
	return hex.EncodeToString(sum[:])
}

// isUniqueViolation catches the race where two registrations pass the
// ExistsByEmail check; Postgres reports 23505, SQLite surfaces a
// constraint message.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
