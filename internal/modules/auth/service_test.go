package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dancestudio/internal/database"
	"dancestudio/internal/domain"
	"dancestudio/internal/repository"
)

// Mock User Repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) DB() *gorm.DB {
	return &gorm.DB{}
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.OwnerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OwnerProfile), args.Error(1)
}

func (m *mockProfileRepo) Upsert(ctx context.Context, p *domain.OwnerProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type mockRefreshTokenRepo struct {
	mock.Mock
}

func (m *mockRefreshTokenRepo) Create(ctx context.Context, t *domain.RefreshToken) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockRefreshTokenRepo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefreshToken), args.Error(1)
}

func (m *mockRefreshTokenRepo) Revoke(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRefreshTokenRepo) RevokeByUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockRefreshTokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock JWT service
type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func newTestService(users UserRepositoryInterface, profiles ProfileRepositoryInterface, refresh RefreshTokenRepositoryInterface, jwt jwtService) *Service {
	return NewService(users, profiles, refresh, jwt, "test-pepper", 7*24*time.Hour)
}

func TestService_Login_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	profileRepo := new(mockProfileRepo)
	refreshRepo := new(mockRefreshTokenRepo)
	jwtSvc := new(mockJWTService)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	existingUser := &domain.User{
		ID:           10,
		Email:        "owner@example.com",
		PasswordHash: string(hashed),
	}

	userRepo.On("GetByEmail", mock.Anything, "owner@example.com").Return(existingUser, nil)
	jwtSvc.On("GenerateToken", int64(10)).Return("login-token", nil)
	refreshRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(userRepo, profileRepo, refreshRepo, jwtSvc)

	user, tokens, err := service.Login(context.Background(), LoginRequest{
		Email:    "owner@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "login-token", tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Empty(t, user.PasswordHash)

	userRepo.AssertExpectations(t)
	jwtSvc.AssertExpectations(t)
	refreshRepo.AssertExpectations(t)
}

func TestService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	profileRepo := new(mockProfileRepo)
	refreshRepo := new(mockRefreshTokenRepo)
	jwtSvc := new(mockJWTService)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	userRepo.On("GetByEmail", mock.Anything, "owner@example.com").Return(&domain.User{
		ID:           10,
		Email:        "owner@example.com",
		PasswordHash: string(hashed),
	}, nil)

	service := newTestService(userRepo, profileRepo, refreshRepo, jwtSvc)

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(userRepo, new(mockProfileRepo), new(mockRefreshTokenRepo), new(mockJWTService))

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Refresh_RotatesToken(t *testing.T) {
	userRepo := new(mockUserRepo)
	refreshRepo := new(mockRefreshTokenRepo)
	jwtSvc := new(mockJWTService)

	stored := &domain.RefreshToken{
		ID:        3,
		UserID:    10,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	refreshRepo.On("GetByHash", mock.Anything, mock.Anything).Return(stored, nil)
	refreshRepo.On("Revoke", mock.Anything, int64(3)).Return(nil)
	refreshRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwtSvc.On("GenerateToken", int64(10)).Return("rotated-token", nil)

	service := newTestService(userRepo, new(mockProfileRepo), refreshRepo, jwtSvc)

	tokens, err := service.Refresh(context.Background(), "raw-refresh")

	assert.NoError(t, err)
	assert.Equal(t, "rotated-token", tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	refreshRepo.AssertExpectations(t)
}

func TestService_Refresh_ExpiredToken(t *testing.T) {
	refreshRepo := new(mockRefreshTokenRepo)
	refreshRepo.On("GetByHash", mock.Anything, mock.Anything).Return(&domain.RefreshToken{
		ID:        3,
		UserID:    10,
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)

	service := newTestService(new(mockUserRepo), new(mockProfileRepo), refreshRepo, new(mockJWTService))

	_, err := service.Refresh(context.Background(), "raw-refresh")

	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestService_Logout_UnknownTokenIsNoop(t *testing.T) {
	refreshRepo := new(mockRefreshTokenRepo)
	refreshRepo.On("GetByHash", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(new(mockUserRepo), new(mockProfileRepo), refreshRepo, new(mockJWTService))

	assert.NoError(t, service.Logout(context.Background(), "gone"))
}

// Register runs inside a transaction, so it is exercised against a real
// in-memory database instead of mocks.
func TestService_Register_CreatesUserAndProfile(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	refreshRepo := repository.NewRefreshTokenRepository(db)
	jwtSvc := new(mockJWTService)
	jwtSvc.On("GenerateToken", mock.Anything).Return("fresh-token", nil)

	service := NewService(userRepo, profileRepo, refreshRepo, jwtSvc, "test-pepper", 7*24*time.Hour)

	req := RegisterRequest{
		Email:      "Owner@Example.com",
		Password:   "securepass123",
		FirstName:  "Maya",
		LastName:   "Lin",
		Address1:   "12 Main St",
		City:       "Austin",
		State:      "TX",
		ZipCode:    "78701",
		StudioName: "Maya's Dance Loft",
	}

	user, tokens, err := service.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, "fresh-token", tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	profile, err := profileRepo.GetByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maya's Dance Loft", profile.StudioName)

	// Same email again must fail before touching the database.
	_, _, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}
