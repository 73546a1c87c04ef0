package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"novelverse/internal/config"
	"novelverse/internal/microservices/http-api/models"
	"novelverse/internal/middleware/auth"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestRegister_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

	mockUserRepo.On("FindByUsername", "testuser").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByEmail", "test@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register("Test User", "testuser", "test@example.com", "password123")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "testuser", user.Username)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, auth.VerifyPassword(user.Password, "password123"))
	mockUserRepo.AssertExpectations(t)
}

func TestRegister_UsernameExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

	existing := &models.User{ID: "user-1", Username: "testuser"}
	mockUserRepo.On("FindByUsername", "testuser").Return(existing, nil)

	user, err := svc.Register("Test User", "testuser", "test@example.com", "password123")

	assert.Nil(t, user)
	assert.Equal(t, ErrNameInUse, err)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_EmailExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

	existing := &models.User{ID: "user-1", Email: "test@example.com"}
	mockUserRepo.On("FindByUsername", "testuser").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByEmail", "test@example.com").Return(existing, nil)

	user, err := svc.Register("Test User", "testuser", "test@example.com", "password123")

	assert.Nil(t, user)
	assert.Equal(t, ErrEmailInUse, err)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

	hashed, err := auth.HashPassword("password123")
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Username: "testuser", Password: hashed}

	mockUserRepo.On("FindByUsername", "testuser").Return(user, nil)
	mockTokenRepo.On("Create", mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	access, refresh, got, err := svc.Login("testuser", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "user-1", got.ID)

	claims, err := svc.ValidateToken(access)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	mockTokenRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

	hashed, err := auth.HashPassword("password123")
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Username: "testuser", Password: hashed}

	mockUserRepo.On("FindByUsername", "testuser").Return(user, nil)

	access, refresh, got, err := svc.Login("testuser", "wrongpassword")

	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Empty(t, access)
	assert.Empty(t, refresh)
	assert.Nil(t, got)
	mockTokenRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_UserNotFound(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

	mockUserRepo.On("FindByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, _, _, err := svc.Login("ghost", "password123")

	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestRefreshAccessToken_Expired(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

	stored := &models.RefreshToken{
		ID:        "token-1",
		UserID:    "user-1",
		Token:     "refresh-value",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	mockTokenRepo.On("FindByToken", "refresh-value").Return(stored, nil)
	mockTokenRepo.On("Delete", "token-1").Return(nil)

	access, err := svc.RefreshAccessToken("refresh-value")

	assert.Equal(t, ErrExpiredToken, err)
	assert.Empty(t, access)
	mockTokenRepo.AssertExpectations(t)
}

func TestRefreshAccessToken_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

	stored := &models.RefreshToken{
		ID:        "token-1",
		UserID:    "user-1",
		Token:     "refresh-value",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	user := &models.User{ID: "user-1", Username: "testuser"}

	mockTokenRepo.On("FindByToken", "refresh-value").Return(stored, nil)
	mockUserRepo.On("FindByID", "user-1").Return(user, nil)

	access, err := svc.RefreshAccessToken("refresh-value")

	assert.NoError(t, err)
	claims, err := svc.ValidateToken(access)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestLogout_UnknownTokenIsQuiet(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

	mockTokenRepo.On("FindByToken", "unknown").Return(nil, gorm.ErrRecordNotFound)

	assert.NoError(t, svc.Logout("unknown"))
	mockTokenRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestValidateToken_Garbage(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

	claims, err := svc.ValidateToken("not-a-token")

	assert.Nil(t, claims)
	assert.Equal(t, ErrInvalidToken, err)
}
