package services_test

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"naijamart/internal/models"
	"naijamart/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockAdminRepository is a mock implementation of repositories.AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(admin *models.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByEmail(email string) (*models.Admin, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByID(id string) (*models.Admin, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_RegisterOwner(t *testing.T) {
	mockRepo := new(MockAdminRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Test successful registration with payout details
	admin := &models.Admin{
		BusinessName:  "Lagos Gadgets",
		Email:         "owner@lagosgadgets.ng",
		Phone:         "08031234567",
		Password:      "password123",
		BankName:      "Access Bank",
		BankCode:      "044",
		AccountNumber: "0123456789",
		AccountName:   "Lagos Gadgets Ltd",
	}

	mockRepo.On("GetByEmail", admin.Email).Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Admin")).Return(nil).Once()

	err := authService.RegisterOwner(admin)
	assert.NoError(t, err)
	// The stored password must be a bcrypt hash, not the plaintext.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Test email already registered
	mockRepo.On("GetByEmail", admin.Email).Return(&models.Admin{ID: "1"}, nil).Once()
	err = authService.RegisterOwner(admin)
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	assert.Contains(t, err.Error(), "owner@lagosgadgets.ng")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockAdminRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	admin := &models.Admin{
		ID:           "admin-123",
		BusinessName: "Lagos Gadgets",
		Email:        "owner@lagosgadgets.ng",
		Password:     string(hashedPassword),
	}

	// Test successful login
	mockRepo.On("GetByEmail", admin.Email).Return(admin, nil).Once()
	token, err := authService.Login(admin.Email, "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validate the token structure
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, admin.ID, claims["admin_id"])
	assert.Equal(t, admin.BusinessName, claims["business_name"])
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (wrong password)
	mockRepo.On("GetByEmail", admin.Email).Return(admin, nil).Once()
	_, err = authService.Login(admin.Email, "wrongpassword")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (account not found)
	mockRepo.On("GetByEmail", "missing@example.com").Return(nil, fmt.Errorf("admin with email missing@example.com: not found")).Once()
	_, err = authService.Login("missing@example.com", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials") // Should return generic invalid credentials message
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockAdminRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Generate a valid token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id":      "admin-123",
		"business_name": "Lagos Gadgets",
		"exp":           jwt.TimeFunc().Add(time.Hour).Unix(), // Expires in 1 hour
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	// Test valid token
	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "admin-123", claims["admin_id"])
	assert.Equal(t, "Lagos Gadgets", claims["business_name"])

	// Test malformed token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Test expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id":      "admin-123",
		"business_name": "Lagos Gadgets",
		"exp":           jwt.TimeFunc().Add(-time.Hour).Unix(), // Expired 1 hour ago
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}
