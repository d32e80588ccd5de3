package services_test

import (
	"fmt"
	"testing"

	"shopgh/internal/models"
	"shopgh/internal/services"
	"shopgh/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of repositories.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Load() (models.Accounts, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Accounts), args.Error(1)
}

func (m *MockAccountRepository) Save(accounts models.Accounts) error {
	args := m.Called(accounts)
	return args.Error(0)
}

func testAccounts() models.Accounts {
	return models.Accounts{
		"admin": {Password: "admin123", Role: models.RoleAdmin},
		"kofi":  {Password: "hunter2", Role: models.RoleUser},
	}
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	sessions := session.NewManager()
	svc := services.NewAuthService(mockRepo, sessions, "test_jwt_secret")

	mockRepo.On("Load").Return(testAccounts(), nil).Once()

	sess, token, err := svc.Login("kofi", "hunter2")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "kofi", sess.User)
	assert.Equal(t, models.RoleUser, sess.Role)
	assert.Empty(t, sess.Cart)
	assert.NotNil(t, sess.Catalog)

	// The token resolves back to the same live session.
	resolved, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, sess.ID, resolved.ID)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	svc := services.NewAuthService(mockRepo, session.NewManager(), "test_jwt_secret")

	mockRepo.On("Load").Return(testAccounts(), nil).Once()

	sess, token, err := svc.Login("kofi", "wrong")

	assert.Nil(t, sess)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	svc := services.NewAuthService(mockRepo, session.NewManager(), "test_jwt_secret")

	mockRepo.On("Load").Return(testAccounts(), nil).Once()

	_, _, err := svc.Login("nobody", "whatever")

	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	svc := services.NewAuthService(mockRepo, session.NewManager(), "test_jwt_secret")

	mockRepo.On("Load").Return(testAccounts(), nil).Once()
	var saved models.Accounts
	mockRepo.On("Save", mock.AnythingOfType("models.Accounts")).Run(func(args mock.Arguments) {
		saved = args.Get(0).(models.Accounts)
	}).Return(nil).Once()

	err := svc.Register("ama", "secret99")

	assert.NoError(t, err)
	assert.Equal(t, models.Account{Password: "secret99", Role: models.RoleUser}, saved["ama"])
	// Existing accounts are carried through the whole-mapping save.
	assert.Contains(t, saved, "admin")
	assert.Contains(t, saved, "kofi")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	svc := services.NewAuthService(mockRepo, session.NewManager(), "test_jwt_secret")

	mockRepo.On("Load").Return(testAccounts(), nil).Once()

	err := svc.Register("kofi", "another")

	assert.ErrorIs(t, err, models.ErrDuplicateUsername)
	// The accounts mapping is left unchanged: no save happens.
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_SaveError(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	svc := services.NewAuthService(mockRepo, session.NewManager(), "test_jwt_secret")

	mockRepo.On("Load").Return(testAccounts(), nil).Once()
	mockRepo.On("Save", mock.AnythingOfType("models.Accounts")).Return(fmt.Errorf("disk full")).Once()

	err := svc.Register("ama", "secret99")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Logout(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	sessions := session.NewManager()
	svc := services.NewAuthService(mockRepo, sessions, "test_jwt_secret")

	mockRepo.On("Load").Return(testAccounts(), nil).Once()
	sess, token, err := svc.Login("kofi", "hunter2")
	assert.NoError(t, err)

	svc.Logout(sess.ID)

	// The token still parses but the session is gone.
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "session expired or logged out")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := services.NewAuthService(new(MockAccountRepository), session.NewManager(), "test_jwt_secret")

	_, err := svc.ValidateToken("not.a.token")

	assert.Error(t, err)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	sessions := session.NewManager()
	issuer := services.NewAuthService(mockRepo, sessions, "secret_a")
	verifier := services.NewAuthService(mockRepo, sessions, "secret_b")

	mockRepo.On("Load").Return(testAccounts(), nil).Once()
	_, token, err := issuer.Login("kofi", "hunter2")
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
