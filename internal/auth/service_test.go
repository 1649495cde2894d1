package auth

import (
	"context"
	"testing"
	"time"

	"aerobook/internal/shared/config"
	"aerobook/internal/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func hashedPassword(t *testing.T, raw string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func enabledUser(t *testing.T) *users.User {
	return &users.User{
		ID:        3,
		FirstName: "Asha",
		LastName:  "Nair",
		Email:     "asha.nair@example.com",
		Password:  hashedPassword(t, "qwerty"),
		Role:      users.RoleCustomer,
		Enabled:   true,
	}
}

func TestRegister_CreatesCustomerWithTokens(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewService(mockRepo, testConfig())
	ctx := context.Background()

	mockRepo.On("ExistsByEmail", ctx, "new@example.com").Return(false, nil).Once()

	var created *users.User
	mockRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*users.User)
		created.ID = 9
	}).Return(nil).Once()

	resp, err := service.Register(ctx, &RegisterRequest{
		FirstName: "New",
		LastName:  "User",
		Email:     "new@example.com",
		Password:  "secret123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(900), resp.ExpiresIn)

	// Self-registration never grants admin, and the raw password never
	// reaches the store.
	assert.Equal(t, users.RoleCustomer, created.Role)
	assert.True(t, created.Enabled)
	assert.NotEqual(t, "secret123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))

	mockRepo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewService(mockRepo, testConfig())
	ctx := context.Background()

	mockRepo.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil).Once()

	resp, err := service.Register(ctx, &RegisterRequest{
		Email: "taken@example.com", Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Nil(t, resp)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestLogin_Success(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewService(mockRepo, testConfig())
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "asha.nair@example.com").Return(enabledUser(t), nil).Once()

	resp, err := service.Login(ctx, &LoginRequest{
		Email:    "asha.nair@example.com",
		Password: "qwerty",
	})

	assert.NoError(t, err)
	assert.Equal(t, "asha.nair@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.AccessToken)

	claims, err := service.ValidateToken(resp.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "3", claims.UserID)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, string(users.RoleCustomer), claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewService(mockRepo, testConfig())
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "asha.nair@example.com").Return(enabledUser(t), nil).Once()

	resp, err := service.Login(ctx, &LoginRequest{
		Email:    "asha.nair@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func TestLogin_UnknownEmailAndDisabledLookTheSame(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewService(mockRepo, testConfig())
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound).Once()

	_, err := service.Login(ctx, &LoginRequest{Email: "ghost@example.com", Password: "qwerty"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	disabled := enabledUser(t)
	disabled.Enabled = false
	mockRepo.On("GetByEmail", ctx, "asha.nair@example.com").Return(disabled, nil).Once()

	_, err = service.Login(ctx, &LoginRequest{Email: "asha.nair@example.com", Password: "qwerty"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewService(mockRepo, testConfig())
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "asha.nair@example.com").Return(enabledUser(t), nil).Once()
	mockRepo.On("GetByID", ctx, uint(3)).Return(enabledUser(t), nil).Once()

	loginResp, err := service.Login(ctx, &LoginRequest{
		Email:    "asha.nair@example.com",
		Password: "qwerty",
	})
	assert.NoError(t, err)

	pair, err := service.RefreshToken(ctx, loginResp.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewService(mockRepo, testConfig())
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "asha.nair@example.com").Return(enabledUser(t), nil).Once()

	loginResp, err := service.Login(ctx, &LoginRequest{
		Email:    "asha.nair@example.com",
		Password: "qwerty",
	})
	assert.NoError(t, err)

	// An access token must not be usable as a refresh token.
	_, err = service.RefreshToken(ctx, loginResp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	mockRepo.AssertNotCalled(t, "GetByID")
}

func TestValidateToken_RejectsTamperedToken(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewService(mockRepo, testConfig())

	other := NewService(mockRepo, &config.Config{
		JWT: config.JWTConfig{
			Secret:           "different-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	})

	ctx := context.Background()
	mockRepo.On("GetByEmail", ctx, "asha.nair@example.com").Return(enabledUser(t), nil).Once()

	resp, err := other.Login(ctx, &LoginRequest{
		Email:    "asha.nair@example.com",
		Password: "qwerty",
	})
	assert.NoError(t, err)

	_, err = service.ValidateToken(resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePassword_RequiresCurrentPassword(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewService(mockRepo, testConfig())
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, uint(3)).Return(enabledUser(t), nil).Once()

	err := service.ChangePassword(ctx, "3", &ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestChangePassword_Success(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewService(mockRepo, testConfig())
	ctx := context.Background()

	user := enabledUser(t)
	mockRepo.On("GetByID", ctx, uint(3)).Return(user, nil).Once()
	mockRepo.On("Update", ctx, user).Return(nil).Once()

	err := service.ChangePassword(ctx, "3", &ChangePasswordRequest{
		CurrentPassword: "qwerty",
		NewPassword:     "newsecret",
	})

	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("newsecret")))
}

func TestUpdateProfile_PatchesOnlyProvidedFields(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewService(mockRepo, testConfig())
	ctx := context.Background()

	user := enabledUser(t)
	user.City = "Mumbai"
	mockRepo.On("GetByID", ctx, uint(3)).Return(user, nil).Once()
	mockRepo.On("Update", ctx, user).Return(nil).Once()

	city := "Bengaluru"
	resp, err := service.UpdateProfile(ctx, "3", &UpdateProfileRequest{City: &city})

	assert.NoError(t, err)
	assert.Equal(t, "Bengaluru", resp.City)
	assert.Equal(t, "Asha", resp.FirstName)
}

func TestGetProfile_MalformedUserID(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewService(mockRepo, testConfig())

	_, err := service.GetProfile(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrUserNotFound)
	mockRepo.AssertNotCalled(t, "GetByID")
}
