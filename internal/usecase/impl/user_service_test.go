package impl

import (
	"context"
	"testing"

	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"
	"bizvistar/internal/domain/repository"
	mockRepo "bizvistar/internal/mocks/repository"
	mockSvc "bizvistar/internal/mocks/service"
	"bizvistar/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userFixtures holds all test dependencies for user service tests.
type userFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return userFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret-pass").Return("$2a$12$hash", nil)

	var created *entity.User
	fx.userRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(ctx context.Context, user *entity.User) {
			created = user
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Priya",
		Email:    "  Priya@Example.COM ",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "priya@example.com", created.Email)
	assert.Equal(t, "$2a$12$hash", created.PasswordHash)
	assert.Equal(t, created, output.User)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret-pass").Return("$2a$12$hash", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrEmailTaken)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "s3cret-pass",
	})

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, output)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "priya@example.com", PasswordHash: "$2a$12$hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "priya@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("s3cret-pass", "$2a$12$hash").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID).Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "priya@example.com", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "priya@example.com", PasswordHash: "$2a$12$hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "priya@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "$2a$12$hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "priya@example.com", Password: "wrong"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Refresh_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "priya@example.com"}
	token := &jwt.Token{Claims: jwt.RegisteredClaims{Subject: user.ID.String()}}

	fx.tokenService.EXPECT().ValidateToken("refresh-token", "refresh-secret").Return(token, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID).Return("new-access", "new-refresh", nil)

	output, err := fx.service.Refresh(ctx, "refresh-token")

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().ValidateToken("garbage", "refresh-secret").Return(nil, assert.AnError)

	output, err := fx.service.Refresh(context.Background(), "garbage")

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}
