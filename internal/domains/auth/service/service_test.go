package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inspirehub/config"
	"inspirehub/infras/jwt"
	jwtMocks "inspirehub/infras/jwt/mocks"
	"inspirehub/infras/otel/mocks"
	"inspirehub/internal/domains/auth/model/dto"
	"inspirehub/internal/domains/auth/service"
	memberMocks "inspirehub/internal/domains/member/mocks"
	memberModel "inspirehub/internal/domains/member/model"
	"inspirehub/shared/constant"
	"inspirehub/shared/password"
)

func newService(t *testing.T) (service.Auth, *memberMocks.MockMember, *jwtMocks.MockJWT) {
	ctrl := gomock.NewController(t)

	mockRepo := memberMocks.NewMockMember(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	return service.New(mockRepo, &config.Config{}, mocks.NewOtel(), mockJWT), mockRepo, mockJWT
}

func storedMember(t *testing.T, plainPassword string) memberModel.Member {
	t.Helper()

	hashed, err := password.Hash(plainPassword)
	assert.NoError(t, err)

	return memberModel.Member{
		ID:       "member-1",
		Email:    "jordan@example.com",
		Password: hashed,
		Level:    constant.RoleMember,
		FullName: "Jordan Example",
		Active:   true,
	}
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		Email:    "jordan@example.com",
		Password: "secret-password",
		FullName: "Jordan Example",
	}

	t.Run("successful registration", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, member memberModel.Member) error {
				assert.Equal(t, req.Email, member.Email)
				assert.Equal(t, constant.RoleMember, member.Level)
				assert.NotEqual(t, req.Password, member.Password)

				return nil
			})

		err := svc.Register(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Register(context.Background(), req)

		assert.EqualError(t, err, "email already registered")
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, errors.New("db error"))

		err := svc.Register(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	req := dto.LoginRequest{
		Email:    "jordan@example.com",
		Password: "secret-password",
	}

	tokenPair := &jwt.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	t.Run("successful login", func(t *testing.T) {
		svc, mockRepo, mockJWT := newService(t)

		member := storedMember(t, req.Password)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(member, nil)
		mockJWT.EXPECT().
			GenerateTokenPair(member.ID, member.Email, member.Level).
			Return(tokenPair, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Login(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, "refresh", res.RefreshToken)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(memberModel.Member{}, nil)

		_, err := svc.Login(context.Background(), req)

		assert.EqualError(t, err, "invalid email or password")
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedMember(t, "a-different-password"), nil)

		_, err := svc.Login(context.Background(), req)

		assert.EqualError(t, err, "invalid email or password")
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		member := storedMember(t, req.Password)
		member.Active = false

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(member, nil)

		_, err := svc.Login(context.Background(), req)

		assert.EqualError(t, err, "member account is deactivated")
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("successful refresh", func(t *testing.T) {
		svc, _, mockJWT := newService(t)

		mockJWT.EXPECT().
			RefreshTokens(gomock.Any(), "refresh").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		svc, _, mockJWT := newService(t)

		mockJWT.EXPECT().
			RefreshTokens(gomock.Any(), "expired").
			Return(nil, jwt.ErrExpiredToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "expired"})

		assert.EqualError(t, err, "invalid refresh token")
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	req := dto.ChangePasswordRequest{
		CurrentPassword: "secret-password",
		NewPassword:     "another-password",
	}

	t.Run("successful change", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedMember(t, req.CurrentPassword), nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.ChangePassword(context.Background(), req, "member-1")

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedMember(t, "a-different-password"), nil)

		err := svc.ChangePassword(context.Background(), req, "member-1")

		assert.EqualError(t, err, "current password is incorrect")
	})

	t.Run("member not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(memberModel.Member{}, nil)

		err := svc.ChangePassword(context.Background(), req, "missing")

		assert.EqualError(t, err, "member not found")
	})
}
