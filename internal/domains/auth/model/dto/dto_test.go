package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inspirehub/infras/jwt"
	"inspirehub/internal/domains/auth/model/dto"
	"inspirehub/shared/constant"
	"inspirehub/shared/timezone"
)

func TestRegisterRequest_ToMemberModel(t *testing.T) {
	req := dto.RegisterRequest{
		Email:    "jordan@example.com",
		Password: "plain-password",
		FullName: "Jordan Example",
		Company:  stringPtr("Acme"),
		Phone:    stringPtr("+6281234567890"),
	}

	member := req.ToMemberModel(constant.ContextGuest, "hashed-password")

	assert.NotEmpty(t, member.ID)
	assert.Equal(t, req.Email, member.Email)
	assert.Equal(t, "hashed-password", member.Password)
	assert.Equal(t, constant.RoleMember, member.Level)
	assert.Equal(t, req.FullName, member.FullName)
	assert.Equal(t, "Acme", *member.Company)
	assert.False(t, member.Verified)
	assert.True(t, member.Active)
	assert.Equal(t, constant.ContextGuest, member.CreatedBy)
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestUpdateLastLoginRequest(t *testing.T) {
	now := timezone.Now()

	req := dto.UpdateLastLoginRequest{
		LastLogin: now,
	}

	assert.Equal(t, now, req.LastLogin)
}

func TestUpdatePasswordRequest(t *testing.T) {
	hashedPassword := "hashed-new-password"

	req := dto.UpdatePasswordRequest{
		Password: hashedPassword,
	}

	assert.Equal(t, hashedPassword, req.Password)
}

// Helper function to create string pointer
func stringPtr(s string) *string {
	return &s
}
