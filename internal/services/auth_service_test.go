package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"photofolio_backend/internal/auth"
	"photofolio_backend/internal/models"
	"photofolio_backend/internal/services/dto"
	"photofolio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T, profiles ...*models.Profile) (AuthService, *fakeProfileRepo, *fakeTokenRepo, *fakeMailer) {
	t.Helper()
	profileRepo := newFakeProfileRepo(profiles...)
	tokenRepo := newFakeTokenRepo()
	mailer := &fakeMailer{}
	tokens := auth.NewTokenService("test-secret", 15*time.Minute)
	svc := NewAuthService(profileRepo, tokenRepo, tokens, mailer, "https://example.com/reset")
	return svc, profileRepo, tokenRepo, mailer
}

func activeProfile(t *testing.T, id, emailAddr, password string, role models.UserRole) *models.Profile {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	p := &models.Profile{
		Email:        emailAddr,
		PasswordHash: hash,
		Name:         "Test User",
		Role:         role,
		Status:       models.StatusActive,
	}
	p.ID = id
	return p
}

func TestRegisterIssuesTokensAndDefaultsViewer(t *testing.T) {
	svc, profileRepo, tokenRepo, _ := newAuthFixture(t)

	resp, err := svc.Register(context.Background(), nil, &dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "longenough",
		Name:     "New User",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, models.RoleViewer, resp.User.Role)
	assert.Equal(t, models.StatusActive, resp.User.Status)

	stored, err := profileRepo.FindByEmail(nil, "new@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "longenough", stored.PasswordHash)

	_, err = tokenRepo.FindRefreshToken(nil, resp.RefreshToken)
	assert.NoError(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	existing := activeProfile(t, "u1", "taken@example.com", "password1", models.RoleViewer)
	svc, _, _, _ := newAuthFixture(t, existing)

	_, err := svc.Register(context.Background(), nil, &dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "longenough",
		Name:     "Someone",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, profileRepo, _, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), nil, &dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "short",
		Name:     "New User",
	})
	require.Error(t, err)
	assert.Zero(t, profileRepo.calls)
}

func TestLoginSucceedsAndUpdatesLastLogin(t *testing.T) {
	existing := activeProfile(t, "u1", "user@example.com", "password1", models.RoleViewer)
	svc, profileRepo, _, _ := newAuthFixture(t, existing)

	resp, err := svc.Login(context.Background(), nil, &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	stored, err := profileRepo.FindByID(nil, "u1")
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	existing := activeProfile(t, "u1", "user@example.com", "password1", models.RoleViewer)
	svc, _, _, _ := newAuthFixture(t, existing)

	_, err := svc.Login(context.Background(), nil, &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "wrongpass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmailWithSameError(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), nil, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password1",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginRejectsSuspendedAccount(t *testing.T) {
	existing := activeProfile(t, "u1", "user@example.com", "password1", models.RoleViewer)
	existing.Status = models.StatusSuspended
	svc, _, _, _ := newAuthFixture(t, existing)

	_, err := svc.Login(context.Background(), nil, &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password1",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountSuspended)
}

func TestRefreshRotatesToken(t *testing.T) {
	existing := activeProfile(t, "u1", "user@example.com", "password1", models.RoleViewer)
	svc, _, tokenRepo, _ := newAuthFixture(t, existing)

	first, err := svc.Login(context.Background(), nil, &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	second, err := svc.Refresh(context.Background(), nil, &dto.RefreshTokenRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The presented token is consumed.
	_, err = tokenRepo.FindRefreshToken(nil, first.RefreshToken)
	assert.Error(t, err)

	_, err = svc.Refresh(context.Background(), nil, &dto.RefreshTokenRequest{RefreshToken: first.RefreshToken})
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	existing := activeProfile(t, "u1", "user@example.com", "password1", models.RoleViewer)
	svc, _, tokenRepo, _ := newAuthFixture(t, existing)

	require.NoError(t, tokenRepo.CreateRefreshToken(nil, &models.RefreshToken{
		UserID:    "u1",
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}))

	_, err := svc.Refresh(context.Background(), nil, &dto.RefreshTokenRequest{RefreshToken: "expired-token"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefreshRejectsSuspendedAccount(t *testing.T) {
	existing := activeProfile(t, "u1", "user@example.com", "password1", models.RoleViewer)
	svc, profileRepo, tokenRepo, _ := newAuthFixture(t, existing)

	require.NoError(t, tokenRepo.CreateRefreshToken(nil, &models.RefreshToken{
		UserID:    "u1",
		Token:     "live-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	profileRepo.profiles["u1"].Status = models.StatusSuspended

	_, err := svc.Refresh(context.Background(), nil, &dto.RefreshTokenRequest{RefreshToken: "live-token"})
	assert.ErrorIs(t, err, apperrors.ErrAccountSuspended)
}

func TestLogoutDeletesRefreshToken(t *testing.T) {
	existing := activeProfile(t, "u1", "user@example.com", "password1", models.RoleViewer)
	svc, _, tokenRepo, _ := newAuthFixture(t, existing)

	resp, err := svc.Login(context.Background(), nil, &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), nil, &dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = tokenRepo.FindRefreshToken(nil, resp.RefreshToken)
	assert.Error(t, err)
}

func TestRequestPasswordResetSendsEmail(t *testing.T) {
	existing := activeProfile(t, "u1", "user@example.com", "password1", models.RoleViewer)
	svc, _, tokenRepo, mailer := newAuthFixture(t, existing)

	err := svc.RequestPasswordReset(context.Background(), nil, &dto.PasswordResetRequest{Email: "user@example.com"})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "user@example.com", mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].HTML, "https://example.com/reset?token=")

	assert.Len(t, tokenRepo.reset, 1)
}

func TestRequestPasswordResetSilentOnUnknownEmail(t *testing.T) {
	svc, _, tokenRepo, mailer := newAuthFixture(t)

	err := svc.RequestPasswordReset(context.Background(), nil, &dto.PasswordResetRequest{Email: "nobody@example.com"})
	assert.NoError(t, err)
	assert.Empty(t, mailer.sent)
	assert.Empty(t, tokenRepo.reset)
}

func TestResetPasswordConsumesTokenAndRevokesSessions(t *testing.T) {
	existing := activeProfile(t, "u1", "user@example.com", "password1", models.RoleViewer)
	svc, profileRepo, tokenRepo, mailer := newAuthFixture(t, existing)

	// Existing session that must be revoked.
	_, err := svc.Login(context.Background(), nil, &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), nil, &dto.PasswordResetRequest{Email: "user@example.com"}))
	require.Len(t, mailer.sent, 1)

	var token string
	for k := range tokenRepo.reset {
		token = k
	}
	start := strings.Index(mailer.sent[0].HTML, "token=")
	require.GreaterOrEqual(t, start, 0)
	assert.Contains(t, mailer.sent[0].HTML, token)

	require.NoError(t, svc.ResetPassword(context.Background(), nil, &dto.PasswordResetConfirm{
		Token:       token,
		NewPassword: "brandnewpass",
	}))

	assert.True(t, auth.CheckPasswordHash("brandnewpass", profileRepo.profiles["u1"].PasswordHash))
	assert.Empty(t, tokenRepo.refresh, "all refresh tokens revoked")

	// Single use.
	err = svc.ResetPassword(context.Background(), nil, &dto.PasswordResetConfirm{
		Token:       token,
		NewPassword: "anotherpass1",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	existing := activeProfile(t, "u1", "user@example.com", "password1", models.RoleViewer)
	svc, _, tokenRepo, _ := newAuthFixture(t, existing)

	require.NoError(t, tokenRepo.CreateResetToken(nil, &models.PasswordResetToken{
		UserID:    "u1",
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	err := svc.ResetPassword(context.Background(), nil, &dto.PasswordResetConfirm{
		Token:       "stale",
		NewPassword: "brandnewpass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	actor := activeProfile(t, "u1", "user@example.com", "password1", models.RoleViewer)
	svc, profileRepo, _, _ := newAuthFixture(t, actor)

	err := svc.ChangePassword(context.Background(), nil, actor, &dto.ChangePasswordRequest{
		CurrentPassword: "wrongpass",
		NewPassword:     "brandnewpass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(context.Background(), nil, actor, &dto.ChangePasswordRequest{
		CurrentPassword: "password1",
		NewPassword:     "brandnewpass",
	}))
	assert.True(t, auth.CheckPasswordHash("brandnewpass", profileRepo.profiles["u1"].PasswordHash))
}

func TestChangePasswordRequiresAuthentication(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	err := svc.ChangePassword(context.Background(), nil, nil, &dto.ChangePasswordRequest{
		CurrentPassword: "password1",
		NewPassword:     "brandnewpass",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestUpdateProfileTouchesOnlySelfServiceFields(t *testing.T) {
	actor := activeProfile(t, "u1", "user@example.com", "password1", models.RoleViewer)
	svc, _, _, _ := newAuthFixture(t, actor)

	name := "Renamed"
	resp, err := svc.UpdateProfile(context.Background(), nil, actor, &dto.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", resp.Name)
	assert.Equal(t, models.RoleViewer, resp.Role)
}

func TestResolveTokenRoundTrip(t *testing.T) {
	existing := activeProfile(t, "u1", "user@example.com", "password1", models.RoleViewer)
	svc, _, _, _ := newAuthFixture(t, existing)

	resp, err := svc.Login(context.Background(), nil, &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	profile, err := svc.ResolveToken(context.Background(), nil, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.ID)
}

func TestResolveTokenRejectsGarbage(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.ResolveToken(context.Background(), nil, "not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestResolveTokenRejectsSuspendedProfile(t *testing.T) {
	existing := activeProfile(t, "u1", "user@example.com", "password1", models.RoleViewer)
	svc, profileRepo, _, _ := newAuthFixture(t, existing)

	resp, err := svc.Login(context.Background(), nil, &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	profileRepo.profiles["u1"].Status = models.StatusSuspended

	_, err = svc.ResolveToken(context.Background(), nil, resp.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrAccountSuspended)
}

func TestEnsureAdminSeedsOnlyEmptyTable(t *testing.T) {
	svc, profileRepo, _, _ := newAuthFixture(t)

	require.NoError(t, svc.EnsureAdmin(context.Background(), nil, "admin@example.com", "rootpassword"))

	seeded, err := profileRepo.FindByEmail(nil, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, seeded.Role)

	// A populated table is left alone.
	require.NoError(t, svc.EnsureAdmin(context.Background(), nil, "other@example.com", "rootpassword"))
	_, err = profileRepo.FindByEmail(nil, "other@example.com")
	assert.Error(t, err)
}

func TestEnsureAdminSkipsWhenUnconfigured(t *testing.T) {
	svc, profileRepo, _, _ := newAuthFixture(t)

	require.NoError(t, svc.EnsureAdmin(context.Background(), nil, "", ""))
	count, err := profileRepo.Count(nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}
