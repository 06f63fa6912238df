package app

import (
	"context"
	"strings"
	"time"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/account"
	"unijoblink/internal/domain/analytics"
	"unijoblink/internal/domain/auth"
	"unijoblink/internal/domain/profile"
	"unijoblink/internal/security"
)

type AuthService struct {
	accounts      account.Repository
	registrar     account.Registrar
	refreshTokens auth.RefreshTokenRepository
	analytics     analytics.Repository
	jwtProvider   *security.JWTProvider
	logger        Logger
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(accounts account.Repository, registrar account.Registrar, refreshTokens auth.RefreshTokenRepository, analytics analytics.Repository, jwtProvider *security.JWTProvider, logger Logger, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		accounts:      accounts,
		registrar:     registrar,
		refreshTokens: refreshTokens,
		analytics:     analytics,
		jwtProvider:   jwtProvider,
		logger:        logger,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     account.Role
	// student
	UniversityID common.UUID
	Major        string
	BatchYear    int
	Skills       []string
	// company
	Location string
	Website  string
	// university
	Address string
	// teacher
	Department string
}

// Register creates a pending account together with its role profile. Admin
// accounts cannot self-register.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*account.Account, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}
	if input.Role == account.RoleAdmin {
		return nil, common.NewError(common.CodeForbidden, "admin accounts cannot self-register", nil)
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, common.NewError(common.CodeConflict, "email already registered", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	acc := account.Account{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         input.Role,
		Status:       account.StatusPending,
	}
	created, err := s.registrar.CreateWithProfile(ctx, acc, profileFor(input))
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "auth.registered", AccountID: &created.ID, Payload: analyticsPayload(ctx, map[string]string{"role": string(created.Role)})})
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*auth.TokenPair, *account.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, nil, common.NewValidationError("email and password are required", map[string]string{"email": "required", "password": "required"})
	}
	acc, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
		}
		return nil, nil, err
	}
	if err := security.VerifyPassword(acc.PasswordHash, password); err != nil {
		return nil, nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
	}
	if acc.Status == account.StatusDeclined {
		return nil, nil, common.NewError(common.CodeForbidden, "account was declined", nil)
	}
	pair, err := s.issueTokens(ctx, acc)
	if err != nil {
		return nil, nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "auth.logged_in", AccountID: &acc.ID, Payload: analyticsPayload(ctx, nil)})
	return pair, acc, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, common.NewValidationError("refresh_token is required", map[string]string{"refresh_token": "required"})
	}
	stored, err := s.refreshTokens.GetByToken(ctx, refreshToken)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "invalid refresh token", nil)
		}
		return nil, err
	}
	now := time.Now().UTC()
	if stored.RevokedAt != nil || now.After(stored.ExpiresAt) {
		return nil, common.NewError(common.CodeUnauthorized, "refresh token expired", nil)
	}
	acc, err := s.accounts.GetByID(ctx, stored.AccountID)
	if err != nil {
		return nil, err
	}
	if acc.Status == account.StatusDeclined {
		return nil, common.NewError(common.CodeForbidden, "account was declined", nil)
	}
	if err := s.refreshTokens.Revoke(ctx, refreshToken, now.Unix()); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, acc)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return common.NewValidationError("refresh_token is required", map[string]string{"refresh_token": "required"})
	}
	return s.refreshTokens.Revoke(ctx, refreshToken, time.Now().UTC().Unix())
}

func (s *AuthService) issueTokens(ctx context.Context, acc *account.Account) (*auth.TokenPair, error) {
	access, expiresAt, err := s.jwtProvider.Generate(acc.ID, string(acc.Role), s.accessTTL)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to sign token", err)
	}
	refresh := common.NewUUID().String() + common.NewUUID().String()
	if err := s.refreshTokens.Store(ctx, auth.RefreshToken{
		AccountID: acc.ID,
		Token:     refresh,
		ExpiresAt: time.Now().UTC().Add(s.refreshTTL),
	}); err != nil {
		return nil, err
	}
	return &auth.TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt}, nil
}

func validateRegisterInput(input RegisterInput) error {
	fields := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		fields["name"] = "name is required"
	}
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		fields["email"] = "a valid email is required"
	}
	if len(input.Password) < 8 {
		fields["password"] = "password must be at least 8 characters"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid registration", fields)
	}
	return nil
}

func profileFor(input RegisterInput) profile.RoleProfile {
	switch input.Role {
	case account.RoleStudent:
		return profile.StudentProfile{UniversityID: input.UniversityID, Major: input.Major, BatchYear: input.BatchYear, Skills: input.Skills}
	case account.RoleCompany:
		return profile.CompanyProfile{Location: input.Location, Website: input.Website}
	case account.RoleUniversity:
		return profile.UniversityProfile{Address: input.Address}
	case account.RoleTeacher:
		return profile.TeacherProfile{UniversityID: input.UniversityID, Department: input.Department}
	default:
		return nil
	}
}
