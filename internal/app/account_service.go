package app

import (
	"context"
	"strings"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/account"
	"unijoblink/internal/domain/analytics"
	"unijoblink/internal/domain/profile"
	"unijoblink/internal/security"
)

// Principal is the authenticated actor, resolved from the access token and
// passed explicitly into every service call.
type Principal struct {
	AccountID common.UUID
	Role      account.Role
}

type AccountService struct {
	accounts  account.Repository
	registrar account.Registrar
	students  profile.StudentRepository
	teachers  profile.TeacherRepository
	companies profile.CompanyRepository
	analytics analytics.Repository
}

func NewAccountService(accounts account.Repository, registrar account.Registrar, students profile.StudentRepository, teachers profile.TeacherRepository, companies profile.CompanyRepository, analytics analytics.Repository) *AccountService {
	return &AccountService{accounts: accounts, registrar: registrar, students: students, teachers: teachers, companies: companies, analytics: analytics}
}

// Review applies pending -> approved/declined. Admins review any account;
// universities review only student and teacher accounts whose profile points
// at them. Approval flips verified together with status. No notification or
// email is sent on account review.
func (s *AccountService) Review(ctx context.Context, actor Principal, targetID common.UUID, status account.Status) (*account.Account, error) {
	if status != account.StatusApproved && status != account.StatusDeclined {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be approved or declined"})
	}
	target, err := s.accounts.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeReview(ctx, actor, target); err != nil {
		return nil, err
	}
	verified := target.Verified || status == account.StatusApproved
	updated, err := s.accounts.UpdateStatus(ctx, targetID, status, verified)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "account.reviewed", AccountID: &actor.AccountID, Payload: analyticsPayload(ctx, map[string]string{"target_id": targetID.String(), "status": string(status)})})
	return updated, nil
}

func (s *AccountService) authorizeReview(ctx context.Context, actor Principal, target *account.Account) error {
	switch actor.Role {
	case account.RoleAdmin:
		return nil
	case account.RoleUniversity:
		switch target.Role {
		case account.RoleStudent:
			p, err := s.students.GetByAccountID(ctx, target.ID)
			if err != nil {
				return err
			}
			if p.UniversityID != actor.AccountID {
				return common.NewError(common.CodeForbidden, "account belongs to another university", nil)
			}
			return nil
		case account.RoleTeacher:
			p, err := s.teachers.GetByAccountID(ctx, target.ID)
			if err != nil {
				return err
			}
			if p.UniversityID != actor.AccountID {
				return common.NewError(common.CodeForbidden, "account belongs to another university", nil)
			}
			return nil
		default:
			return common.NewError(common.CodeForbidden, "universities review only student and teacher accounts", nil)
		}
	default:
		return common.NewError(common.CodeForbidden, "insufficient role", nil)
	}
}

func (s *AccountService) Get(ctx context.Context, actor Principal, id common.UUID) (*account.Account, error) {
	target, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeReview(ctx, actor, target); err != nil {
		return nil, err
	}
	return target, nil
}

// Delete removes an account; the role profile cascades with it.
func (s *AccountService) Delete(ctx context.Context, actor Principal, id common.UUID) error {
	if actor.Role != account.RoleAdmin {
		return common.NewError(common.CodeForbidden, "insufficient role", nil)
	}
	if _, err := s.accounts.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "account.deleted", AccountID: &actor.AccountID, Payload: analyticsPayload(ctx, map[string]string{"target_id": id.String()})})
	return nil
}

// AdminCreate registers an account on behalf of an admin; it starts approved
// and verified.
func (s *AccountService) AdminCreate(ctx context.Context, actor Principal, input RegisterInput) (*account.Account, error) {
	if actor.Role != account.RoleAdmin {
		return nil, common.NewError(common.CodeForbidden, "insufficient role", nil)
	}
	if err := validateRegisterInput(input); err != nil {
		return nil, err
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
		Status:       account.StatusApproved,
		Verified:     true,
	}
	var created *account.Account
	if input.Role == account.RoleAdmin {
		created, err = s.accounts.Create(ctx, acc)
	} else {
		created, err = s.registrar.CreateWithProfile(ctx, acc, profileFor(input))
	}
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "account.admin_created", AccountID: &actor.AccountID, Payload: analyticsPayload(ctx, map[string]string{"target_id": created.ID.String(), "role": string(created.Role)})})
	return created, nil
}
