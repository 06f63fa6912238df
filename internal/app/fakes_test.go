package app

import (
	"context"
	"sync"
	"time"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/account"
	"unijoblink/internal/domain/analytics"
	"unijoblink/internal/domain/application"
	"unijoblink/internal/domain/auth"
	"unijoblink/internal/domain/interview"
	"unijoblink/internal/domain/notification"
	"unijoblink/internal/domain/post"
	"unijoblink/internal/domain/profile"
	"unijoblink/internal/mailer"
)

type noopAnalyticsRepo struct{}

func (noopAnalyticsRepo) Create(ctx context.Context, event analytics.Event) error {
	return nil
}

type fakeAccountRepo struct {
	mu      sync.Mutex
	byID    map[common.UUID]*account.Account
	byEmail map[string]*account.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byID:    make(map[common.UUID]*account.Account),
		byEmail: make(map[string]*account.Account),
	}
}

func (r *fakeAccountRepo) Create(ctx context.Context, acc account.Account) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[acc.Email]; ok {
		return nil, common.NewError(common.CodeConflict, "email already registered", nil)
	}
	if acc.ID == "" {
		acc.ID = common.NewUUID()
	}
	acc.CreatedAt = time.Now().UTC()
	acc.UpdatedAt = acc.CreatedAt
	stored := acc
	r.byID[acc.ID] = &stored
	r.byEmail[acc.Email] = &stored
	return &stored, nil
}

func (r *fakeAccountRepo) CreateWithProfile(ctx context.Context, acc account.Account, prof profile.RoleProfile) (*account.Account, error) {
	return r.Create(ctx, acc)
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id common.UUID) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "account not found", nil)
	}
	copied := *acc
	return &copied, nil
}

func (r *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.byEmail[email]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "account not found", nil)
	}
	copied := *acc
	return &copied, nil
}

func (r *fakeAccountRepo) List(ctx context.Context, role account.Role) ([]account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []account.Account
	for _, acc := range r.byID {
		if acc.Role == role {
			items = append(items, *acc)
		}
	}
	return items, nil
}

func (r *fakeAccountRepo) UpdateStatus(ctx context.Context, id common.UUID, status account.Status, verified bool) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "account not found", nil)
	}
	acc.Status = status
	acc.Verified = verified
	acc.UpdatedAt = time.Now().UTC()
	copied := *acc
	return &copied, nil
}

func (r *fakeAccountRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.byID[id]
	if !ok {
		return common.NewError(common.CodeNotFound, "account not found", nil)
	}
	delete(r.byEmail, acc.Email)
	delete(r.byID, id)
	return nil
}

type fakePostRepo struct {
	mu sync.Mutex
	// companies not listed in unapproved count as approved
	byID       map[common.UUID]*post.Post
	unapproved map[common.UUID]bool
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		byID:       make(map[common.UUID]*post.Post),
		unapproved: make(map[common.UUID]bool),
	}
}

func (r *fakePostRepo) markCompanyUnapproved(companyID common.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unapproved[companyID] = true
}

func (r *fakePostRepo) Create(ctx context.Context, p post.Post) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = common.NewUUID()
	}
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	stored := p
	r.byID[p.ID] = &stored
	return &stored, nil
}

func (r *fakePostRepo) Update(ctx context.Context, p post.Post) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.byID[p.ID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "post not found", nil)
	}
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	stored := p
	r.byID[p.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *fakePostRepo) GetByID(ctx context.Context, id common.UUID) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "post not found", nil)
	}
	copied := *p
	return &copied, nil
}

func (r *fakePostRepo) GetPublishedByID(ctx context.Context, id common.UUID) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok || r.unapproved[p.CompanyID] {
		return nil, common.NewError(common.CodeNotFound, "post not found", nil)
	}
	copied := *p
	return &copied, nil
}

func (r *fakePostRepo) List(ctx context.Context, filter post.Filter) ([]post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []post.Post
	for _, p := range r.byID {
		items = append(items, *p)
	}
	return items, nil
}

func (r *fakePostRepo) ListByCompany(ctx context.Context, companyID common.UUID) ([]post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []post.Post
	for _, p := range r.byID {
		if p.CompanyID == companyID {
			items = append(items, *p)
		}
	}
	return items, nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id, companyID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok || p.CompanyID != companyID {
		return common.NewError(common.CodeNotFound, "post not found", nil)
	}
	delete(r.byID, id)
	return nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*application.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: make(map[common.UUID]*application.Application)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.PostID == app.PostID && existing.StudentID == app.StudentID {
			return nil, common.NewError(common.CodeConflict, "already applied", nil)
		}
	}
	if app.ID == "" {
		app.ID = common.NewUUID()
	}
	app.AppliedAt = time.Now().UTC()
	app.UpdatedAt = app.AppliedAt
	stored := app
	r.byID[app.ID] = &stored
	return &stored, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) FindByPostAndStudent(ctx context.Context, postID, studentID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.byID {
		if app.PostID == postID && app.StudentID == studentID {
			copied := *app
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) ListByStudent(ctx context.Context, studentID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.byID {
		if app.StudentID == studentID {
			items = append(items, *app)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByCompany(ctx context.Context, companyID common.UUID) ([]application.Application, error) {
	return nil, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	app.Status = status
	app.UpdatedAt = time.Now().UTC()
	copied := *app
	return &copied, nil
}

type fakeInterviewRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*interview.Interview
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{byID: make(map[common.UUID]*interview.Interview)}
}

func (r *fakeInterviewRepo) Create(ctx context.Context, iv interview.Interview) (*interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if iv.ID == "" {
		iv.ID = common.NewUUID()
	}
	iv.CreatedAt = time.Now().UTC()
	iv.UpdatedAt = iv.CreatedAt
	stored := iv
	r.byID[iv.ID] = &stored
	return &stored, nil
}

func (r *fakeInterviewRepo) GetByID(ctx context.Context, id common.UUID) (*interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	iv, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "interview not found", nil)
	}
	copied := *iv
	return &copied, nil
}

func (r *fakeInterviewRepo) ListByStudent(ctx context.Context, studentID common.UUID) ([]interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []interview.Interview
	for _, iv := range r.byID {
		if iv.StudentID == studentID {
			items = append(items, *iv)
		}
	}
	return items, nil
}

func (r *fakeInterviewRepo) ListByCompany(ctx context.Context, companyID common.UUID) ([]interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []interview.Interview
	for _, iv := range r.byID {
		if iv.CompanyID == companyID {
			items = append(items, *iv)
		}
	}
	return items, nil
}

func (r *fakeInterviewRepo) UpdateSchedule(ctx context.Context, id common.UUID, scheduledAt time.Time) (*interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	iv, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "interview not found", nil)
	}
	iv.ScheduledAt = scheduledAt
	iv.UpdatedAt = time.Now().UTC()
	copied := *iv
	return &copied, nil
}

func (r *fakeInterviewRepo) UpdateStatus(ctx context.Context, id common.UUID, status interview.Status) (*interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	iv, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "interview not found", nil)
	}
	iv.Status = status
	iv.UpdatedAt = time.Now().UTC()
	copied := *iv
	return &copied, nil
}

type dispatchedNotification struct {
	recipientID common.UUID
	kind        notification.Kind
	title       string
	body        string
}

type fakeNotifier struct {
	mu         sync.Mutex
	dispatched []dispatchedNotification
}

func (n *fakeNotifier) Dispatch(ctx context.Context, recipientID common.UUID, kind notification.Kind, title, body string, params mailer.TemplateParams) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.dispatched = append(n.dispatched, dispatchedNotification{recipientID: recipientID, kind: kind, title: title, body: body})
	return nil
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.dispatched)
}

type fakeStudentProfileRepo struct {
	mu        sync.Mutex
	byAccount map[common.UUID]*profile.StudentProfile
}

func newFakeStudentProfileRepo() *fakeStudentProfileRepo {
	return &fakeStudentProfileRepo{byAccount: make(map[common.UUID]*profile.StudentProfile)}
}

func (r *fakeStudentProfileRepo) GetByAccountID(ctx context.Context, accountID common.UUID) (*profile.StudentProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byAccount[accountID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "student profile not found", nil)
	}
	copied := *p
	return &copied, nil
}

func (r *fakeStudentProfileRepo) Upsert(ctx context.Context, p profile.StudentProfile) (*profile.StudentProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.UpdatedAt = time.Now().UTC()
	stored := p
	r.byAccount[p.AccountID] = &stored
	copied := stored
	return &copied, nil
}

type fakeTeacherProfileRepo struct {
	mu        sync.Mutex
	byAccount map[common.UUID]*profile.TeacherProfile
}

func newFakeTeacherProfileRepo() *fakeTeacherProfileRepo {
	return &fakeTeacherProfileRepo{byAccount: make(map[common.UUID]*profile.TeacherProfile)}
}

func (r *fakeTeacherProfileRepo) GetByAccountID(ctx context.Context, accountID common.UUID) (*profile.TeacherProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byAccount[accountID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "teacher profile not found", nil)
	}
	copied := *p
	return &copied, nil
}

func (r *fakeTeacherProfileRepo) Upsert(ctx context.Context, p profile.TeacherProfile) (*profile.TeacherProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.UpdatedAt = time.Now().UTC()
	stored := p
	r.byAccount[p.AccountID] = &stored
	copied := stored
	return &copied, nil
}

type fakeCompanyProfileRepo struct {
	mu        sync.Mutex
	byAccount map[common.UUID]*profile.CompanyProfile
}

func newFakeCompanyProfileRepo() *fakeCompanyProfileRepo {
	return &fakeCompanyProfileRepo{byAccount: make(map[common.UUID]*profile.CompanyProfile)}
}

func (r *fakeCompanyProfileRepo) GetByAccountID(ctx context.Context, accountID common.UUID) (*profile.CompanyProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byAccount[accountID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "company profile not found", nil)
	}
	copied := *p
	return &copied, nil
}

func (r *fakeCompanyProfileRepo) Upsert(ctx context.Context, p profile.CompanyProfile) (*profile.CompanyProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.UpdatedAt = time.Now().UTC()
	stored := p
	r.byAccount[p.AccountID] = &stored
	copied := stored
	return &copied, nil
}

type fakeRefreshTokenRepo struct {
	mu      sync.Mutex
	byToken map[string]*auth.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{byToken: make(map[string]*auth.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Store(ctx context.Context, token auth.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token.ID == "" {
		token.ID = common.NewUUID()
	}
	stored := token
	r.byToken[token.Token] = &stored
	return nil
}

func (r *fakeRefreshTokenRepo) GetByToken(ctx context.Context, token string) (*auth.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byToken[token]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "refresh token not found", nil)
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeRefreshTokenRepo) Revoke(ctx context.Context, token string, revokedAtUnix int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byToken[token]
	if !ok {
		return nil
	}
	at := time.Unix(revokedAtUnix, 0).UTC()
	stored.RevokedAt = &at
	return nil
}

func (r *fakeRefreshTokenRepo) RevokeAll(ctx context.Context, accountID common.UUID, revokedAtUnix int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	at := time.Unix(revokedAtUnix, 0).UTC()
	for _, stored := range r.byToken {
		if stored.AccountID == accountID && stored.RevokedAt == nil {
			stored.RevokedAt = &at
		}
	}
	return nil
}
