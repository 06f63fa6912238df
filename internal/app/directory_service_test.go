package app

import (
	"context"
	"testing"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/account"
	"unijoblink/internal/domain/profile"
)

type directoryFixture struct {
	service  *DirectoryService
	accounts *fakeAccountRepo
	students *fakeStudentProfileRepo
	admin    Principal
}

func newDirectoryFixture() *directoryFixture {
	accounts := newFakeAccountRepo()
	students := newFakeStudentProfileRepo()
	return &directoryFixture{
		service:  NewDirectoryService(accounts, students, newFakeTeacherProfileRepo(), newFakeCompanyProfileRepo()),
		accounts: accounts,
		students: students,
		admin:    Principal{AccountID: common.NewUUID(), Role: account.RoleAdmin},
	}
}

func (f *directoryFixture) seedStudent(t *testing.T, name, email string, status account.Status, universityID common.UUID, major string, batchYear int) *account.Account {
	t.Helper()
	acc, err := f.accounts.Create(context.Background(), account.Account{
		Name: name, Email: email, Role: account.RoleStudent, Status: status,
	})
	if err != nil {
		t.Fatalf("seed student: %v", err)
	}
	if _, err := f.students.Upsert(context.Background(), profile.StudentProfile{
		AccountID: acc.ID, UniversityID: universityID, Major: major, BatchYear: batchYear,
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return acc
}

func TestDirectoryServiceList_SearchMatchesAcrossFields(t *testing.T) {
	f := newDirectoryFixture()
	f.seedStudent(t, "Ada Lovelace", "ada@example.com", account.StatusApproved, "", "Computer Science", 2027)
	f.seedStudent(t, "Grace Hopper", "grace@example.com", account.StatusApproved, "", "Mathematics", 2026)

	entries, err := f.service.List(context.Background(), f.admin, DirectoryFilter{Role: account.RoleStudent, Search: "computer"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(entries) != 1 || entries[0].Account.Name != "Ada Lovelace" {
		t.Fatalf("expected only Ada via major match, got %d entries", len(entries))
	}

	entries, err = f.service.List(context.Background(), f.admin, DirectoryFilter{Role: account.RoleStudent, Search: "GRACE@"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(entries) != 1 || entries[0].Account.Name != "Grace Hopper" {
		t.Fatalf("expected only Grace via email match, got %d entries", len(entries))
	}
}

func TestDirectoryServiceList_StatusAllPassesEverything(t *testing.T) {
	f := newDirectoryFixture()
	f.seedStudent(t, "Ada", "ada@example.com", account.StatusApproved, "", "CS", 2027)
	f.seedStudent(t, "Linus", "linus@example.com", account.StatusPending, "", "CS", 2027)

	entries, err := f.service.List(context.Background(), f.admin, DirectoryFilter{Role: account.RoleStudent, Status: "all"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries with status=all, got %d", len(entries))
	}

	entries, err = f.service.List(context.Background(), f.admin, DirectoryFilter{Role: account.RoleStudent, Status: "pending"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(entries) != 1 || entries[0].Account.Name != "Linus" {
		t.Fatalf("expected only the pending entry, got %d", len(entries))
	}
}

func TestDirectoryServiceList_FiltersCombineByAND(t *testing.T) {
	f := newDirectoryFixture()
	f.seedStudent(t, "Ada", "ada@example.com", account.StatusApproved, "", "CS", 2027)
	f.seedStudent(t, "Grace", "grace@example.com", account.StatusApproved, "", "CS", 2026)
	f.seedStudent(t, "Linus", "linus@example.com", account.StatusPending, "", "CS", 2027)

	entries, err := f.service.List(context.Background(), f.admin, DirectoryFilter{
		Role:      account.RoleStudent,
		Status:    "approved",
		Major:     "cs",
		BatchYear: 2027,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(entries) != 1 || entries[0].Account.Name != "Ada" {
		t.Fatalf("expected only Ada to satisfy all dimensions, got %d", len(entries))
	}
}

func TestDirectoryServiceList_UniversityScopedAndRestricted(t *testing.T) {
	f := newDirectoryFixture()
	universityID := common.NewUUID()
	otherID := common.NewUUID()
	f.seedStudent(t, "Own", "own@example.com", account.StatusPending, universityID, "CS", 2027)
	f.seedStudent(t, "Foreign", "foreign@example.com", account.StatusPending, otherID, "CS", 2027)

	actor := Principal{AccountID: universityID, Role: account.RoleUniversity}
	entries, err := f.service.List(context.Background(), actor, DirectoryFilter{Role: account.RoleStudent})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(entries) != 1 || entries[0].Account.Name != "Own" {
		t.Fatalf("expected only the university's own student, got %d", len(entries))
	}

	if _, err := f.service.List(context.Background(), actor, DirectoryFilter{Role: account.RoleCompany}); !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden listing companies as university, got %v", err)
	}

	student := Principal{AccountID: common.NewUUID(), Role: account.RoleStudent}
	if _, err := f.service.List(context.Background(), student, DirectoryFilter{Role: account.RoleStudent}); !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden for student actor, got %v", err)
	}
}
