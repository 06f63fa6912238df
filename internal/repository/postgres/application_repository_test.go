package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/application"
)

func TestApplicationRepositoryGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, post_id, student_id, status, applied_at, updated_at FROM applications WHERE id").
		WithArgs("app-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "student_id", "status", "applied_at", "updated_at"}).
			AddRow("app-1", "post-1", "student-1", "applied", now, now))

	repo := NewApplicationRepository(db)
	got, err := repo.GetByID(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.PostID != "post-1" || got.Status != application.StatusApplied {
		t.Fatalf("unexpected application: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplicationRepositoryGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, post_id, student_id, status, applied_at, updated_at FROM applications WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewApplicationRepository(db)
	_, err = repo.GetByID(context.Background(), "missing")
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestApplicationRepositoryUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectExec("UPDATE applications SET status").
		WithArgs("accepted", sqlmock.AnyArg(), "app-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, post_id, student_id, status, applied_at, updated_at FROM applications WHERE id").
		WithArgs("app-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "student_id", "status", "applied_at", "updated_at"}).
			AddRow("app-1", "post-1", "student-1", "accepted", now, now))

	repo := NewApplicationRepository(db)
	got, err := repo.UpdateStatus(context.Background(), "app-1", application.StatusAccepted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if got.Status != application.StatusAccepted {
		t.Fatalf("expected accepted, got %s", got.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplicationRepositoryListByCompany(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("JOIN posts p ON p.id = a.post_id").
		WithArgs("company-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "student_id", "status", "applied_at", "updated_at"}).
			AddRow("app-1", "post-1", "student-1", "applied", now, now).
			AddRow("app-2", "post-1", "student-2", "rejected", now, now))

	repo := NewApplicationRepository(db)
	items, err := repo.ListByCompany(context.Background(), "company-1")
	if err != nil {
		t.Fatalf("ListByCompany: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(items))
	}
}
