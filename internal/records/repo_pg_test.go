package records

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	record := Record{
		ID:                 "rec-1",
		UserID:             "user-1",
		OriginalText:       "resume",
		JobDescription:     "jd",
		ImprovedContent:    "better resume",
		CoverLetterSnippet: "cover",
		CreatedAt:          time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO improvement_records").
		WithArgs(record.ID, record.UserID, record.OriginalText, record.JobDescription,
			record.ImprovedContent, record.CoverLetterSnippet, record.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "original_text", "job_description",
		"improved_content", "cover_letter_snippet", "created_at",
	}).AddRow("rec-1", "user-1", "resume", "jd", "better", "cover", created)

	mock.ExpectQuery("SELECT id, user_id, original_text").
		WithArgs("rec-1", "user-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	record, err := repo.GetByID(context.Background(), "user-1", "rec-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if record.ID != "rec-1" || record.ImprovedContent != "better" || !record.CreatedAt.Equal(created) {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id, original_text").
		WithArgs("missing", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "original_text", "job_description",
			"improved_content", "cover_letter_snippet", "created_at",
		}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "original_text", "job_description",
		"improved_content", "cover_letter_snippet", "created_at",
	}).
		AddRow("rec-2", "user-1", "r2", "jd2", "i2", "c2", base.Add(time.Hour)).
		AddRow("rec-1", "user-1", "r1", "jd1", "i1", "c1", base)

	mock.ExpectQuery("SELECT id, user_id, original_text").
		WithArgs("user-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	records, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(records) != 2 || records[0].ID != "rec-2" || records[1].ID != "rec-1" {
		t.Fatalf("unexpected records: %+v", records)
	}
}
