package export

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/records"
	"resume-tailor/internal/shared/storage/kv"
	"resume-tailor/internal/users"
)

func newTestRouter(t *testing.T) (*gin.Engine, records.Record) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := kv.NewMemoryStore()
	userRepo := users.NewKVRepo(store)
	user := users.User{ID: "user-1", Email: "a@b.com", Name: "Ada"}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	recordRepo := records.NewKVRepo(store)
	record := records.Record{
		ID:              "rec-1",
		UserID:          user.ID,
		OriginalText:    "old resume",
		JobDescription:  "jd",
		ImprovedContent: "# Ada Lovelace\n* Led a team of **5**",
		CreatedAt:       time.Now().UTC(),
	}
	if err := recordRepo.Create(context.Background(), record); err != nil {
		t.Fatalf("create record: %v", err)
	}

	svc := &records.Service{Repo: recordRepo, UserRepo: userRepo}
	handler := NewHandler(svc)

	router := gin.New()
	rg := router.Group("/api")
	rg.Use(func(c *gin.Context) { c.Set("userId", user.ID) })
	handler.RegisterRoutes(rg)
	return router, record
}

func doExport(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestDownloadMarkdown(t *testing.T) {
	router, record := newTestRouter(t)

	rec := doExport(t, router, "/api/improvements/rec-1/export/md")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Body.String(); got != record.ImprovedContent {
		t.Fatalf("markdown body altered:\n%s", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/markdown" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "optimized_resume_rec-1.md") {
		t.Fatalf("content disposition = %q", cd)
	}
}

func TestDownloadPDF(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doExport(t, router, "/api/improvements/rec-1/export/pdf")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Fatal("response is not a PDF")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "resume_rec-1.pdf") {
		t.Fatalf("content disposition = %q", cd)
	}
}

func TestDownloadWord(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doExport(t, router, "/api/improvements/rec-1/export/doc")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<h1>Ada Lovelace</h1>") {
		t.Fatal("converted heading missing from Word export")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/msword" {
		t.Fatalf("content type = %q", ct)
	}
}

func TestDownloadUnsupportedFormat(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doExport(t, router, "/api/improvements/rec-1/export/rtf")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unsupported_format") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestDownloadUnknownRecord(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doExport(t, router, "/api/improvements/missing/export/md")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDownloadForeignRecordHidden(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := kv.NewMemoryStore()
	recordRepo := records.NewKVRepo(store)
	err := recordRepo.Create(context.Background(), records.Record{
		ID: "rec-1", UserID: "user-1", CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create record: %v", err)
	}

	router := gin.New()
	rg := router.Group("/api")
	rg.Use(func(c *gin.Context) { c.Set("userId", "somebody-else") })
	NewHandler(&records.Service{Repo: recordRepo, UserRepo: users.NewKVRepo(store)}).RegisterRoutes(rg)

	rec := doExport(t, router, "/api/improvements/rec-1/export/md")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign record exposed, status = %d", rec.Code)
	}
}
