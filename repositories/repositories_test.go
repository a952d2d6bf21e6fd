package repositories

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/blogem/codeauth/database"
	"github.com/blogem/codeauth/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestAuditRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepositories(db).Audit

	base := time.Date(2025, 10, 6, 9, 0, 0, 0, time.UTC)
	attempts := []*models.AuthAttempt{
		{ID: uuid.NewString(), Timestamp: base, Provider: "github", Event: models.EventLogin, Outcome: models.OutcomeSuccess, IdentityID: "u-1", Duration: 120 * time.Millisecond},
		{ID: uuid.NewString(), Timestamp: base.Add(time.Minute), Provider: "github", Event: models.EventLogin, Outcome: "not_found"},
		{ID: uuid.NewString(), Timestamp: base.Add(2 * time.Minute), Provider: "google", Event: models.EventSignUp, Outcome: models.OutcomeSuccess, IdentityID: "g-1"},
	}

	for _, a := range attempts {
		if err := repo.Create(a); err != nil {
			t.Fatalf("Failed to create auth attempt: %v", err)
		}
	}

	got, err := repo.ListByProvider("github", 10)
	if err != nil {
		t.Fatalf("Failed to list auth attempts: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("Expected 2 github attempts, got %d", len(got))
	}

	if got[0].Outcome != "not_found" {
		t.Errorf("Expected newest attempt first, got outcome %s", got[0].Outcome)
	}

	if !got[1].Succeeded() || got[1].IdentityID != "u-1" {
		t.Errorf("Expected successful attempt for u-1, got %+v", got[1])
	}

	if got[1].Duration != 120*time.Millisecond {
		t.Errorf("Expected duration 120ms, got %s", got[1].Duration)
	}

	limited, err := repo.ListByProvider("github", 1)
	if err != nil {
		t.Fatalf("Failed to list auth attempts: %v", err)
	}

	if len(limited) != 1 {
		t.Errorf("Expected 1 attempt with limit, got %d", len(limited))
	}
}

func TestAuditRepository_DefaultsTimestamp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)

	attempt := &models.AuthAttempt{ID: uuid.NewString(), Provider: "github", Event: models.EventReadBack, Outcome: models.OutcomeSuccess}
	if err := repo.Create(attempt); err != nil {
		t.Fatalf("Failed to create auth attempt: %v", err)
	}

	if attempt.Timestamp.IsZero() {
		t.Error("Expected timestamp to be set on create")
	}
}

func TestAuditRepository_RequiresID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)

	if err := repo.Create(&models.AuthAttempt{Provider: "github"}); err == nil {
		t.Error("Expected error when creating attempt without id")
	}
}

func TestAuditRepository_DuplicateID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)

	id := uuid.NewString()
	if err := repo.Create(&models.AuthAttempt{ID: id, Provider: "github", Event: models.EventLogin, Outcome: models.OutcomeSuccess}); err != nil {
		t.Fatalf("Failed to create auth attempt: %v", err)
	}

	if err := repo.Create(&models.AuthAttempt{ID: id, Provider: "github", Event: models.EventLogin, Outcome: models.OutcomeSuccess}); err == nil {
		t.Error("Expected error when reusing attempt id")
	}
}
