package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.App.Name != "receiving-api" {
		t.Fatalf("app name = %s", cfg.App.Name)
	}
	if cfg.App.Storage != "postgres" {
		t.Fatalf("storage = %s, want postgres", cfg.App.Storage)
	}
	if cfg.Reception.FolioStart != 12345 {
		t.Fatalf("folio start = %d, want 12345", cfg.Reception.FolioStart)
	}
	if len(cfg.Reception.Warehouses) != 2 {
		t.Fatalf("warehouses = %v", cfg.Reception.Warehouses)
	}
	if cfg.Reception.ReferenceDate != "" {
		t.Fatalf("reference date should default to empty, got %q", cfg.Reception.ReferenceDate)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_STORAGE", "memory")
	t.Setenv("RECEPTION_FOLIO_START", "20000")
	t.Setenv("RECEPTION_REFERENCE_DATE", "2025-09-04")

	cfg := Load()

	if cfg.App.Storage != "memory" {
		t.Fatalf("storage = %s, want memory", cfg.App.Storage)
	}
	if cfg.Reception.FolioStart != 20000 {
		t.Fatalf("folio start = %d, want 20000", cfg.Reception.FolioStart)
	}
	if cfg.Reception.ReferenceDate != "2025-09-04" {
		t.Fatalf("reference date = %q", cfg.Reception.ReferenceDate)
	}
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		Name:     "receiving",
		User:     "app",
		Password: "secret",
		SSLMode:  "require",
		Timezone: "America/Mexico_City",
	}

	want := "host=db.internal user=app password=secret dbname=receiving port=5433 sslmode=require TimeZone=America/Mexico_City"
	if got := db.DSN(); got != want {
		t.Fatalf("dsn = %q, want %q", got, want)
	}
}
