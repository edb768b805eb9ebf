package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"labreserve-service/internal/schedule"
)

// Config is everything the service needs, loaded once at startup and
// immutable for the process lifetime.
type Config struct {
	Port            string
	CalendarID      string
	SpreadsheetID   string
	SheetRange      string
	CredentialsFile string
	TimezoneName    string
	Location        *time.Location
	Catalog         schedule.Catalog
	ProviderTimeout time.Duration
}

// Load reads the environment (optionally seeded from a .env file) and fails
// fast on anything missing or malformed.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		CalendarID:      os.Getenv("CALENDAR_ID"),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		SheetRange:      getEnv("SHEET_RANGE", "Reservas!A:G"),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		TimezoneName:    getEnv("CIVIL_TZ_NAME", "America/Bogota"),
	}
	if cfg.CalendarID == "" {
		return nil, fmt.Errorf("CALENDAR_ID required")
	}
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID required")
	}

	loc, err := schedule.FixedOffset(getEnv("CIVIL_TZ_OFFSET", "-05:00"))
	if err != nil {
		return nil, fmt.Errorf("CIVIL_TZ_OFFSET: %v", err)
	}
	cfg.Location = loc

	if spec := os.Getenv("SLOT_CATALOG"); spec != "" {
		catalog, err := schedule.ParseCatalog(spec)
		if err != nil {
			return nil, fmt.Errorf("SLOT_CATALOG: %v", err)
		}
		cfg.Catalog = catalog
	} else {
		cfg.Catalog = schedule.DefaultCatalog()
	}

	timeoutSecs, err := getEnvInt("PROVIDER_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, fmt.Errorf("PROVIDER_TIMEOUT_SECONDS: %v", err)
	}
	cfg.ProviderTimeout = time.Duration(timeoutSecs) * time.Second

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid value %q", v)
	}
	return n, nil
}
