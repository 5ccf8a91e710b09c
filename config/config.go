package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries every knob the process reads from the environment. It is
// built once in main and handed to constructors; nothing else reads os.Getenv.
type Config struct {
	Port string

	// SheetsURL is the remote spreadsheet endpoint. An empty value is a valid
	// configured state meaning "not connected"; the gateway must refuse calls
	// without touching the network.
	SheetsURL string

	JWTSecret      string
	JWTExpiryHours int

	CORSOrigins []string

	// DataDir holds the local-only JSON blobs (session user, company info).
	DataDir string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromPhone  string
	OwnerPhone       string
	ReminderCron     string
}

// Load reads .env (if present) and the environment into a Config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		SheetsURL:        os.Getenv("SHEETS_API_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTExpiryHours:   24,
		DataDir:          getEnv("DATA_DIR", "data"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:  os.Getenv("TWILIO_FROM_PHONE"),
		OwnerPhone:       os.Getenv("OWNER_PHONE"),
		ReminderCron:     getEnv("REMINDER_CRON", "0 7 * * *"),
	}

	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			cfg.JWTExpiryHours = h
		}
	}

	origins := getEnv("CORS_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg
}

// Connected reports whether a remote endpoint has been configured.
func (c Config) Connected() bool {
	return c.SheetsURL != ""
}

// RemindersEnabled reports whether the work-day SMS digest can run.
func (c Config) RemindersEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" &&
		c.TwilioFromPhone != "" && c.OwnerPhone != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
