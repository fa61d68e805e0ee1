package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDSN string

	JWTSecret  string
	SessionTTL time.Duration

	SettleDelay   time.Duration
	SettleTimeout time.Duration

	UPIHandle  string
	UPIName    string
	Currency   string
	QREndpoint string

	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string
}

// LoadEnv reads configuration from the process environment. A .env file in
// the working directory is loaded first when present; real env vars win.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr: getenv("APP_ADDR", ":3000"),
		GinMode: getenv("GIN_MODE", ""),

		DBDSN: dsnFromEnv(),

		JWTSecret:  getenv("JWT_SECRET", "change-me-travel-session-secret"),
		SessionTTL: durationEnv("SESSION_TTL", 24*time.Hour),

		SettleDelay:   durationEnv("SETTLE_DELAY", 2*time.Second),
		SettleTimeout: durationEnv("SETTLE_TIMEOUT", 10*time.Second),

		UPIHandle:  getenv("UPI_HANDLE", "7038948696@upi"),
		UPIName:    getenv("UPI_NAME", "MaharajaTravels"),
		Currency:   getenv("PAYMENT_CURRENCY", "INR"),
		QREndpoint: getenv("QR_ENDPOINT", "https://api.qrserver.com/v1/create-qr-code/"),

		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "text"),
	}
}

func dsnFromEnv() string {
	if dsn := strings.TrimSpace(os.Getenv("DB_DSN")); dsn != "" {
		return dsn
	}
	cfg := mysql.NewConfig()
	cfg.User = getenv("DB_USER", "root")
	cfg.Passwd = os.Getenv("DB_PASSWORD")
	cfg.Net = "tcp"
	cfg.Addr = getenv("DB_ADDR", "127.0.0.1:3306")
	cfg.DBName = getenv("DB_NAME", "travel_agency")
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Timeout = 5 * time.Second
	cfg.ReadTimeout = 30 * time.Second
	cfg.WriteTimeout = 30 * time.Second
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func durationEnv(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func splitList(raw string) []string {
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
