package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDriver  string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	// ทุก base URL ของ upstream มาจาก config ที่เดียว
	// ห้ามมี controller ไหน hardcode http://localhost:500x เอง
	OrderServiceURL      string
	PaymentServiceURL    string
	DeliveryServiceURL   string
	LocationServiceURL   string
	AuthServiceURL       string
	RestaurantServiceURL string
	UpstreamTimeout      time.Duration

	StatusPollEvery      time.Duration
	LocationPollEvery    time.Duration
	DriverHeartbeatEvery time.Duration

	CORSAllowOrigins []string
}

func LoadConfig() *Config {
	// .env เป็น optional: ไม่มีไฟล์ก็ใช้ env จริงได้เลย
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8000"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBSource:  getEnv("DB_SOURCE", "storefront.db"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    getDuration("JWT_TTL", 24*time.Hour),

		OrderServiceURL:      getEnv("ORDER_SERVICE_URL", "http://localhost:5001"),
		PaymentServiceURL:    getEnv("PAYMENT_SERVICE_URL", "http://localhost:5002"),
		DeliveryServiceURL:   getEnv("DELIVERY_SERVICE_URL", "http://localhost:5003"),
		LocationServiceURL:   getEnv("LOCATION_SERVICE_URL", "http://localhost:5004"),
		AuthServiceURL:       getEnv("AUTH_SERVICE_URL", "http://localhost:5005"),
		RestaurantServiceURL: getEnv("RESTAURANT_SERVICE_URL", "http://localhost:5006"),
		UpstreamTimeout:      getDuration("UPSTREAM_TIMEOUT", 10*time.Second),

		StatusPollEvery:      getDuration("STATUS_POLL_EVERY", 30*time.Second),
		LocationPollEvery:    getDuration("LOCATION_POLL_EVERY", 15*time.Second),
		DriverHeartbeatEvery: getDuration("DRIVER_HEARTBEAT_EVERY", 5*time.Minute),

		CORSAllowOrigins: getList("CORS_ALLOW_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// comma-separated เช่น "https://a.example,https://b.example"
func getList(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	// เผื่อใส่มาเป็นวินาทีเพียว ๆ
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
