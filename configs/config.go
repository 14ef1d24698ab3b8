package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full configuration surface, loaded once at startup and
// passed down by value. Secrets come from the environment, never from code.
type Config struct {
	ListenAddr string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBNameTest string

	// RedisHost empty disables the task cache.
	RedisHost string
	RedisPort int

	JWTSecret    string
	JWTAlgorithm string
	TokenTTL     time.Duration
	BcryptCost   int

	// TaskOwnerScoped restricts task reads/writes to the owning user.
	TaskOwnerScoped bool
	// SeedSampleData inserts the sample users/tasks at startup.
	SeedSampleData bool
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GO_ENV") != "test" {
			log.Println("No .env file found, using default values")
		}
	}

	return Config{
		ListenAddr: getString("LISTEN_ADDR", ":3004"),

		DBHost:     getString("DB_HOST", "localhost"),
		DBPort:     getInt("DB_PORT", 5432),
		DBUser:     getString("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getString("DB_NAME", "tasktrack"),
		DBNameTest: getString("DB_NAME_TEST", "tasktrack_test"),

		RedisHost: os.Getenv("REDIS_HOST"),
		RedisPort: getInt("REDIS_PORT", 6379),

		JWTSecret:    getString("JWT_SECRET", "devsecret"),
		JWTAlgorithm: getString("JWT_ALGORITHM", "HS256"),
		TokenTTL:     time.Duration(getInt("TOKEN_TTL_MINUTES", 30)) * time.Minute,
		BcryptCost:   getInt("BCRYPT_COST", 0),

		TaskOwnerScoped: getBool("TASK_OWNER_SCOPED", false),
		SeedSampleData:  getBool("SEED_SAMPLE_DATA", false),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
