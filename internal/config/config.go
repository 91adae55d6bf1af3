package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/fortuna-games/fortuna/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// External record store
	NotionToken   string
	NotionBaseURL string
	// Databases maps each game type to its external database id.
	// Every game in domain.Games must have an entry; enforced at load time.
	Databases map[domain.Game]string

	// Game tuning
	SpinWinProbability float64
	DailyLimits        map[domain.Game]int
	WheelSlots         []domain.WheelSlot
	WheelWinningSlots  map[int]bool

	CORSAllowedOrigins []string
	// TrustedProxies lists proxy IPs whose X-Forwarded-For header is honored
	// when attributing requests to a client IP.
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),

		NotionToken:   getEnv("NOTION_API_TOKEN", ""),
		NotionBaseURL: getEnv("NOTION_BASE_URL", DefaultNotionBaseURL),
		Databases: map[domain.Game]string{
			domain.GameSpin:  getEnv("NOTION_SPIN_DATABASE_ID", ""),
			domain.GameWheel: getEnv("NOTION_WHEEL_DATABASE_ID", ""),
		},

		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		TrustedProxies:     splitAndTrim(getEnv("TRUSTED_PROXIES", "")),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	probStr := getEnv("SPIN_WIN_PROBABILITY", DefaultSpinWinProbability)
	prob, err := strconv.ParseFloat(probStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SPIN_WIN_PROBABILITY value: %w", err)
	}
	if prob < 0 || prob > 1 {
		return nil, fmt.Errorf("SPIN_WIN_PROBABILITY must be in [0,1], got %v", prob)
	}
	cfg.SpinWinProbability = prob

	cfg.DailyLimits = make(map[domain.Game]int, len(domain.Games))
	for _, game := range domain.Games {
		limit, err := loadDailyLimit(game)
		if err != nil {
			return nil, err
		}
		cfg.DailyLimits[game] = limit
	}

	cfg.WheelSlots, err = loadWheelSlots()
	if err != nil {
		return nil, err
	}
	cfg.WheelWinningSlots, err = loadWheelWinningSlots(len(cfg.WheelSlots))
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate catches configuration defects at startup so they are never
// surfaced as per-request errors.
func (c *Config) validate() error {
	if c.NotionToken == "" {
		return fmt.Errorf("NOTION_API_TOKEN environment variable must be set")
	}

	// Every known game must resolve to a database id.
	for _, game := range domain.Games {
		if c.Databases[game] == "" {
			return fmt.Errorf("%w: %s (set NOTION_%s_DATABASE_ID)",
				domain.ErrUnconfiguredGame, game, strings.ToUpper(game.String()))
		}
	}

	totalWeight := 0
	for i, slot := range c.WheelSlots {
		if slot.Weight < 0 {
			return fmt.Errorf("%w: slot %d (%q) has negative weight %d",
				domain.ErrBadWheelConfig, i, slot.Name, slot.Weight)
		}
		totalWeight += slot.Weight
	}
	if totalWeight <= 0 {
		return fmt.Errorf("%w: total weight must be positive", domain.ErrBadWheelConfig)
	}
	for idx := range c.WheelWinningSlots {
		if idx < 0 || idx >= len(c.WheelSlots) {
			return fmt.Errorf("%w: winning slot index %d out of range", domain.ErrBadWheelConfig, idx)
		}
	}

	return nil
}

// loadDailyLimit reads the per-game daily win-recording cap, e.g. SPIN_DAILY_LIMIT.
func loadDailyLimit(game domain.Game) (int, error) {
	key := fmt.Sprintf("%s_DAILY_LIMIT", strings.ToUpper(game.String()))
	raw := getEnv(key, strconv.Itoa(DefaultDailyLimit))
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	if limit < 1 {
		return 0, fmt.Errorf("%s must be at least 1, got %d", key, limit)
	}
	return limit, nil
}

// loadWheelSlots parses WHEEL_SLOTS ("Name:weight,Name:weight,...") or falls
// back to the built-in table.
func loadWheelSlots() ([]domain.WheelSlot, error) {
	raw := getEnv("WHEEL_SLOTS", "")
	if raw == "" {
		return defaultWheelSlots(), nil
	}

	parts := splitAndTrim(raw)
	slots := make([]domain.WheelSlot, 0, len(parts))
	for _, part := range parts {
		sep := strings.LastIndex(part, ":")
		if sep <= 0 {
			return nil, fmt.Errorf("invalid WHEEL_SLOTS entry %q (want Name:weight)", part)
		}
		weight, err := strconv.Atoi(strings.TrimSpace(part[sep+1:]))
		if err != nil {
			return nil, fmt.Errorf("invalid weight in WHEEL_SLOTS entry %q: %w", part, err)
		}
		slots = append(slots, domain.WheelSlot{
			Name:   strings.TrimSpace(part[:sep]),
			Weight: weight,
		})
	}
	return slots, nil
}

// loadWheelWinningSlots parses WHEEL_WINNING_SLOTS ("2,6"). The winning set
// is an explicit policy table, never derived from slot name text.
func loadWheelWinningSlots(slotCount int) (map[int]bool, error) {
	raw := getEnv("WHEEL_WINNING_SLOTS", "")
	if raw == "" {
		if os.Getenv("WHEEL_SLOTS") == "" {
			return defaultWheelWinningSlots(), nil
		}
		return nil, fmt.Errorf("WHEEL_WINNING_SLOTS must be set when WHEEL_SLOTS is customized")
	}

	winning := make(map[int]bool)
	for _, part := range splitAndTrim(raw) {
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid WHEEL_WINNING_SLOTS entry %q: %w", part, err)
		}
		winning[idx] = true
	}
	return winning, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
