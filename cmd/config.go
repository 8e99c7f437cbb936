package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultSessionTTL bounds how long an idle intake session survives before
// the expiry job sweeps it.
const DefaultSessionTTL = 30 * time.Minute

type Config struct {
	BotToken   string
	WebhookURL string
	HTTPPort   string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AdminIDs    []int64
	OperatorIDs []int64
	SessionTTL  time.Duration
}

// PostgresDSN renders the connection string for gorm's postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// ParseIDList parses a comma-separated list of chat identifiers, as the
// ADMIN_IDS and OPERATOR_IDS variables carry them. Blank items are skipped
// so trailing commas do not break startup.
func ParseIDList(raw string) ([]int64, error) {
	ids := make([]int64, 0)

	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		id, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chat id %q: %w", item, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// ParseSessionTTL parses the SESSION_TTL_MINUTES variable; an empty value
// falls back to DefaultSessionTTL.
func ParseSessionTTL(raw string) (time.Duration, error) {
	if strings.TrimSpace(raw) == "" {
		return DefaultSessionTTL, nil
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || minutes < 1 {
		return 0, fmt.Errorf("invalid session TTL %q", raw)
	}

	return time.Duration(minutes) * time.Minute, nil
}
