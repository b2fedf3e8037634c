// internal/config/env.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings — параметры запуска, которые берутся из окружения (или .env).
type Settings struct {
	DBPath           string // путь к SQLite журналу волн; пусто: журнал в памяти
	PlayerID         string // идентификатор игрока для журнала; пусто: сгенерировать
	TuningPath       string // YAML с балансом; пусто: значения по умолчанию
	TargetingWorkers int
	StartFromGame    bool // true: начинать с игры, false: с меню
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		DBPath:           "data/ledger.db",
		TargetingWorkers: TargetingWorkers,
		StartFromGame:    false,
	}
}

// LoadSettings reads the given .env files (".env" when none are given) and
// then the process environment. A missing .env file is not an error.
func LoadSettings(files ...string) (Settings, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to load env file: %w", err)
	}

	s := DefaultSettings()
	if v, ok := os.LookupEnv("DB_PATH"); ok {
		s.DBPath = v
	}
	if v, err := GetEnvVariable("PLAYER_ID"); err == nil {
		s.PlayerID = v
	}
	if v, err := GetEnvVariable("TUNING_PATH"); err == nil {
		s.TuningPath = v
	}
	if v, err := GetEnvVariable("TARGETING_WORKERS"); err == nil {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Settings{}, fmt.Errorf("invalid TARGETING_WORKERS %q", v)
		}
		s.TargetingWorkers = n
	}
	if v, err := GetEnvVariable("START_FROM_GAME"); err == nil {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid START_FROM_GAME %q: %w", v, err)
		}
		s.StartFromGame = b
	}
	return s, nil
}

// GetEnvVariable returns a non-empty environment variable.
func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}
