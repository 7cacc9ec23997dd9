package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Data     DataConfig
	Board    BoardConfig
	Theme    ThemeConfig
	Cache    CacheConfig
	Database DatabaseConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

const (
	DataSourceEmbedded = "embedded"
	DataSourceFile     = "file"
	DataSourcePostgres = "postgres"
)

type DataConfig struct {
	Source   string
	JobsFile string
}

// BoardConfig holds the listing constants. Filtering and pagination only ever
// see PageSize; the rest is layout.
type BoardConfig struct {
	Title            string
	PageSize         int
	GridColumns      int
	MaxSkills        int
	DescriptionLines int
}

type ThemeConfig struct {
	Primary        string
	Background     string
	Paper          string
	AppBar         string
	Chip           string
	ChipText       string
	Border         string
	MutedText      string
	CardWidthPx    int
	CardHeightPx   int
	ContainerMaxPx int
}

type CacheConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	TTL           time.Duration
}

type DatabaseConfig struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSSLMode      string
	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func DefaultBoard() BoardConfig {
	return BoardConfig{
		Title:            "Job Routing",
		PageSize:         5,
		GridColumns:      3,
		MaxSkills:        4,
		DescriptionLines: 2,
	}
}

func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		Primary:        "#f4b400",
		Background:     "#121212",
		Paper:          "#1e1e1e",
		AppBar:         "#242424",
		Chip:           "#d32f2f",
		ChipText:       "#ffffff",
		Border:         "rgba(255,255,255,0.1)",
		MutedText:      "rgba(255,255,255,0.5)",
		CardWidthPx:    360,
		CardHeightPx:   250,
		ContainerMaxPx: 1100,
	}
}

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optBool := func(key string, def bool) bool {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Data = DataConfig{
		Source:   strings.ToLower(opt("DATA_SOURCE")),
		JobsFile: opt("JOBS_FILE"),
	}
	if cfg.Data.Source == "" {
		cfg.Data.Source = DataSourceEmbedded
		if cfg.Data.JobsFile != "" {
			cfg.Data.Source = DataSourceFile
		}
	}
	switch cfg.Data.Source {
	case DataSourceEmbedded, DataSourcePostgres:
	case DataSourceFile:
		if cfg.Data.JobsFile == "" {
			missing = append(missing, "JOBS_FILE")
		}
	default:
		invalid = append(invalid, "DATA_SOURCE")
	}

	board := DefaultBoard()
	if t := opt("BOARD_TITLE"); t != "" {
		board.Title = t
	}
	board.PageSize = optInt("BOARD_PAGE_SIZE", board.PageSize)
	board.GridColumns = optInt("BOARD_GRID_COLUMNS", board.GridColumns)
	board.MaxSkills = optInt("BOARD_MAX_SKILLS", board.MaxSkills)
	board.DescriptionLines = optInt("BOARD_DESCRIPTION_LINES", board.DescriptionLines)
	cfg.Board = board

	cfg.Theme = DefaultTheme()

	cfg.Cache = CacheConfig{
		Enabled:       optBool("CACHE_ENABLED", false),
		RedisHost:     opt("REDIS_HOST"),
		RedisPort:     opt("REDIS_PORT"),
		RedisPassword: opt("REDIS_PASSWORD"),
		TTL:           time.Duration(optInt("REDIS_TTL", 600)) * time.Second,
	}
	if cfg.Cache.RedisHost == "" {
		cfg.Cache.RedisHost = "localhost"
	}
	if cfg.Cache.RedisPort == "" {
		cfg.Cache.RedisPort = "6379"
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: time.Duration(optInt("DB_CONNECT_TIMEOUT_SECONDS", 5)) * time.Second,
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 4)),
	}
	if cfg.Data.Source == DataSourcePostgres {
		if cfg.Database.DBHost == "" {
			missing = append(missing, "DB_HOST")
		}
		if cfg.Database.DBName == "" {
			missing = append(missing, "DB_NAME")
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
