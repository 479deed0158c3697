package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrDatabaseConfigMissing indica que nem DATABASE_URL nem os parâmetros DB_* foram informados
var ErrDatabaseConfigMissing = errors.New(
	"configuração do banco ausente: defina DATABASE_URL ou DB_HOST, DB_USER, DB_PASSWORD e DB_NAME",
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Cors     Cors     `mapstructure:",squash"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN            string        `mapstructure:"-"`
	URL            string        `mapstructure:"database_url"`
	Host           string        `mapstructure:"db_host"`
	Port           string        `mapstructure:"db_port"`
	User           string        `mapstructure:"db_user"`
	Password       string        `mapstructure:"db_password"`
	Name           string        `mapstructure:"db_name"`
	SSL            bool          `mapstructure:"db_ssl"`
	MaxOpenConns   int           `mapstructure:"db_max_open_conns"`
	MaxIdleTime    time.Duration `mapstructure:"db_max_idle_time"`
	ConnectTimeout time.Duration `mapstructure:"db_connect_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "3000")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	// DATABASE_URL tem precedência sobre os parâmetros individuais
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_NAME", "")
	viper.SetDefault("DB_SSL", false)

	viper.SetDefault("DB_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DB_MAX_IDLE_TIME", "30s")
	viper.SetDefault("DB_CONNECT_TIMEOUT", "10s")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Cors.AllowedOrigins = compact(config.Cors.AllowedOrigins)

	location, err := time.LoadLocation(config.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", config.App.Timezone, err)
	}
	config.App.Location = location

	dsn, err := config.Database.BuildDSN(config.App.Timezone)
	if err != nil {
		return nil, err
	}
	config.Database.DSN = dsn

	return config, nil
}

// BuildDSN monta a string de conexão do lib/pq a partir de DATABASE_URL ou dos parâmetros DB_*.
// O parâmetro timezone é repassado ao servidor para que timestamps voltem no fuso do dashboard.
func (d Database) BuildDSN(timezone string) (string, error) {
	sslMode := "disable"
	if d.SSL {
		sslMode = "require"
	}

	connectTimeout := int(d.ConnectTimeout.Seconds())
	if connectTimeout <= 0 {
		connectTimeout = 10
	}

	if d.URL != "" {
		u, err := url.Parse(d.URL)
		if err != nil {
			return "", fmt.Errorf("DATABASE_URL inválida: %w", err)
		}

		query := u.Query()
		if query.Get("sslmode") == "" {
			query.Set("sslmode", sslMode)
		}
		if query.Get("connect_timeout") == "" {
			query.Set("connect_timeout", fmt.Sprint(connectTimeout))
		}
		if query.Get("timezone") == "" && timezone != "" {
			query.Set("timezone", timezone)
		}
		u.RawQuery = query.Encode()

		return u.String(), nil
	}

	if d.Host == "" || d.User == "" || d.Password == "" || d.Name == "" {
		return "", ErrDatabaseConfigMissing
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%s", d.Host, d.Port),
		Path:   "/" + d.Name,
	}

	query := url.Values{}
	query.Set("sslmode", sslMode)
	query.Set("connect_timeout", fmt.Sprint(connectTimeout))
	if timezone != "" {
		query.Set("timezone", timezone)
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}

func compact(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value != "" {
			result = append(result, value)
		}
	}
	return result
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
