package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Meta          Meta          `mapstructure:",squash"`
	CRM           CRM           `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	HierarchySync HierarchySync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Meta guarda credenciais estáticas, usadas quando o agente não está ligado a um CRM
type Meta struct {
	BaseURL     string        `mapstructure:"meta_base_url"`
	URL         string        `mapstructure:"-"`
	Version     string        `mapstructure:"meta_version"`
	AccessToken string        `mapstructure:"meta_access_token"`
	AppID       string        `mapstructure:"meta_app_id"`
	AppSecret   string        `mapstructure:"meta_app_secret"`
	AdAccountID string        `mapstructure:"meta_ad_account_id"`
	Timeout     time.Duration `mapstructure:"meta_timeout"`
}

type CRM struct {
	BaseURL    string        `mapstructure:"crm_base_url"`
	Timeout    time.Duration `mapstructure:"crm_timeout"`
	AgentID    string        `mapstructure:"agent_id"`
	AgentToken string        `mapstructure:"agent_token"`
}

// Enabled indica se as credenciais devem ser puxadas do CRM
func (c CRM) Enabled() bool {
	return c.BaseURL != "" && c.AgentID != "" && c.AgentToken != ""
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type HierarchySync struct {
	CronSchedule string `mapstructure:"hierarchy_sync_cron"`
	Limit        int    `mapstructure:"hierarchy_sync_limit"`
	DatePreset   string `mapstructure:"hierarchy_sync_date_preset"`
	Enabled      bool   `mapstructure:"hierarchy_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8001)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/meta_agent")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v20.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_AD_ACCOUNT_ID", "")
	viper.SetDefault("META_TIMEOUT", "30s")

	viper.SetDefault("CRM_BASE_URL", "")
	viper.SetDefault("CRM_TIMEOUT", "10s")
	viper.SetDefault("AGENT_ID", "")
	viper.SetDefault("AGENT_TOKEN", "")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("HIERARCHY_SYNC_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("HIERARCHY_SYNC_LIMIT", 25)
	viper.SetDefault("HIERARCHY_SYNC_DATE_PRESET", "last_30d")
	viper.SetDefault("HIERARCHY_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

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

	config.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimRight(config.Meta.BaseURL, "/"), config.Meta.Version)
	config.Meta.AdAccountID = strings.TrimPrefix(config.Meta.AdAccountID, "act_")

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carrega o .env do diretório atual ou de um dos diretórios pais
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
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
