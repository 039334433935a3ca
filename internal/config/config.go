package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port        int    `yaml:"port"`
	GinMode     string `yaml:"gin_mode"`
	FrontendURL string `yaml:"frontend_url"`
}

type SecurityConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type VerificationConfig struct {
	CodeLength int    `yaml:"code_length"`
	CodeTTL    string `yaml:"code_ttl"`
	RecordTTL  string `yaml:"record_ttl"`
}

type SessionConfig struct {
	TTL            string `yaml:"ttl"`
	CookieName     string `yaml:"cookie_name"`
	ExclusiveRoles bool   `yaml:"exclusive_roles"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type OAuthProviderConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURI  string `yaml:"redirect_uri"`
	AuthURL      string `yaml:"auth_url"`
	TokenURL     string `yaml:"token_url"`
	ProfileURL   string `yaml:"profile_url"`
}

type DialogflowConfig struct {
	ProjectID       string `yaml:"project_id"`
	CredentialsFile string `yaml:"credentials_file"`
	LanguageCode    string `yaml:"language_code"`
}

type UploadConfig struct {
	Dir      string `yaml:"dir"`
	BasePath string `yaml:"base_path"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App          AppConfig           `yaml:"app"`
	Security     SecurityConfig      `yaml:"security"`
	Database     DatabaseConfig      `yaml:"database"`
	Redis        RedisConfig         `yaml:"redis"`
	Verification VerificationConfig  `yaml:"verification"`
	Session      SessionConfig       `yaml:"session"`
	SMTP         SMTPConfig          `yaml:"smtp"`
	Kakao        OAuthProviderConfig `yaml:"kakao"`
	Naver        OAuthProviderConfig `yaml:"naver"`
	Dialogflow   DialogflowConfig    `yaml:"dialogflow"`
	Uploads      UploadConfig        `yaml:"uploads"`
	Casbin       CasbinConfig        `yaml:"casbin"`
}

type Config struct {
	Port                 string
	GinMode              string
	FrontendURL          string
	BcryptCost           int
	DSN                  string
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	VerificationLength   int
	VerificationTTL      time.Duration
	VerificationRecTTL   time.Duration
	SessionTTL           time.Duration
	SessionCookie        string
	SessionExclusive     bool
	SMTPHost             string
	SMTPPort             int
	SMTPUsername         string
	SMTPPassword         string
	SMTPFrom             string
	Kakao                OAuthProviderConfig
	Naver                OAuthProviderConfig
	DialogflowProject    string
	DialogflowCredsFile  string
	DialogflowLanguage   string
	UploadDir            string
	UploadBasePath       string
	CasbinModelPath      string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	codeTTL, err := time.ParseDuration(configFile.Verification.CodeTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid verification code TTL: %w", err)
	}

	recTTL, err := time.ParseDuration(configFile.Verification.RecordTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid verification record TTL: %w", err)
	}

	sessTTL, err := time.ParseDuration(configFile.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	cfg := &Config{
		Port:                fmt.Sprintf("%d", configFile.App.Port),
		GinMode:             configFile.App.GinMode,
		FrontendURL:         env("FRONTEND_URL", configFile.App.FrontendURL),
		BcryptCost:          configFile.Security.BcryptCost,
		DSN:                 env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:           env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:       configFile.Redis.Password,
		RedisDB:             configFile.Redis.DB,
		VerificationLength:  configFile.Verification.CodeLength,
		VerificationTTL:     codeTTL,
		VerificationRecTTL:  recTTL,
		SessionTTL:          sessTTL,
		SessionCookie:       configFile.Session.CookieName,
		SessionExclusive:    configFile.Session.ExclusiveRoles,
		SMTPHost:            env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:            configFile.SMTP.Port,
		SMTPUsername:        env("SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword:        env("SMTP_PASSWORD", configFile.SMTP.Password),
		SMTPFrom:            configFile.SMTP.From,
		Kakao:               configFile.Kakao,
		Naver:               configFile.Naver,
		DialogflowProject:   configFile.Dialogflow.ProjectID,
		DialogflowCredsFile: env("GOOGLE_APPLICATION_CREDENTIALS", configFile.Dialogflow.CredentialsFile),
		DialogflowLanguage:  configFile.Dialogflow.LanguageCode,
		UploadDir:           configFile.Uploads.Dir,
		UploadBasePath:      configFile.Uploads.BasePath,
		CasbinModelPath:     configFile.Casbin.ModelPath,
	}

	if cfg.SessionCookie == "" {
		cfg.SessionCookie = "ALBAING_SESSION"
	}
	if cfg.VerificationLength == 0 {
		cfg.VerificationLength = 6
	}
	if cfg.Kakao.ClientID == "" {
		cfg.Kakao.ClientID = os.Getenv("KAKAO_CLIENT_ID")
	}
	if cfg.Kakao.ClientSecret == "" {
		cfg.Kakao.ClientSecret = os.Getenv("KAKAO_CLIENT_SECRET")
	}
	if cfg.Naver.ClientID == "" {
		cfg.Naver.ClientID = os.Getenv("NAVER_CLIENT_ID")
	}
	if cfg.Naver.ClientSecret == "" {
		cfg.Naver.ClientSecret = os.Getenv("NAVER_CLIENT_SECRET")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
