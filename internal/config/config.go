package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

// ServiceAccount holds the split service-account fields. Its json form is a
// valid Google credentials file.
type ServiceAccount struct {
	Type                    string `env:"FIREBASE_TYPE" json:"type"`
	ProjectId               string `env:"FIREBASE_PROJECT_ID" json:"project_id"`
	PrivateKeyId            string `env:"FIREBASE_PRIVATE_KEY_ID" json:"private_key_id"`
	PrivateKey              string `env:"FIREBASE_PRIVATE_KEY" json:"private_key"`
	ClientEmail             string `env:"FIREBASE_CLIENT_EMAIL" json:"client_email"`
	ClientId                string `env:"FIREBASE_CLIENT_ID" json:"client_id"`
	AuthUri                 string `env:"FIREBASE_AUTH_URI" json:"auth_uri"`
	TokenUri                string `env:"FIREBASE_TOKEN_URI" json:"token_uri"`
	AuthProviderX509CertUrl string `env:"FIREBASE_AUTH_PROVIDER_X509_CERT_URL" json:"auth_provider_x509_cert_url"`
	ClientX509CertUrl       string `env:"FIREBASE_CLIENT_X509_CERT_URL" json:"client_x509_cert_url"`
}

type Firebase struct {
	ServiceAccount
	CredentialsJSON string        `env:"FIREBASE_CREDENTIALS_JSON"`
	CredentialsFile string        `env:"FIREBASE_CREDENTIALS_FILE" envDefault:"serviceAccountKey.json"`
	Project         string        `env:"FIREBASE_PROJECT"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
}

type Server struct {
	Port             string        `env:"PORT" envDefault:"8000"`
	Debug            bool          `env:"DEBUG" envDefault:"false"`
	CORSAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	HealthTimeout    time.Duration `env:"HEALTH_TIMEOUT" envDefault:"2s"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Server
	Firebase
	Log
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func LoadConfigOrPanic() Config {
	// a missing .env is the normal case outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	config, err := Load()
	if err != nil {
		panic(err)
	}
	return config
}

// Load parses the process environment.
func Load() (Config, error) {
	var config *Config = new(Config)
	if err := env.Parse(config); err != nil {
		return Config{}, err
	}

	if err := config.normalize(); err != nil {
		return Config{}, err
	}
	return *config, nil
}

func (c *Config) normalize() error {

	if c.Firebase.PrivateKey != "" {
		decodedBytes, err := base64.StdEncoding.DecodeString(c.Firebase.PrivateKey)
		if err != nil {
			// never echo the key itself
			return fmt.Errorf("FIREBASE_PRIVATE_KEY is not valid base64")
		}
		c.Firebase.PrivateKey = string(decodedBytes)
		c.Firebase.PrivateKey = strings.ReplaceAll(c.Firebase.PrivateKey, "\\n", "\n")
	}

	origins := make([]string, 0, len(c.CORSAllowOrigins))
	for _, o := range c.CORSAllowOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c.CORSAllowOrigins = origins

	c.Port = strings.TrimPrefix(c.Port, ":")

	if c.ReadTimeout <= 0 {
		c.ReadTimeout = time.Second * 10
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = time.Second * 15
	}
	if c.HealthTimeout <= 0 {
		c.HealthTimeout = time.Second * 2
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = time.Second * 5
	}

	return nil
}
