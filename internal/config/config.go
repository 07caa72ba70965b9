package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DefaultPort      = "5000"
	DefaultUserAgent = "CareCompany-App"
	DefaultTimeout   = 10 * time.Second

	// Teto de corpo aceito pelo gateway (JSON e form).
	MaxBodyBytes int64 = 10 << 20
)

// Origens do frontend autorizadas a chamar a API com credenciais.
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"https://carecompany.com.br",
	"https://www.carecompany.com.br",
	"https://planos.carecompany.com.br",
	"https://www.planos.carecompany.com.br",
}

type Config struct {
	Server ServerConfig
	Asaas  AsaasConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
	MaxBodyBytes   int64
}

type AsaasConfig struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	Timeout   time.Duration
}

// IsDevelopment indica se detalhes internos de erro podem ir para o cliente.
// Só vale quando NODE_ENV é exatamente "development"; ausente conta como não.
func (c Config) IsDevelopment() bool {
	return c.Server.Env == EnvDevelopment
}

// EnvName é o nome do ambiente para logs; NODE_ENV ausente aparece como development.
func (c Config) EnvName() string {
	if c.Server.Env == "" {
		return EnvDevelopment
	}
	return c.Server.Env
}

// Load carrega o arquivo .env do ambiente (se existir) e monta a configuração.
func Load() Config {
	loadEnvFile(os.Getenv("NODE_ENV"))
	return FromEnv(os.Getenv)
}

func loadEnvFile(env string) {
	var err error
	if env == EnvProduction {
		err = godotenv.Load(".env.production")
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("⚠️ Arquivo .env não carregado: %v", err)
	}
}

// FromEnv monta a configuração a partir de um lookup de variáveis.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{
		Server: ServerConfig{
			Port:           getOrDefault(getenv, "PORT", DefaultPort),
			Env:            strings.TrimSpace(getenv("NODE_ENV")),
			AllowedOrigins: allowedOrigins(getenv("CORS_ALLOWED_ORIGINS")),
			MaxBodyBytes:   MaxBodyBytes,
		},
		Asaas: AsaasConfig{
			BaseURL:   strings.TrimRight(getenv("ASAAS_BASE_URL"), "/"),
			APIKey:    getenv("ASAAS_API_KEY"),
			UserAgent: getOrDefault(getenv, "ASAAS_USER_AGENT", DefaultUserAgent),
			Timeout:   DefaultTimeout,
		},
	}

	if raw := getenv("ASAAS_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			log.Printf("⚠️ ASAAS_TIMEOUT inválido (%q), usando %s", raw, DefaultTimeout)
		} else {
			cfg.Asaas.Timeout = d
		}
	}

	return cfg
}

// Warnings lista problemas que não impedem o boot mas quebram as chamadas ao Asaas.
func (c Config) Warnings() []string {
	var warnings []string
	if c.Asaas.BaseURL == "" {
		warnings = append(warnings, "ASAAS_BASE_URL não definida")
	}
	if c.Asaas.APIKey == "" {
		warnings = append(warnings, "ASAAS_API_KEY não definida")
	}
	return warnings
}

func getOrDefault(getenv func(string) string, key, fallback string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return fallback
}

func allowedOrigins(extra string) []string {
	origins := append([]string(nil), DefaultAllowedOrigins...)
	for _, o := range strings.Split(extra, ",") {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		origins = append(origins, o)
	}
	return origins
}
