package config

import (
	"github.com/utaipei/fundraising/pkg/httpserver"
	"github.com/utaipei/fundraising/pkg/ratelimiter"
)

// App is the fundraising service configuration.
type App struct {
	Env           string `env:"APP_ENV" envDefault:"development"`
	Name          string `env:"APP_NAME" envDefault:"fundraise"`
	LogLevel      string `env:"LOG_LEVEL"`
	LogFormat     string `env:"LOG_FORMAT"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"https://give.utaipei.edu.tw"`
	DefaultLang   string `env:"DEFAULT_LANG" envDefault:"zh-TW"`
	QRCodeSize    int    `env:"QR_CODE_SIZE" envDefault:"256"`
	QRCacheSize   int    `env:"QR_CACHE_SIZE" envDefault:"128"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}

// IsProduction reports whether APP_ENV names production.
func (a App) IsProduction() bool {
	return a.Env == "production" || a.Env == "prod"
}
