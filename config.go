package taskhub

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, populated from the environment.
// An empty RedisAddr leaves the login rate limiter disabled.
type Config struct {
	Addr        string   `env:"TASKHUB_ADDR" envDefault:":8080"`
	CORSOrigins []string `env:"TASKHUB_CORS_ORIGINS" envDefault:"http://localhost:3000"`

	JWTSecret string        `env:"TASKHUB_JWT_SECRET" envDefault:"devsecret"`
	JWTTTL    time.Duration `env:"TASKHUB_JWT_TTL" envDefault:"72h"`

	RedisAddr        string        `env:"TASKHUB_REDIS_ADDR"`
	LoginMaxAttempts int           `env:"TASKHUB_LOGIN_MAX_ATTEMPTS" envDefault:"10"`
	LoginCooldown    time.Duration `env:"TASKHUB_LOGIN_COOLDOWN" envDefault:"1m"`
	LoginIPThrottle  bool          `env:"TASKHUB_LOGIN_IP_THROTTLE" envDefault:"false"`
}

// ParseConfig loads [Config] from environment variables.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
