package pathkit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Separator used when a path is given as a single string
	Separator string `env:"PATHKIT_SEPARATOR,default:."`

	// StrictTypes enables strict container type checking by default
	StrictTypes bool `env:"PATHKIT_STRICT_TYPES,default:false"`

	// CacheEnabled toggles the parsed-path cache
	CacheEnabled bool `env:"PATHKIT_CACHE_ENABLED,default:true"`

	// CacheSize bounds the number of parsed paths kept in the cache
	CacheSize int `env:"PATHKIT_CACHE_SIZE,default:128"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
