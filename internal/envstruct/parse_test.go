package envstruct

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPopulate(t *testing.T) {
	lookupEnv := func(key string) (string, bool) {
		switch key {
		case "CLUIFY_ADDR":
			return "localhost:4000", true
		default:
			return "", false
		}
	}

	t.Run("set from environment", func(t *testing.T) {
		var cfg struct {
			Addr string `env:"CLUIFY_ADDR"`
		}
		require.NoError(t, Populate(&cfg, lookupEnv))
		require.Equal(t, "localhost:4000", cfg.Addr)
	})

	t.Run("fallback to default", func(t *testing.T) {
		var cfg struct {
			SQLiteURL string `env:"CLUIFY_SQLITE_URL" envDefault:"./cluify.sqlite"`
		}
		require.NoError(t, Populate(&cfg, lookupEnv))
		require.Equal(t, "./cluify.sqlite", cfg.SQLiteURL)
	})

	t.Run("missing without default", func(t *testing.T) {
		var cfg struct {
			Missing string `env:"CLUIFY_MISSING"`
		}
		err := Populate(&cfg, lookupEnv)
		require.ErrorIs(t, err, ErrEnvNotSet)
	})

	t.Run("not a pointer", func(t *testing.T) {
		var cfg struct {
			Addr string `env:"CLUIFY_ADDR"`
		}
		err := Populate(cfg, lookupEnv)
		require.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("unsupported field type", func(t *testing.T) {
		var cfg struct {
			Port int `env:"CLUIFY_ADDR"`
		}
		err := Populate(&cfg, lookupEnv)
		require.ErrorIs(t, err, ErrInvalidValue)
	})
}
