package listener

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills empty config", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{}

		assert.True(t, cfg.SetDefaults())
		assert.Equal(t, Config{
			Address:      DefaultAddress,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
		}, *cfg)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Address: ":9090", ReadTimeout: time.Second, WriteTimeout: time.Minute}

		assert.False(t, cfg.SetDefaults())
		assert.Equal(t, ":9090", cfg.Address)
		assert.Equal(t, time.Second, cfg.ReadTimeout)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "valid", cfg: Config{Address: ":8080"}},
		{name: "host and port", cfg: Config{Address: "127.0.0.1:0", ReadTimeout: time.Second}},
		{name: "empty address", cfg: Config{}, wantErr: ErrEmptyAddress},
		{name: "missing port", cfg: Config{Address: "localhost"}, wantErr: ErrInvalidAddress},
		{name: "negative timeout", cfg: Config{Address: ":8080", WriteTimeout: -time.Second}, wantErr: ErrNegativeTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()

			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWithTimeouts(t *testing.T) {
	t.Parallel()

	var cfg Config

	WithTimeouts(time.Second, 2*time.Second)(&cfg)

	assert.Equal(t, time.Second, cfg.ReadTimeout)
	assert.Equal(t, 2*time.Second, cfg.WriteTimeout)
}
