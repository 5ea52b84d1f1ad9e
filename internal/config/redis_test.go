package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisTLSConfig(t *testing.T) {
	t.Run("tls off", func(t *testing.T) {
		t.Setenv("REDIS_TLS", "")
		t.Setenv("REDIS_TLS_SKIP_VERIFY", "")
		assert.Nil(t, redisTLSConfig())
	})

	t.Run("tls on verifies by default", func(t *testing.T) {
		t.Setenv("REDIS_TLS", "true")
		t.Setenv("REDIS_TLS_SKIP_VERIFY", "")
		conf := redisTLSConfig()
		require.NotNil(t, conf)
		assert.False(t, conf.InsecureSkipVerify)
	})

	t.Run("skip only when explicitly requested", func(t *testing.T) {
		t.Setenv("REDIS_TLS", "1")
		t.Setenv("REDIS_TLS_SKIP_VERIFY", "true")
		conf := redisTLSConfig()
		require.NotNil(t, conf)
		assert.True(t, conf.InsecureSkipVerify)
	})
}
