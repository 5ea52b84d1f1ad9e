package config

// This file defines a Redis client constructor for the application.  Redis
// backs the login/register rate limiter and the per-user todo list cache.
// The client parameters are loaded from environment variables.  If the
// connection fails during startup, the function returns nil and callers
// degrade gracefully by disabling caching and rate limiting.

import (
    "context"
    "crypto/tls"
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client using environment variables.
// Supported variables are:
//   REDIS_HOST and REDIS_PORT – hostname and port of the Redis server
//   REDIS_ADDR – host:port shorthand (takes precedence if both host/port and addr are set)
//   REDIS_PASSWORD – optional password
//   REDIS_DB – database number (default 0)
//   REDIS_TLS – enable TLS when "true" or "1"; certificates are verified
//   REDIS_TLS_SKIP_VERIFY – when "true" or "1", skip certificate
//   verification (self-signed dev setups only)
// The returned client may be nil if a connection cannot be established.
func NewRedisClient() *redis.Client {
    host := os.Getenv("REDIS_HOST")
    port := os.Getenv("REDIS_PORT")
    addr := os.Getenv("REDIS_ADDR")
    if host != "" && port != "" {
        addr = host + ":" + port
    }
    if addr == "" {
        addr = "localhost:6379"
    }
    pwd := os.Getenv("REDIS_PASSWORD")
    dbNum := 0
    if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
        if n, err := strconv.Atoi(dbStr); err == nil {
            dbNum = n
        }
    }
    tlsConf := redisTLSConfig()
    client := redis.NewClient(&redis.Options{
        Addr:      addr,
        Password:  pwd,
        DB:        dbNum,
        TLSConfig: tlsConf,
    })
    // Ping the server with a short timeout.  Return nil on failure.
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil
    }
    return client
}

// redisTLSConfig builds the TLS settings from the environment.  TLS off
// returns nil; TLS on verifies the server certificate unless skipping is
// explicitly requested with its own variable.
func redisTLSConfig() *tls.Config {
    if !boolEnv("REDIS_TLS") {
        return nil
    }
    return &tls.Config{InsecureSkipVerify: boolEnv("REDIS_TLS_SKIP_VERIFY")}
}

func boolEnv(key string) bool {
    v := os.Getenv(key)
    return strings.EqualFold(v, "true") || v == "1"
}
