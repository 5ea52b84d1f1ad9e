package config // package config loads application configuration from environment variables

import (
    "log"      // log is used to report configuration errors and halt execution
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations and costs.
type Config struct {
    Env           string // application environment (e.g. "dev", "prod")
    Port          string // HTTP port to listen on
    DBUser        string // database username
    DBPass        string // database password (optional)
    DBHost        string // database host address
    DBPort        string // database port number
    DBName        string // database name
    JWTSecret     string // secret used to sign JWTs
    TokenTTLHours int    // bearer token time‑to‑live in hours
    BcryptCost    int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  The token TTL
// defaults to 24 hours when TOKEN_TTL_HOURS is unset so that a minimal
// .env only has to provide the database settings and the signing secret.
func Load() Config {
    return Config{
        Env:           getenvDefault("APP_ENV", "dev"),   // environment (dev/test/prod)
        Port:          getenvDefault("APP_PORT", "5000"), // port to bind the HTTP server
        DBUser:        must("DB_USER"),                   // database user
        DBPass:        os.Getenv("DB_PASS"),              // database password (empty allowed)
        DBHost:        must("DB_HOST"),                   // database host
        DBPort:        must("DB_PORT"),                   // database port
        DBName:        must("DB_NAME"),                   // database name
        JWTSecret:     must("JWT_SECRET"),                // secret used for signing JWTs
        TokenTTLHours: intDefault("TOKEN_TTL_HOURS", 24), // TTL for bearer tokens in hours
        BcryptCost:    intDefault("BCRYPT_COST", 10),     // bcrypt cost factor
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// getenvDefault returns the value of an environment variable or a default
// when the variable is unset or empty.
func getenvDefault(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

// intDefault reads an integer environment variable falling back to the
// given default.  A value that fails to parse is a fatal error rather than
// a silent fallback so that misconfiguration is caught at startup.
func intDefault(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n, err := strconv.Atoi(v)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, v)
    }
    return n
}
