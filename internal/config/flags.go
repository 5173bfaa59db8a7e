package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// originList implements flag.Value for a comma separated list of origins.
type originList []string

// String returns the list joined by commas.
func (o *originList) String() string {
	return strings.Join(*o, ",")
}

// Set splits s by commas and drops empty entries.
func (o *originList) Set(s string) error {
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			*o = append(*o, origin)
		}
	}
	return nil
}

// ParseFlags parses all configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-host listen host
//	-p listen port
//	-d MongoDB connection string
//	-db-name database name
//	-db-timeout connect timeout (e.g., "10s")
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "168h")
//	-bcrypt-cost bcrypt cost factor
//	-request-timeout request timeout (e.g., "30s")
//	-cors comma separated CORS allow-list
//	-static static files directory
//	-no-metrics disable GET /metrics
//	-log-level zerolog level name
func ParseFlags(args []string) (*StructuredConfig, error) {
	var host, port string
	var connectionURI, dbName string
	var dbTimeout time.Duration
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var bcryptCost int
	var requestTimeout time.Duration
	var origins originList
	var staticDir string
	var noMetrics bool
	var logLevel string

	fs := flag.NewFlagSet("movie-api", flag.ContinueOnError)

	fs.StringVar(&host, "host", "", "Listen host")
	fs.StringVar(&port, "p", "", "Listen port")
	fs.StringVar(&connectionURI, "d", "", "MongoDB connection string")
	fs.StringVar(&dbName, "db-name", "", "Database name")
	fs.DurationVar(&dbTimeout, "db-timeout", 0, "Database connect timeout (e.g., 10s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "bcrypt cost factor")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Var(&origins, "cors", "Comma separated CORS allowed origins")
	fs.StringVar(&staticDir, "static", "", "Static files directory")
	fs.BoolVar(&noMetrics, "no-metrics", false, "Disable the metrics endpoint")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			PasswordHashCost: bcryptCost,
		},
		Storage: Storage{
			DB: DB{
				URI:            connectionURI,
				Name:           dbName,
				ConnectTimeout: dbTimeout,
			},
		},
		Server: Server{
			Host:            host,
			Port:            port,
			RequestTimeout:  requestTimeout,
			AllowedOrigins:  origins,
			StaticDir:       staticDir,
			MetricsDisabled: noMetrics,
		},
		LogLevel:     logLevel,
		JSONFilePath: jsonConfigPath,
	}, nil
}
