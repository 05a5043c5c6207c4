package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start.
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	OtpTTL       time.Duration `envconfig:"otp_ttl" default:"2m"`
	OtpSingleUse bool          `envconfig:"otp_single_use" default:"true"`
	// OtpEchoEnabled returns issued codes in HTTP responses, there is no
	// email delivery so disabling it leaves the code in debug logs only
	OtpEchoEnabled bool `envconfig:"otp_echo_enabled" default:"true"`

	BcryptCost int `envconfig:"bcrypt_cost" default:"12"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
}
