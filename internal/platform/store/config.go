package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// Guard/boot knobs:
	ConnectRetries int           // ping attempts before giving up, default 20
	PingTimeout    time.Duration // per attempt, default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled    bool
	URL        string
	ClientName string
	ClientTag  string
}
