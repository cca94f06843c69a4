// Package constants provides shared constants for the mortgage-payoff application.
package constants

// Date layouts used for persistence and display.
const (
	// DateLayout is the ISO-8601 calendar date used in CSV files and the API.
	DateLayout = "2006-01-02"

	// MonthLayout is the short month label used in schedule tables.
	MonthLayout = "2006-01"

	// MonthYearLayout is the long label used for payoff dates.
	MonthYearLayout = "January 2006"
)

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// DecimalPlaces is the number of fraction digits kept for currency values
	DecimalPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MaxPeriods is the longest schedule the engine will simulate
	MaxPeriods = 100000
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatSummary prints only the payoff summary
	OutputFormatSummary = "summary"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix viper uses for environment overrides
	EnvPrefix = "PAYOFF"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for schedule CSVs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Session store defaults
const (
	// SessionBackendMemory keeps sessions in process memory
	SessionBackendMemory = "memory"

	// SessionBackendRedis keeps sessions in Redis
	SessionBackendRedis = "redis"

	// DefaultSessionKeyPrefix namespaces session keys in Redis
	DefaultSessionKeyPrefix = "mortgage-payoff:session:"

	// DefaultSessionTTL is how long an idle session survives, as a duration string
	DefaultSessionTTL = "24h"
)
