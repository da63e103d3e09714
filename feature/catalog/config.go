package catalog

// Config holds configuration for the remote catalog provider.
type Config struct {
	// Endpoint is the GraphQL endpoint serving the catalog.
	Endpoint string `mapstructure:"endpoint" default:"https://api.tarkov.dev/graphql"`
	// TimeoutSeconds bounds every catalog fetch. Expiry is treated as a
	// swallowed sync failure, never a crash.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
}
