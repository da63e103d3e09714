package legacy

// Config holds configuration for the legacy migration and profile exports.
type Config struct {
	// BlobPath is the well-known location of the previous storage
	// generation's flat JSON blob.
	BlobPath string `mapstructure:"blob_path" default:"hideout-legacy.json"`
}
