package producttype

// Config holds the product-type sync settings.
type Config struct {
	// OmitEmptyString treats empty base-field strings as undefined.
	OmitEmptyString bool `mapstructure:"omit_empty_string" default:"false"`
	// SnapshotPrefix is the storage prefix snapshots live under.
	SnapshotPrefix string `mapstructure:"snapshot_prefix" default:"product-types"`
	// Verify replays computed actions against previous before responding.
	Verify bool `mapstructure:"verify" default:"true"`
	// RecordPlans persists snapshot plans when a database is connected.
	RecordPlans bool `mapstructure:"record_plans" default:"true"`
}
