package store

// Config holds configuration for the path store.
type Config struct {
	// HotCacheSize is the capacity of the LRU hot cache in front of the
	// authoritative map.
	HotCacheSize int `mapstructure:"hot_cache_size" default:"256"`
	// ApproxRadius is the search radius for approximate matches: a cached
	// path qualifies when both its endpoints are within this distance of the
	// query's.
	ApproxRadius float64 `mapstructure:"approx_radius" default:"500"`
	// EventBuffer is the capacity of the outbound channel carrying freshly
	// generated paths to the sync broadcaster. Publishes are dropped (and
	// counted) when the buffer is full.
	EventBuffer int `mapstructure:"event_buffer" default:"64"`
	// DataDir is the directory holding the persisted snapshot files.
	DataDir string `mapstructure:"data_dir" default:"data"`
}

func (c Config) withDefaults() Config {
	if c.HotCacheSize <= 0 {
		c.HotCacheSize = 256
	}
	if c.ApproxRadius <= 0 {
		c.ApproxRadius = 500
	}
	if c.EventBuffer <= 0 {
		c.EventBuffer = 64
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	return c
}
