package world

// Config holds the world geometry constants.
type Config struct {
	// Size is the side length of the square world; coordinates span [-Size/2, Size/2].
	Size float64 `mapstructure:"size" default:"800000"`
	// SectorSize is the side length of one square sector.
	SectorSize float64 `mapstructure:"sector_size" default:"10000"`
}

// withDefaults fills zero values so an Index can be built from a partial config.
func (c Config) withDefaults() Config {
	if c.Size <= 0 {
		c.Size = 800000
	}
	if c.SectorSize <= 0 {
		c.SectorSize = 10000
	}
	return c
}
