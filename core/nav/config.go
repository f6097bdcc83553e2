package nav

// Config holds the tunables of the local search and route assembly.
type Config struct {
	// StepSize is the grid step of the local A* search, in world units.
	StepSize float64 `mapstructure:"step_size" default:"50"`
	// ProximityThreshold is the distance at which the search considers the
	// goal reached. The search may stop short of the literal end point.
	ProximityThreshold float64 `mapstructure:"proximity_threshold" default:"100"`
	// MaxIterations bounds the number of nodes the A* search may expand
	// before degrading to a straight interpolated path.
	MaxIterations int `mapstructure:"max_iterations" default:"20000"`
	// SimplifyMaxSegment caps the length of a straight segment the simplifier
	// may create by dropping intermediate waypoints.
	SimplifyMaxSegment float64 `mapstructure:"simplify_max_segment" default:"10000"`
}

func (c Config) withDefaults() Config {
	if c.StepSize <= 0 {
		c.StepSize = 50
	}
	if c.ProximityThreshold <= 0 {
		c.ProximityThreshold = 100
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = 20000
	}
	if c.SimplifyMaxSegment <= 0 {
		c.SimplifyMaxSegment = 10000
	}
	return c
}
