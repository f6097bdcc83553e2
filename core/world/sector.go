package world

// Sector is one square partition of the world. Sectors are created once by
// NewIndex and never change afterwards.
type Sector struct {
	// ID is the sector's index in row-major grid order.
	ID int `json:"id"`
	// GX is the sector's grid column.
	GX int `json:"gx"`
	// GY is the sector's grid row.
	GY int `json:"gy"`
	// Center is the sector's center position (Z is always 0).
	Center Position `json:"center"`
	// Neighbors holds the ids of the von Neumann neighbors (up/down/left/right).
	Neighbors []int `json:"neighbors"`
}

// Index is the static sector grid. It is safe for concurrent use.
type Index struct {
	cfg     Config
	half    float64
	perAxis int
	sectors []Sector
}

// NewIndex partitions the world into sectors and precomputes adjacency.
func NewIndex(cfg Config) *Index {
	cfg = cfg.withDefaults()
	perAxis := int(cfg.Size / cfg.SectorSize)
	if perAxis < 1 {
		perAxis = 1
	}

	idx := &Index{
		cfg:     cfg,
		half:    cfg.Size / 2,
		perAxis: perAxis,
		sectors: make([]Sector, perAxis*perAxis),
	}

	for gy := 0; gy < perAxis; gy++ {
		for gx := 0; gx < perAxis; gx++ {
			id := gy*perAxis + gx
			s := Sector{
				ID: id,
				GX: gx,
				GY: gy,
				Center: Position{
					X: -idx.half + (float64(gx)+0.5)*cfg.SectorSize,
					Y: -idx.half + (float64(gy)+0.5)*cfg.SectorSize,
				},
			}
			if gx > 0 {
				s.Neighbors = append(s.Neighbors, id-1)
			}
			if gx < perAxis-1 {
				s.Neighbors = append(s.Neighbors, id+1)
			}
			if gy > 0 {
				s.Neighbors = append(s.Neighbors, id-perAxis)
			}
			if gy < perAxis-1 {
				s.Neighbors = append(s.Neighbors, id+perAxis)
			}
			idx.sectors[id] = s
		}
	}

	return idx
}

// Count returns the total number of sectors.
func (i *Index) Count() int {
	return len(i.sectors)
}

// PerAxis returns the number of sectors along one axis.
func (i *Index) PerAxis() int {
	return i.perAxis
}

// Sectors returns the full sector list in id order.
func (i *Index) Sectors() []Sector {
	return i.sectors
}

// Sector returns the sector with the given id.
func (i *Index) Sector(id int) Sector {
	return i.sectors[id]
}

// SectorAt maps a position to its sector id. Out-of-bounds positions are
// clamped to the nearest valid sector; there is no error case.
func (i *Index) SectorAt(p Position) int {
	gx := i.clampAxis(int((p.X + i.half) / i.cfg.SectorSize))
	gy := i.clampAxis(int((p.Y + i.half) / i.cfg.SectorSize))
	return gy*i.perAxis + gx
}

// Neighbors returns the von Neumann neighbor ids of a sector.
func (i *Index) Neighbors(id int) []int {
	return i.sectors[id].Neighbors
}

// ExitPoint returns the point on the shared edge between two adjacent sectors
// that is closest to dest. This is the greedy boundary choice used when
// assembling a route through a sector sequence; it is local, not globally
// optimal.
func (i *Index) ExitPoint(from, to int, dest Position) Position {
	a := i.sectors[from]
	b := i.sectors[to]

	minX := -i.half + float64(a.GX)*i.cfg.SectorSize
	minY := -i.half + float64(a.GY)*i.cfg.SectorSize

	switch {
	case b.GX == a.GX+1: // exit right
		return Position{
			X: minX + i.cfg.SectorSize,
			Y: clamp(dest.Y, minY, minY+i.cfg.SectorSize),
			Z: dest.Z,
		}
	case b.GX == a.GX-1: // exit left
		return Position{
			X: minX,
			Y: clamp(dest.Y, minY, minY+i.cfg.SectorSize),
			Z: dest.Z,
		}
	case b.GY == a.GY+1: // exit up
		return Position{
			X: clamp(dest.X, minX, minX+i.cfg.SectorSize),
			Y: minY + i.cfg.SectorSize,
			Z: dest.Z,
		}
	default: // exit down
		return Position{
			X: clamp(dest.X, minX, minX+i.cfg.SectorSize),
			Y: minY,
			Z: dest.Z,
		}
	}
}

func (i *Index) clampAxis(v int) int {
	if v < 0 {
		return 0
	}
	if v >= i.perAxis {
		return i.perAxis - 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
