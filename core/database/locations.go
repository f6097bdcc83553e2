package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"path-cache/core/store"
	"path-cache/core/world"
)

type locationRow struct {
	Name string  `gorm:"column:name"`
	X    float64 `gorm:"column:x"`
	Y    float64 `gorm:"column:y"`
	Z    float64 `gorm:"column:z"`
}

// Locations reads the named points of interest used for pre-baking.
// Rows without a name are skipped.
func Locations(ctx context.Context, db *gorm.DB, table string) ([]store.Location, error) {
	var rows []locationRow

	err := db.WithContext(ctx).
		Table(table).
		Select("name", "x", "y", "z").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load locations from %s: %w", table, err)
	}

	locations := make([]store.Location, 0, len(rows))
	for _, row := range rows {
		if row.Name == "" {
			continue
		}
		locations = append(locations, store.Location{
			Name: row.Name,
			Pos:  world.Position{X: row.X, Y: row.Y, Z: row.Z},
		})
	}

	return locations, nil
}
