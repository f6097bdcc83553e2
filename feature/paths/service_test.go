package paths_test

import (
	"context"
	"testing"

	"path-cache/core/store"
	"path-cache/core/world"
	"path-cache/feature/paths"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestPreBakeFromDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	rows := sqlmock.NewRows([]string{"name", "x", "y", "z"})
	rows.AddRow("harbor", 100.0, 100.0, 0.0)
	rows.AddRow("keep", 9000.0, 9000.0, 0.0)
	mock.ExpectQuery("SELECT `name`,`x`,`y`,`z` FROM `path_locations`").WillReturnRows(rows)

	st := store.New(store.Config{}, lineGen{}, zap.NewNop())
	index := world.NewIndex(world.Config{})
	svc := paths.NewService(st, index, gormDB, t.TempDir(), "path_locations", zap.NewNop())

	inserted, err := svc.PreBake(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, inserted)
	assert.Equal(t, 2, st.Len())
}

func TestResolveUsesCache(t *testing.T) {
	st := store.New(store.Config{}, lineGen{}, zap.NewNop())
	index := world.NewIndex(world.Config{})
	svc := paths.NewService(st, index, nil, t.TempDir(), "path_locations", zap.NewNop())

	start := world.Position{X: 10, Y: 20}
	end := world.Position{X: 3000, Y: 4000}

	first := svc.Resolve(start, end, true)
	second := svc.Resolve(start, end, true)

	assert.Equal(t, first.Key, second.Key)
	assert.Equal(t, 1, st.Len())
	assert.GreaterOrEqual(t, second.UseCount, int32(2))
}
