package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingua/internal/model"
)

func TestSeedUsers_Idempotent(t *testing.T) {
	gormDB, err := NewSQLite("file:seedtest?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, Migrate(gormDB))

	// Seeding repeatedly must neither fail nor duplicate the defaults.
	require.NoError(t, SeedUsers(gormDB))
	require.NoError(t, SeedUsers(gormDB))

	var users []model.User
	require.NoError(t, gormDB.Order("email").Find(&users).Error)
	require.Len(t, users, 2)

	assert.Equal(t, "admin@language.com", users[0].Email)
	assert.Equal(t, model.RoleAdmin, users[0].Role)
	assert.Equal(t, "admin123", users[0].Password)

	assert.Equal(t, "student@language.com", users[1].Email)
	assert.Equal(t, model.RoleStudent, users[1].Role)
}

func TestMigrate_Rerunnable(t *testing.T) {
	gormDB, err := NewSQLite("file:migratetest?mode=memory&cache=shared")
	require.NoError(t, err)

	require.NoError(t, Migrate(gormDB))
	require.NoError(t, Migrate(gormDB))

	for _, table := range []string{"users", "messages", "course_registrations"} {
		assert.True(t, gormDB.Migrator().HasTable(table), "missing table %s", table)
	}
}
