package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ecomovil/platform/internal/iam/domain"
	"github.com/ecomovil/platform/pkg/errors"
	"github.com/ecomovil/platform/pkg/security"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// One database per test so tests stay isolated even when run in parallel.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestMigrateSeedsPlatformRoles(t *testing.T) {
	db := newTestDB(t)
	roles := NewRoleRepository(db)
	ctx := context.Background()

	for _, name := range []string{security.RoleUser, security.RoleAdmin} {
		role, err := roles.FindByName(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, name, role.Name)
	}

	_, err := roles.FindByName(ctx, "ROLE_WIZARD")
	assert.True(t, errors.Is(err, errors.ErrEntityNotFound))
}

func TestUserRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	roles := NewRoleRepository(db)
	ctx := context.Background()

	userRole, err := roles.FindByName(ctx, security.RoleUser)
	require.NoError(t, err)

	user := &domain.User{
		Username: "alice",
		Password: "hashed-password",
		Email:    "alice@example.com",
		IsActive: true,
		Roles:    []domain.Role{*userRole},
	}
	require.NoError(t, users.Save(ctx, user))
	require.NotZero(t, user.ID)

	found, err := users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, []string{security.RoleUser}, found.RoleNames())

	byID, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	exists, err := users.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = users.ExistsByUsername(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFindMissingUserIsNotFound(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	_, err := users.FindByID(ctx, 9999)
	assert.True(t, errors.Is(err, errors.ErrEntityNotFound))

	_, err = users.FindByUsername(ctx, "ghost")
	assert.True(t, errors.Is(err, errors.ErrEntityNotFound))
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db))

	var count int64
	require.NoError(t, db.Model(&domain.Role{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
