package postgres

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"bank-user-service/internal/domain/user"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive across queries
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

func setupTestRepo(t *testing.T) *UserRepoPG {
	return NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))
}

func TestUserRepoPG_Save_InsertAssignsID(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &user.User{Firstname: "Max", Lastname: "Mustermann", Email: "max@mustermann.de"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), saved.ID)
	assert.Equal(t, "Max", saved.Firstname)

	second, err := repo.Save(ctx, &user.User{Firstname: "Erika", Lastname: "Mustermann", Email: "erika@mustermann.de"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestUserRepoPG_Save_UpdateOverwritesRow(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &user.User{Firstname: "Max", Lastname: "Mustermann", Email: "max@mustermann.de"})
	require.NoError(t, err)

	saved.Firstname = "Moritz"
	saved.Email = "moritz@mustermann.de"
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Moritz", found.Firstname)
	assert.Equal(t, "Mustermann", found.Lastname)
	assert.Equal(t, "moritz@mustermann.de", found.Email)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserRepoPG_Save_Nil(t *testing.T) {
	repo := setupTestRepo(t)

	saved, err := repo.Save(context.Background(), nil)
	assert.Error(t, err)
	assert.Nil(t, saved)
}

func TestUserRepoPG_FindAll(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	for _, u := range []user.User{
		{Firstname: "Max", Lastname: "Mustermann", Email: "max@mustermann.de"},
		{Firstname: "Erika", Lastname: "Mustermann", Email: "erika@mustermann.de"},
		{Firstname: "Julia", Lastname: "Musterfrau", Email: "julia@musterfrau.de"},
	} {
		_, err := repo.Save(ctx, &u)
		require.NoError(t, err)
	}

	users, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Max", users[0].Firstname)
	assert.Equal(t, "Erika", users[1].Firstname)
	assert.Equal(t, "Julia", users[2].Firstname)
}

func TestUserRepoPG_FindByID(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &user.User{Firstname: "Max", Lastname: "Mustermann", Email: "max@mustermann.de"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		id        int64
		wantFound bool
	}{
		{name: "existing id", id: saved.ID, wantFound: true},
		{name: "unknown id", id: 42, wantFound: false},
		{name: "zero id", id: 0, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByID(ctx, tt.id)
			require.NoError(t, err)
			if tt.wantFound {
				require.NotNil(t, found)
				assert.Equal(t, saved, found)
			} else {
				assert.Nil(t, found)
			}
		})
	}
}

func TestUserRepoPG_FindByEmail(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, &user.User{Firstname: "Erika", Lastname: "Mustermann", Email: "erika@mustermann.de"})
	require.NoError(t, err)

	found, err := repo.FindByEmail(ctx, "erika@mustermann.de")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Erika", found.Firstname)

	missing, err := repo.FindByEmail(ctx, "max@mustermann.de")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepoPG_DeleteByID_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &user.User{Firstname: "Max", Lastname: "Mustermann", Email: "max@mustermann.de"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, saved.ID))
	require.NoError(t, repo.DeleteByID(ctx, saved.ID))
	require.NoError(t, repo.DeleteByID(ctx, 999))

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepoPG_DuplicateEmailAllowedByStore(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, &user.User{Firstname: "Max", Lastname: "Mustermann", Email: "same@mustermann.de"})
	require.NoError(t, err)
	_, err = repo.Save(ctx, &user.User{Firstname: "Erika", Lastname: "Mustermann", Email: "same@mustermann.de"})
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUserRepoPG_CanceledContext(t *testing.T) {
	repo := setupTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindAll(ctx)
	assert.Error(t, err)
}
