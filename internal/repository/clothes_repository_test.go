package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "wardrobe.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Category{}, &model.Type{}, &model.Clothes{}))
	return db
}

type testFixture struct {
	user        *model.User
	tops, outer *model.Category
	shirt, coat *model.Type
}

func seedFixture(t *testing.T, db *gorm.DB) testFixture {
	t.Helper()
	f := testFixture{
		user:  &model.User{Name: "alice", LoginID: "alice", PasswordHash: "x"},
		tops:  &model.Category{Name: "Tops"},
		outer: &model.Category{Name: "Outer"},
		shirt: &model.Type{Name: "Shirt"},
		coat:  &model.Type{Name: "Coat"},
	}
	for _, rec := range []interface{}{f.user, f.tops, f.outer, f.shirt, f.coat} {
		require.NoError(t, db.Create(rec).Error)
	}
	return f
}

func TestClothesRepository_UpdateWithRefs_ChangesReferences(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewClothesRepository(db)
	ctx := context.Background()

	created := &model.Clothes{
		UserID:     f.user.ID,
		CategoryID: f.tops.ID,
		TypeID:     f.shirt.ID,
		Name:       "blue tee",
		Color:      "blue",
		Season:     model.SeasonList{"夏"},
	}
	require.NoError(t, repo.CreateWithRefs(ctx, created))

	// Load through the repository so the record carries its preloaded
	// category and type, exactly as the update path sees it.
	clothes, err := repo.FindByIDAndOwner(ctx, created.ID, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tops", clothes.Category.Name)

	clothes.CategoryID = f.outer.ID
	clothes.TypeID = f.coat.ID
	require.NoError(t, repo.UpdateWithRefs(ctx, clothes))

	reloaded, err := repo.FindByIDAndOwner(ctx, created.ID, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, f.outer.ID, reloaded.CategoryID)
	assert.Equal(t, f.coat.ID, reloaded.TypeID)
	assert.Equal(t, "Outer", reloaded.Category.Name)
	assert.Equal(t, "Coat", reloaded.Type.Name)
}

func TestClothesRepository_UpdateWithRefs_DanglingReference(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewClothesRepository(db)
	ctx := context.Background()

	created := &model.Clothes{
		UserID:     f.user.ID,
		CategoryID: f.tops.ID,
		TypeID:     f.shirt.ID,
		Name:       "blue tee",
	}
	require.NoError(t, repo.CreateWithRefs(ctx, created))

	clothes, err := repo.FindByIDAndOwner(ctx, created.ID, f.user.ID)
	require.NoError(t, err)

	clothes.CategoryID = 9999
	err = repo.UpdateWithRefs(ctx, clothes)
	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)

	// The failed update must leave the stored record untouched.
	reloaded, err := repo.FindByIDAndOwner(ctx, created.ID, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, f.tops.ID, reloaded.CategoryID)
}

func TestClothesRepository_CreateWithRefs_DanglingReference(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewClothesRepository(db)
	ctx := context.Background()

	err := repo.CreateWithRefs(ctx, &model.Clothes{
		UserID:     f.user.ID,
		CategoryID: f.tops.ID,
		TypeID:     9999,
		Name:       "ghost",
	})
	assert.ErrorIs(t, err, apperrors.ErrTypeNotFound)

	var count int64
	require.NoError(t, db.Model(&model.Clothes{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestClothesRepository_FindByIDAndOwner_ScopedByOwner(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewClothesRepository(db)
	ctx := context.Background()

	created := &model.Clothes{
		UserID:     f.user.ID,
		CategoryID: f.tops.ID,
		TypeID:     f.shirt.ID,
		Name:       "blue tee",
	}
	require.NoError(t, repo.CreateWithRefs(ctx, created))

	_, err := repo.FindByIDAndOwner(ctx, created.ID, f.user.ID+1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestClothesRepository_DeleteByIDAndOwner(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewClothesRepository(db)
	ctx := context.Background()

	created := &model.Clothes{
		UserID:     f.user.ID,
		CategoryID: f.tops.ID,
		TypeID:     f.shirt.ID,
		Name:       "blue tee",
	}
	require.NoError(t, repo.CreateWithRefs(ctx, created))

	err := repo.DeleteByIDAndOwner(ctx, created.ID, f.user.ID+1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.DeleteByIDAndOwner(ctx, created.ID, f.user.ID))
	_, err = repo.FindByIDAndOwner(ctx, created.ID, f.user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestClothesRepository_SeasonRoundTrip(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewClothesRepository(db)
	ctx := context.Background()

	created := &model.Clothes{
		UserID:     f.user.ID,
		CategoryID: f.tops.ID,
		TypeID:     f.shirt.ID,
		Name:       "cardigan",
		Season:     model.SeasonList{"春", "秋"},
	}
	require.NoError(t, repo.CreateWithRefs(ctx, created))

	reloaded, err := repo.FindByIDAndOwner(ctx, created.ID, f.user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, model.SeasonList{"春", "秋"}, reloaded.Season)
}

func TestUserRepository_DuplicateLoginID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Name: "alice", LoginID: "alice", PasswordHash: "x"}))

	err := repo.Create(ctx, &model.User{Name: "impostor", LoginID: "alice", PasswordHash: "y"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
