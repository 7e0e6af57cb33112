package repository

import (
	"context"
	"errors"
	"testing"

	"holocron-go/internal/infra/database/dbtest"
	"holocron-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPeopleRepositoryFindByIDReturnsSlice(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	luke := dbtest.People(t, db, "Luke Skywalker")
	dbtest.People(t, db, "Leia Organa")

	repo := NewPeopleRepository(db)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := repo.FindByID(ctx, luke.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Luke Skywalker", found[0].Name)

	missing, err := repo.FindByID(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestPlanetRepositoryEmptyTable(t *testing.T) {
	repo := NewPlanetRepository(dbtest.New(t))

	planets, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, planets)
}

func TestFirstOrCreateIsIdempotent(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	repo := NewPlanetRepository(db)

	first := &model.Planet{Name: "Tatooine", URL: "https://swapi.dev/api/planets/1/"}
	require.NoError(t, repo.FirstOrCreateByName(ctx, first))
	second := &model.Planet{Name: "Tatooine", URL: "https://swapi.dev/api/planets/1/"}
	require.NoError(t, repo.FirstOrCreateByName(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	planets, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 1)

	users := NewUserRepository(db)
	u := &model.User{Email: "han@falcon.io", Password: "hash", IsActive: true}
	require.NoError(t, users.FirstOrCreateByEmail(ctx, u))
	require.NoError(t, users.FirstOrCreateByEmail(ctx, &model.User{Email: "han@falcon.io", Password: "other"}))
	all, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "hash", all[0].Password)
}

func TestFavoriteRepositoryCreateFindDelete(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	user := dbtest.User(t, db, "luke@rebellion.org")
	hoth := dbtest.Planet(t, db, "Hoth")

	repo := NewFavoriteRepository(db)

	fav, err := repo.CreatePlanet(ctx, user.ID, hoth.ID)
	require.NoError(t, err)
	assert.NotZero(t, fav.ID)

	found, err := repo.FindPlanet(ctx, user.ID, hoth.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, fav.ID, found[0].ID)

	require.NoError(t, repo.DeletePlanet(ctx, &found[0]))

	found, err = repo.FindPlanet(ctx, user.ID, hoth.ID)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFavoriteRepositoryAllowsDuplicatePairs(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	user := dbtest.User(t, db, "leia@rebellion.org")
	han := dbtest.People(t, db, "Han Solo")

	repo := NewFavoriteRepository(db)
	_, err := repo.CreatePeople(ctx, user.ID, han.ID)
	require.NoError(t, err)
	_, err = repo.CreatePeople(ctx, user.ID, han.ID)
	require.NoError(t, err)

	found, err := repo.FindPeople(ctx, user.ID, han.ID)
	require.NoError(t, err)
	assert.Len(t, found, 2)

	byUser, err := repo.ListPeopleByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)
}

func TestFavoriteRepositoryRejectsUnknownReferences(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	planet := dbtest.Planet(t, db, "Dagobah")

	repo := NewFavoriteRepository(db)
	_, err := repo.CreatePlanet(ctx, 404, planet.ID)
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))

	user := dbtest.User(t, db, "yoda@dagobah.net")
	_, err = repo.CreatePeople(ctx, user.ID, 404)
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))

	favs, err := repo.ListPlanetsByUser(ctx, 404)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.False(t, IsForeignKeyViolation(nil))
	assert.True(t, IsForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, IsForeignKeyViolation(errors.New(`ERROR: insert violates foreign key constraint "fk" (SQLSTATE 23503)`)))
	assert.False(t, IsForeignKeyViolation(errors.New("connection refused")))
}
