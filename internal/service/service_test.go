package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"holocron-go/internal/api/dto"
	"holocron-go/internal/infra/database/dbtest"
	"holocron-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	sets    int
	failGet bool
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return false, errors.New("cache unavailable")
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	c.sets++
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	events []FavoriteEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, key string, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var ev FavoriteEvent
	if err := json.Unmarshal(value, &ev); err != nil {
		return err
	}
	p.keys = append(p.keys, key)
	p.events = append(p.events, ev)
	return p.err
}

func newCatalog(db *gorm.DB, cache Cache) *CatalogService {
	return NewCatalogService(repository.NewPeopleRepository(db), repository.NewPlanetRepository(db), cache, time.Minute)
}

func TestCatalogListsAreEmptyNotNil(t *testing.T) {
	svc := newCatalog(dbtest.New(t), nil)
	ctx := context.Background()

	people, err := svc.ListPeople(ctx)
	require.NoError(t, err)
	assert.NotNil(t, people)
	assert.Empty(t, people)

	planets, err := svc.ListPlanets(ctx)
	require.NoError(t, err)
	assert.NotNil(t, planets)
	assert.Empty(t, planets)
}

func TestCatalogGetByIDReturnsSingletonList(t *testing.T) {
	db := dbtest.New(t)
	svc := newCatalog(db, nil)
	ctx := context.Background()
	tatooine := dbtest.Planet(t, db, "Tatooine")
	luke := dbtest.People(t, db, "Luke")

	planets, err := svc.GetPlanet(ctx, tatooine.ID)
	require.NoError(t, err)
	assert.Equal(t, []dto.PlanetInfo{{ID: tatooine.ID, Name: "Tatooine", URL: tatooine.URL}}, planets)

	people, err := svc.GetPerson(ctx, luke.ID)
	require.NoError(t, err)
	assert.Equal(t, []dto.PeopleInfo{{ID: luke.ID, Name: "Luke", URL: luke.URL}}, people)

	_, err = svc.GetPlanet(ctx, tatooine.ID+100)
	assert.ErrorIs(t, err, ErrPlanetNotFound)
	_, err = svc.GetPerson(ctx, luke.ID+100)
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestCatalogUsesCacheForListings(t *testing.T) {
	db := dbtest.New(t)
	cache := newMemoryCache()
	svc := newCatalog(db, cache)
	ctx := context.Background()
	dbtest.People(t, db, "Obi-Wan")

	first, err := svc.ListPeople(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, cache.sets)

	// 缓存命中后不再读取数据库
	dbtest.People(t, db, "Qui-Gon")
	second, err := svc.ListPeople(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
}

func TestCatalogFallsBackWhenCacheFails(t *testing.T) {
	db := dbtest.New(t)
	cache := newMemoryCache()
	cache.failGet = true
	svc := newCatalog(db, cache)
	dbtest.Planet(t, db, "Naboo")

	planets, err := svc.ListPlanets(context.Background())
	require.NoError(t, err)
	assert.Len(t, planets, 1)
}

func TestUserServiceNeverExposesPassword(t *testing.T) {
	db := dbtest.New(t)
	dbtest.User(t, db, "vader@empire.gov")
	svc := NewUserService(repository.NewUserRepository(db), repository.NewFavoriteRepository(db))

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)

	raw, err := json.Marshal(users)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "hashed-")
	assert.JSONEq(t, `[{"id":1,"email":"vader@empire.gov"}]`, string(raw))
}

func TestUserServiceFavorites(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	user := dbtest.User(t, db, "rey@jakku.net")
	bb8 := dbtest.People(t, db, "BB-8")
	jakku := dbtest.Planet(t, db, "Jakku")

	favRepo := repository.NewFavoriteRepository(db)
	_, err := favRepo.CreatePlanet(ctx, user.ID, jakku.ID)
	require.NoError(t, err)
	_, err = favRepo.CreatePeople(ctx, user.ID, bb8.ID)
	require.NoError(t, err)

	svc := NewUserService(repository.NewUserRepository(db), favRepo)
	favs, err := svc.GetFavorites(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []dto.FavoritePeopleInfo{{PeopleID: bb8.ID}}, favs.People)
	assert.Equal(t, []dto.FavoritePlanetInfo{{PlanetID: jakku.ID}}, favs.Planets)

	empty, err := svc.GetFavorites(ctx, 777)
	require.NoError(t, err)
	assert.NotNil(t, empty.People)
	assert.NotNil(t, empty.Planets)
	assert.Empty(t, empty.People)
	assert.Empty(t, empty.Planets)
}

func TestFavoriteServiceAddRemovePublishesEvents(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	user := dbtest.User(t, db, "finn@resistance.org")
	planet := dbtest.Planet(t, db, "Starkiller")

	pub := &recordingPublisher{}
	svc := NewFavoriteService(repository.NewFavoriteRepository(db), pub)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	fav, err := svc.AddPlanet(ctx, user.ID, planet.ID)
	require.NoError(t, err)
	require.NoError(t, svc.RemovePlanet(ctx, user.ID, planet.ID))
	assert.ErrorIs(t, svc.RemovePlanet(ctx, user.ID, planet.ID), ErrFavoritePlanetNotFound)

	require.Len(t, pub.events, 2)
	assert.Equal(t, FavoriteEvent{
		Type: EventFavoriteAdded, Kind: KindPlanet, UserID: user.ID,
		EntityID: planet.ID, FavoriteID: fav.ID, OccurredAt: fixed,
	}, pub.events[0])
	assert.Equal(t, EventFavoriteRemoved, pub.events[1].Type)
	assert.Equal(t, fav.ID, pub.events[1].FavoriteID)
	assert.Equal(t, []string{"user-1", "user-1"}, pub.keys)
}

func TestFavoriteServiceRemovesOneDuplicateAtATime(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	user := dbtest.User(t, db, "poe@resistance.org")
	bb8 := dbtest.People(t, db, "BB-8")

	repo := repository.NewFavoriteRepository(db)
	svc := NewFavoriteService(repo, nil)
	_, err := svc.AddPeople(ctx, user.ID, bb8.ID)
	require.NoError(t, err)
	_, err = svc.AddPeople(ctx, user.ID, bb8.ID)
	require.NoError(t, err)

	require.NoError(t, svc.RemovePeople(ctx, user.ID, bb8.ID))
	left, err := repo.FindPeople(ctx, user.ID, bb8.ID)
	require.NoError(t, err)
	assert.Len(t, left, 1)

	require.NoError(t, svc.RemovePeople(ctx, user.ID, bb8.ID))
	assert.ErrorIs(t, svc.RemovePeople(ctx, user.ID, bb8.ID), ErrFavoritePeopleNotFound)
}

func TestFavoriteServiceMapsForeignKeyViolations(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc := NewFavoriteService(repository.NewFavoriteRepository(db), pub)

	_, err := svc.AddPlanet(ctx, 5, 3)
	assert.ErrorIs(t, err, ErrUserOrPlanetNotFound)
	_, err = svc.AddPeople(ctx, 5, 3)
	assert.ErrorIs(t, err, ErrUserOrPeopleNotFound)
	assert.Empty(t, pub.events)
}

func TestFavoriteServiceIgnoresPublishFailures(t *testing.T) {
	db := dbtest.New(t)
	user := dbtest.User(t, db, "chewie@kashyyyk.net")
	planet := dbtest.Planet(t, db, "Kashyyyk")
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := NewFavoriteService(repository.NewFavoriteRepository(db), pub)

	_, err := svc.AddPlanet(context.Background(), user.ID, planet.ID)
	require.NoError(t, err)
	assert.Len(t, pub.events, 1)
}

type blockingPublisher struct {
	calls int
	err   error
}

func (p *blockingPublisher) Publish(ctx context.Context, _ string, _ []byte) error {
	p.calls++
	<-ctx.Done()
	p.err = ctx.Err()
	return p.err
}

func TestFavoriteServiceBoundsSlowPublisher(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	user := dbtest.User(t, db, "rey@jakku.net")
	planet := dbtest.Planet(t, db, "Jakku")
	pub := &blockingPublisher{}
	svc := NewFavoriteService(repository.NewFavoriteRepository(db), pub).
		WithPublishTimeout(50 * time.Millisecond)

	start := time.Now()
	_, err := svc.AddPlanet(ctx, user.ID, planet.ID)
	require.NoError(t, err)
	require.NoError(t, svc.RemovePlanet(ctx, user.ID, planet.ID))
	elapsed := time.Since(start)

	assert.Equal(t, 2, pub.calls)
	assert.ErrorIs(t, pub.err, context.DeadlineExceeded)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestWithPublishTimeoutKeepsDefaultForNonPositive(t *testing.T) {
	svc := NewFavoriteService(nil, nil).WithPublishTimeout(0)
	assert.Equal(t, DefaultPublishTimeout, svc.publishTimeout)

	svc.WithPublishTimeout(time.Second)
	assert.Equal(t, time.Second, svc.publishTimeout)
}

func TestCatalogInvalidateListingsDropsStaleCache(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	dbtest.People(t, db, "Leia Organa")
	cache := newMemoryCache()
	svc := newCatalog(db, cache)

	people, err := svc.ListPeople(ctx)
	require.NoError(t, err)
	require.Len(t, people, 1)

	dbtest.People(t, db, "Han Solo")
	stale, err := svc.ListPeople(ctx)
	require.NoError(t, err)
	assert.Len(t, stale, 1)

	require.NoError(t, svc.InvalidateListings(ctx))
	fresh, err := svc.ListPeople(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh, 2)

	assert.NoError(t, newCatalog(db, nil).InvalidateListings(ctx))
}
