package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/app/repositories"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/orm"
)

// recordingCache stands in for the Redis-backed store so tests can observe
// read-through writes and invalidations.
type recordingCache struct {
	set       []string
	forgotten []string
}

func (c *recordingCache) Get(string, interface{}) bool { return false }

func (c *recordingCache) Set(key string, _ interface{}, _ time.Duration) error {
	c.set = append(c.set, key)
	return nil
}

func (c *recordingCache) Forget(key string) error {
	c.forgotten = append(c.forgotten, key)
	return nil
}

func installRecordingCache(t *testing.T) *recordingCache {
	t.Helper()

	rec := &recordingCache{}
	orm.CacheStore = rec
	t.Cleanup(func() { orm.CacheStore = nil })
	return rec
}

func TestCatalogReadPopulatesCache(t *testing.T) {
	setupDB(t)
	rec := installRecordingCache(t)
	svc := NewProductService()

	require.True(t, svc.Create(&models.Product{Name: "Classic Cola", WholesalePrice: 10, RetailPrice: 15}, nil).OK)

	entries, err := svc.Catalog()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, rec.set, repositories.CatalogCacheKey)
}

func TestProductCreateInvalidatesCatalogCache(t *testing.T) {
	setupDB(t)
	rec := installRecordingCache(t)
	svc := NewProductService()

	res := svc.Create(&models.Product{Name: "Still Water", WholesalePrice: 3, RetailPrice: 5}, nil)
	require.True(t, res.OK, res.Message)
	assert.Contains(t, rec.forgotten, repositories.CatalogCacheKey)
}

func TestProductUpdateInvalidatesCatalogCache(t *testing.T) {
	setupDB(t)
	rec := installRecordingCache(t)
	svc := NewProductService()

	p := models.Product{Name: "Energy Boost", WholesalePrice: 1.10, RetailPrice: 1.80}
	require.True(t, svc.Create(&p, nil).OK)
	rec.forgotten = nil

	p.RetailPrice = 2.00
	require.True(t, svc.Update(&p, nil).OK)
	assert.Contains(t, rec.forgotten, repositories.CatalogCacheKey)
}

func TestProductDeleteInvalidatesCatalogCache(t *testing.T) {
	setupDB(t)
	rec := installRecordingCache(t)
	svc := NewProductService()

	p := models.Product{Name: "Ginger Brew", WholesalePrice: 2, RetailPrice: 3}
	require.True(t, svc.Create(&p, nil).OK)
	rec.forgotten = nil

	require.True(t, svc.Delete(p.ID, nil).OK)
	assert.Contains(t, rec.forgotten, repositories.CatalogCacheKey)
}

func TestFailedProductCreateKeepsCache(t *testing.T) {
	setupDB(t)
	rec := installRecordingCache(t)
	svc := NewProductService()

	res := svc.Create(&models.Product{}, nil)
	assert.False(t, res.OK)
	assert.Empty(t, rec.forgotten)
}
