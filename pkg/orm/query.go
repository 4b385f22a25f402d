// Package orm is a thin query layer over the shared gorm handle. It keeps
// repositories free of gorm boilerplate and adds pagination, read-through
// caching and a transaction helper.
package orm

import (
	"time"

	"gorm.io/gorm"

	"github.com/jackmarxreacher-creator/rby-sub000/pkg/database"
)

// Cacher is satisfied by pkg/cache. It is injected at boot (see
// internal/kernel) so orm does not import cache directly.
type Cacher interface {
	Get(key string, dest interface{}) bool
	Set(key string, value interface{}, ttl time.Duration) error
	Forget(key string) error
}

// CacheStore is the cache used by Query.Cache. Nil disables caching.
var CacheStore Cacher

// ForgetCache drops key from CacheStore. No-op when caching is disabled.
func ForgetCache(key string) {
	if CacheStore != nil {
		_ = CacheStore.Forget(key)
	}
}

// Pagination describes one page of a paginated listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// Query wraps a gorm chain.
type Query struct {
	db *gorm.DB
}

// DB starts a query against the shared database handle.
func DB() *Query {
	return &Query{db: database.DB}
}

// With starts a query against an explicit handle (e.g. inside a transaction).
func With(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(cond string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(cond, args...)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Preload(assoc string) *Query {
	return &Query{db: q.db.Preload(assoc)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

// Get loads all matching rows into dest.
func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

// First loads the first matching row into dest.
func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

// Create inserts v.
func (q *Query) Create(v interface{}) error {
	return q.db.Create(v).Error
}

// Save upserts v by primary key.
func (q *Query) Save(v interface{}) error {
	return q.db.Save(v).Error
}

// Delete removes v (soft delete when the model embeds gorm.Model).
func (q *Query) Delete(v interface{}) error {
	return q.db.Delete(v).Error
}

// Updates applies a column map to all matching rows.
func (q *Query) Updates(values map[string]interface{}) error {
	return q.db.Updates(values).Error
}

// Count counts matching rows.
func (q *Query) Count() (int64, error) {
	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

// GetWithPagination loads one page of rows into dest and reports the page
// metadata. Page and limit are normalised to sane values.
func (q *Query) GetWithPagination(dest interface{}, page, limit int) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := q.db.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	offset := (page - 1) * limit
	if err := q.db.Offset(offset).Limit(limit).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}

	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}, nil
}

// Cache is a read-through find: serve dest from CacheStore when the key is
// warm, otherwise run the query and populate the cache for ttl.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if CacheStore != nil && CacheStore.Get(key, dest) {
		return nil
	}

	if err := q.db.Find(dest).Error; err != nil {
		return err
	}

	if CacheStore != nil {
		_ = CacheStore.Set(key, dest, ttl)
	}
	return nil
}

// Transaction runs fn inside a single database transaction. A returned error
// rolls everything back.
func Transaction(fn func(tx *gorm.DB) error) error {
	return database.DB.Transaction(fn)
}
