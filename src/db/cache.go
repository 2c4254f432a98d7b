package db

import (
	"strconv"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// userCacheTTL bounds how long a deleted account can keep passing the
// session guard's existence check.
const userCacheTTL = 5 * time.Minute

// UserCache remembers which user ids currently exist so the auth
// middleware does not hit the store on every request. Entries expire
// after a short TTL and are dropped eagerly when an account is deleted.
type UserCache struct {
	cache *ristretto.Cache[string, int64]
}

func NewUserCache() (*UserCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, int64]{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, err
	}
	return &UserCache{cache: cache}, nil
}

func (c *UserCache) Get(userID int64) bool {
	_, ok := c.cache.Get(strconv.FormatInt(userID, 10))
	return ok
}

func (c *UserCache) Set(userID int64) {
	c.cache.SetWithTTL(strconv.FormatInt(userID, 10), userID, 1, userCacheTTL)
}

func (c *UserCache) Del(userID int64) {
	c.cache.Del(strconv.FormatInt(userID, 10))
}

func (c *UserCache) Close() {
	c.cache.Close()
}
