package widgets

import (
	"strconv"
	"time"

	"fundsmart/internal/cache"
	"fundsmart/internal/routes"
)

// PageBuilder is what the HTTP layer needs from a builder.
type PageBuilder interface {
	Build(d routes.Descriptor, now time.Time, req Request) Page
}

// CachedBuilder memoizes pages per segment, request switches and minute.
type CachedBuilder struct {
	next  PageBuilder
	cache cache.Cache[Page]
}

func NewCachedBuilder(next PageBuilder, c cache.Cache[Page]) *CachedBuilder {
	return &CachedBuilder{next: next, cache: c}
}

func (c *CachedBuilder) Build(d routes.Descriptor, now time.Time, req Request) Page {
	key := pageKey(d, now, req)
	if p, ok := c.cache.Get(key); ok {
		return p
	}
	p := c.next.Build(d, now, req)
	c.cache.Set(key, p)
	return p
}

func pageKey(d routes.Descriptor, now time.Time, req Request) string {
	minute := now.Truncate(time.Minute).Unix()
	return d.Segment + "|" + strconv.FormatBool(req.ShowAllTransactions) + "|" + now.Location().String() + "|" + strconv.FormatInt(minute, 10)
}
