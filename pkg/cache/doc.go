// Package cache provides a bounded, concurrency-safe LRU cache with a
// loader helper for memoizing expensive renders.
//
//	qr := cache.NewLRU[string, []byte](128)
//	png, err := qr.GetOrLoad(url, func() ([]byte, error) { return render(url) })
package cache
