package repository

// CacheRepository stores string values by key. A missing or unreadable key is
// reported as a miss.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
