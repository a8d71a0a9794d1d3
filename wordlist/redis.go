package wordlist

import (
	"context"
	"sort"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the set key used when none is configured.
const DefaultRedisKey = "phondist:wordlist"

// RedisStore keeps the dictionary in a Redis set, for setups where several
// annotators share one dictionary.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a store on the given client. An empty key selects
// DefaultRedisKey.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// All returns the stored forms, sorted for stable output (Redis sets are
// unordered).
func (s *RedisStore) All(ctx context.Context) ([]string, error) {
	forms, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(forms)
	return forms, nil
}

// Add inserts the normalized forms, reporting the ones the set did not
// already contain.
func (s *RedisStore) Add(ctx context.Context, forms ...string) ([]string, error) {
	var added []string
	for _, form := range forms {
		nf := Normalize(form)
		if nf == "" {
			continue
		}
		n, err := s.client.SAdd(ctx, s.key, nf).Result()
		if err != nil {
			return added, err
		}
		if n == 1 {
			added = append(added, nf)
		}
	}
	return added, nil
}
