package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each slot in a redis string with no expiry.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Load(slot string) ([]byte, error) {
	data, err := s.Client.Get(context.Background(), slot).Bytes()
	if err == redis.Nil {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Save(slot string, value []byte) error {
	return s.Client.Set(context.Background(), slot, value, 0).Err()
}

func (s *RedisStore) Delete(slot string) error {
	return s.Client.Del(context.Background(), slot).Err()
}

var _ SlotStore = (*RedisStore)(nil)
