package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"quickdash/internal/domain/entity"
	"quickdash/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// changeMessage is published on the change channel after every mutation.
type changeMessage struct {
	Writer string   `json:"writer"`
	Keys   []string `json:"keys"`
}

// redisStore shares state between sessions on different hosts. Keys live under
// prefix; mutations are announced on channel.
type redisStore struct {
	client    *redis.Client
	prefix    string
	channel   string
	sessionID string
	logger    *slog.Logger

	closeOnce sync.Once
	closed    chan struct{}
}

// RedisOptions configures NewRedisStore.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
	Channel   string
}

// NewRedisStore connects to redis and verifies the connection with PING.
func NewRedisStore(ctx context.Context, opts RedisOptions, sessionID string, logger *slog.Logger) (repository.StateStore, error) {
	if opts.Addr == "" {
		return nil, errors.New("redis address is required for redis provider")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "ping redis %s", opts.Addr)
	}

	return &redisStore{
		client:    client,
		prefix:    opts.KeyPrefix,
		channel:   opts.Channel,
		sessionID: sessionID,
		logger:    logger,
		closed:    make(chan struct{}),
	}, nil
}

func (s *redisStore) key(k string) string {
	return s.prefix + k
}

func (s *redisStore) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.isClosed() {
		return "", false, repository.ErrStoreClosed
	}

	value, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "redis get %s", key)
	}

	return value, true, nil
}

func (s *redisStore) GetMany(ctx context.Context, keys ...string) (map[string]string, error) {
	if s.isClosed() {
		return nil, repository.ErrStoreClosed
	}
	if len(keys) == 0 {
		return map[string]string{}, nil
	}

	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = s.key(key)
	}

	values, err := s.client.MGet(ctx, prefixed...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "redis mget")
	}

	out := make(map[string]string, len(keys))
	for i, value := range values {
		if str, ok := value.(string); ok {
			out[keys[i]] = str
		}
	}

	return out, nil
}

func (s *redisStore) Set(ctx context.Context, values map[string]string) error {
	if s.isClosed() {
		return repository.ErrStoreClosed
	}
	if len(values) == 0 {
		return nil
	}

	pairs := make([]any, 0, len(values)*2)
	keys := make([]string, 0, len(values))
	for key, value := range values {
		pairs = append(pairs, s.key(key), value)
		keys = append(keys, key)
	}

	payload, err := json.Marshal(changeMessage{Writer: s.sessionID, Keys: keys})
	if err != nil {
		return errors.Wrap(err, "encode change message")
	}

	pipe := s.client.TxPipeline()
	pipe.MSet(ctx, pairs...)
	pipe.Publish(ctx, s.channel, payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "redis set")
	}

	return nil
}

func (s *redisStore) Delete(ctx context.Context, keys ...string) error {
	if s.isClosed() {
		return repository.ErrStoreClosed
	}
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = s.key(key)
	}

	removed, err := s.client.Del(ctx, prefixed...).Result()
	if err != nil {
		return errors.Wrap(err, "redis del")
	}
	if removed == 0 {
		return nil
	}

	payload, err := json.Marshal(changeMessage{Writer: s.sessionID, Keys: keys})
	if err != nil {
		return errors.Wrap(err, "encode change message")
	}

	return errors.Wrap(s.client.Publish(ctx, s.channel, payload).Err(), "redis publish")
}

// Watch subscribes to the change channel. The subscription is confirmed before
// Watch returns, so no later mutation is missed.
func (s *redisStore) Watch(ctx context.Context) (<-chan entity.StorageChange, error) {
	if s.isClosed() {
		return nil, repository.ErrStoreClosed
	}

	sub := s.client.Subscribe(ctx, s.channel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()

		return nil, errors.Wrapf(err, "subscribe %s", s.channel)
	}

	messages := sub.Channel()
	out := make(chan entity.StorageChange, watchBuffer)
	go func() {
		defer close(out)
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.closed:
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var change changeMessage
				if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
					s.logger.Warn("Dropping malformed storage change", slog.Any("error", err))

					continue
				}

				for _, key := range change.Keys {
					select {
					case out <- entity.StorageChange{Key: key, Writer: change.Writer, Foreign: change.Writer != s.sessionID}:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	return out, nil
}

func (s *redisStore) SessionID() string {
	return s.sessionID
}

func (s *redisStore) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.closed)
		err = s.client.Close()
	})

	return errors.WithStack(err)
}
