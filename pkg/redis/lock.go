package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

var ErrLockNotAcquired = errors.New("doctor lock not acquired")

// Locker serializes booking critical sections per doctor. Two concurrent
// booking requests for the same doctor never run their conflict check and
// insert interleaved.
type Locker interface {
	WithDoctorLock(ctx context.Context, doctorID uuid.UUID, fn func(ctx context.Context) error) error
}

type doctorLocker struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewDoctorLocker creates a locker backed by a per-doctor Redis key.
func NewDoctorLocker(client *goredis.Client, ttl time.Duration) Locker {
	return &doctorLocker{
		client: client,
		ttl:    ttl,
	}
}

func (l *doctorLocker) WithDoctorLock(ctx context.Context, doctorID uuid.UUID, fn func(ctx context.Context) error) error {
	key := fmt.Sprintf("lock:doctor:%s", doctorID.String())
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire doctor lock: %w", err)
	}
	if !ok {
		return ErrLockNotAcquired
	}

	defer func() {
		_ = l.release(ctx, key, token)
	}()

	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(ctxWithTimeout)
}

var unlockScript = goredis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *doctorLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("release doctor lock: %w", err)
	}
	return nil
}
