package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
)

const defaultLockKeyPrefix = "payment-engine:account-lock:"

// Takes the key when free, or extends it when the caller already owns it
var acquireScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if current == false then
	redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
	return 1
end
if current == ARGV[1] then
	redis.call("PEXPIRE", KEYS[1], ARGV[2])
	return 1
end
return 0
`)

// Deletes the key only when the caller owns it
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLockRepository implements the account lock on Redis keys with a TTL
type RedisLockRepository struct {
	client    redis.UniversalClient
	keyPrefix string
	logger    coreport.Logger
}

var _ persistence.AccountLockRepository = (*RedisLockRepository)(nil)

// NewRedisLockRepository creates a new RedisLockRepository instance
func NewRedisLockRepository(client redis.UniversalClient, keyPrefix string, logger coreport.Logger) *RedisLockRepository {
	if keyPrefix == "" {
		keyPrefix = defaultLockKeyPrefix
	}
	return &RedisLockRepository{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

// NewRedisClient connects to Redis and checks the connection
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, dbError("ping redis", err)
	}
	return client, nil
}

// AcquireLock takes the lease on the account unless another owner holds it
func (r *RedisLockRepository) AcquireLock(ctx context.Context, accountID uuid.UUID, owner string, duration time.Duration) error {
	key := r.key(accountID)

	acquired, err := acquireScript.Run(ctx, r.client, []string{key}, owner, duration.Milliseconds()).Int()
	if err != nil {
		r.logger.Error("Redis error acquiring lock", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return dbError("acquire lock", err)
	}

	if acquired == 0 {
		r.logger.Debug("Account is already locked", map[string]any{
			"account_id": accountID,
		})
		return errs.ErrAccountLocked
	}

	r.logger.Debug("Lock acquired", map[string]any{
		"account_id": accountID,
		"owner":      owner,
		"ttl":        duration.String(),
	})
	return nil
}

// ReleaseLock deletes the key if the owner still holds it
func (r *RedisLockRepository) ReleaseLock(ctx context.Context, accountID uuid.UUID, owner string) error {
	deleted, err := releaseScript.Run(ctx, r.client, []string{r.key(accountID)}, owner).Int()
	if err != nil {
		if isContextError(err) {
			r.logger.Warn("Context timeout when releasing lock, lock will expire automatically", map[string]any{
				"account_id": accountID,
			})
			return nil
		}
		return dbError("release lock", err)
	}

	if deleted == 0 {
		r.logger.Debug("No lock found to release - may have already expired", map[string]any{
			"account_id": accountID,
		})
	}
	return nil
}

func (r *RedisLockRepository) key(accountID uuid.UUID) string {
	return r.keyPrefix + accountID.String()
}
