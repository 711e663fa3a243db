package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()

// Blacklist 在 Redis 里记录被吊销的令牌。
type Blacklist struct {
	rdb *redis.Client
}

func NewBlacklist(rdb *redis.Client) *Blacklist {
	return &Blacklist{rdb: rdb}
}

// Add 把令牌拉黑到其剩余有效期结束。
func (b *Blacklist) Add(token string, ttl time.Duration) error {
	key := fmt.Sprintf("na:black:%s", token)
	return b.rdb.Set(ctx, key, "1", ttl).Err()
}

// Contains 报告令牌是否已被吊销。
func (b *Blacklist) Contains(token string) (bool, error) {
	key := fmt.Sprintf("na:black:%s", token)
	res, err := b.rdb.Exists(ctx, key).Result()
	return res == 1, err
}
