package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/gabapcia/solwatch/internal/alerting"

	"github.com/go-redis/redis_rate/v10"
)

// Telegram allows roughly one message per second per chat.
const defaultSendRatePerSecond = 1

func sendRateKey(chatID int64) string {
	return keyPrefix + ":send:" + strconv.FormatInt(chatID, 10)
}

// ReserveSend consumes one unit of the chat's send budget, or reports how
// long until one frees up.
func (c *client) ReserveSend(ctx context.Context, chatID int64) (time.Duration, error) {
	res, err := c.limiter.Allow(ctx, sendRateKey(chatID), c.sendLimit)
	if err != nil {
		return 0, err
	}

	return reserveWait(res), nil
}

func reserveWait(res *redis_rate.Result) time.Duration {
	if res.Allowed > 0 {
		return 0
	}
	if res.RetryAfter <= 0 {
		return time.Millisecond
	}
	return res.RetryAfter
}

var _ alerting.RateLimiter = new(client)
