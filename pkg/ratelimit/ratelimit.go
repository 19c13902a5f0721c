package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter увеличивает счётчик окна и возвращает его новое значение
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Observer считает отклонённые запросы
type Observer interface {
	IncRateLimited(route string)
}

// RedisCounter счётчик фиксированного окна в Redis.
// Несколько инстансов сервиса делят один лимит.
type RedisCounter struct {
	rdb *redis.Client
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewRedisCounter(rdb *redis.Client) *RedisCounter {
	return &RedisCounter{rdb: rdb}
}

func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	ms := window.Milliseconds()
	if ms <= 0 {
		ms = time.Minute.Milliseconds()
	}
	res, err := fixedWindowScript.Run(ctx, c.rdb, []string{key}, ms).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("ratelimit: unexpected script result type %T", res)
	}
}

// Limiter ограничивает число запросов с одного клиента за окно
type Limiter struct {
	counter  Counter
	limit    int
	window   time.Duration
	prefix   string
	failOpen bool
	logger   Logger
	observer Observer
}

// Config параметры лимитера
type Config struct {
	Limit    int
	Window   time.Duration
	Prefix   string
	FailOpen bool
}

// New создаёт лимитер. observer может быть nil.
func New(counter Counter, cfg Config, logger Logger, observer Observer) *Limiter {
	if cfg.Limit <= 0 {
		cfg.Limit = 60
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if strings.TrimSpace(cfg.Prefix) == "" {
		cfg.Prefix = "rl"
	}
	return &Limiter{
		counter:  counter,
		limit:    cfg.Limit,
		window:   cfg.Window,
		prefix:   cfg.Prefix,
		failOpen: cfg.FailOpen,
		logger:   logger,
		observer: observer,
	}
}

// Middleware middleware для gorilla/mux (route: метка для метрик)
func (l *Limiter) Middleware(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := l.prefix + ":" + route + ":" + ClientKey(r)
			count, err := l.counter.Incr(r.Context(), key, l.window)
			if err != nil {
				l.logger.Warn("rate limiter error for %s: %v", route, err)
				if l.failOpen {
					next.ServeHTTP(w, r)
					return
				}
				writeError(w, http.StatusServiceUnavailable, "Service temporarily unavailable, please try again.")
				return
			}
			if count > int64(l.limit) {
				if l.observer != nil {
					l.observer.IncRateLimited(route)
				}
				w.Header().Set("Retry-After", strconv.Itoa(int(l.window.Seconds())))
				writeError(w, http.StatusTooManyRequests, "Too many requests, please try again later.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientKey адрес клиента с учётом X-Forwarded-For
func ClientKey(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		parts := strings.Split(ip, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
