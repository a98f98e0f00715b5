package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
)

// Store guarda respuestas serializadas con expiración.
// Memory y Redis lo implementan.
type Store interface {
	Get(ctx context.Context, key string, target any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Close() error
}

type cacheItem struct {
	data       []byte
	expiration int64
}

// Memory es el caché local del proceso
type Memory struct {
	items map[string]cacheItem
	mu    sync.RWMutex
	ttl   time.Duration
	stop  chan struct{}
	once  sync.Once
}

// NewMemory crea el caché y arranca la limpieza periódica de expirados
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	c := &Memory{
		items: make(map[string]cacheItem),
		ttl:   defaultTTL,
		stop:  make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go c.cleanupExpired(cleanupInterval)
	}
	return c
}

// Set serializa y guarda un valor; ttl <= 0 usa el TTL por defecto
func (c *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = c.ttl
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{
		data:       data,
		expiration: time.Now().Add(ttl).UnixNano(),
	}
	return nil
}

// Get obtiene y deserializa un valor
func (c *Memory) Get(_ context.Context, key string, target any) (bool, error) {
	c.mu.RLock()
	item, found := c.items[key]
	c.mu.RUnlock()

	if !found || time.Now().UnixNano() > item.expiration {
		return false, nil
	}
	if err := sonic.Unmarshal(item.data, target); err != nil {
		return false, err
	}
	return true, nil
}

// Delete elimina un valor del caché
func (c *Memory) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

// DeleteByPrefix elimina todas las claves que empiecen con un prefijo
func (c *Memory) DeleteByPrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
	return nil
}

// Size retorna el número de items en caché
func (c *Memory) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Close detiene la limpieza periódica
func (c *Memory) Close() error {
	c.once.Do(func() { close(c.stop) })
	return nil
}

// cleanupExpired limpia items expirados periódicamente
func (c *Memory) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now().UnixNano()
			for key, item := range c.items {
				if now > item.expiration {
					delete(c.items, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
