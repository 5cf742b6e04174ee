package config

import (
	"fmt"
	"reflect"
	"sync"
)

// cache stores one parsed copy per configuration type.
type cache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var globalCache = newCache()

func newCache() *cache {
	return &cache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

func (c *cache) get(key string, dst any) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.values[key]
	if !ok {
		return false
	}
	reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(cached))
	return true
}

func (c *cache) set(key string, value any) {
	c.mu.Lock()
	c.values[key] = value
	c.mu.Unlock()
}

func (c *cache) once(key string) *sync.Once {
	c.mu.Lock()
	defer c.mu.Unlock()

	once, ok := c.onces[key]
	if !ok {
		once = new(sync.Once)
		c.onces[key] = once
	}
	return once
}

func (c *cache) forget(key string) {
	c.mu.Lock()
	delete(c.values, key)
	delete(c.onces, key)
	c.mu.Unlock()
}

func (c *cache) reset() {
	c.mu.Lock()
	c.values = make(map[string]any)
	c.onces = make(map[string]*sync.Once)
	c.mu.Unlock()
}

// ResetCache drops every cached configuration.
func ResetCache() {
	globalCache.reset()
}

// ForceReloadConfig re-parses the environment into v, replacing the cached
// value of its type.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	globalCache.forget(typeKey[T]())
	return Load(v)
}

func typeKey[T any]() string {
	t := reflect.TypeFor[T]()
	return fmt.Sprintf("%s.%s", t.PkgPath(), t.String())
}
