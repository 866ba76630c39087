package meter

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Config is the mutable configuration of a registry. It is applied to
// collectors at registration time, so mutations affect subsequent
// registrations only. For conflicting mutations the last one applied
// wins.
//
// All methods are safe for concurrent use.
type Config struct {
	mu         sync.RWMutex
	commonTags map[string]string
	namePrefix string
}

func newConfig() *Config {
	return &Config{
		commonTags: map[string]string{},
	}
}

// CommonTags adds tags that are stamped on every collector registered
// after this call. kvs must be alternating key/value pairs; the call
// panics on an odd number of arguments.
func (c *Config) CommonTags(kvs ...string) *Config {
	if len(kvs)%2 != 0 {
		panic(fmt.Sprintf("odd number of tag key/value arguments: %d", len(kvs)))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := 0; i < len(kvs); i += 2 {
		c.commonTags[kvs[i]] = kvs[i+1]
	}
	return c
}

// NamePrefix sets a prefix that is prepended to the names of all
// metrics registered after this call.
func (c *Config) NamePrefix(prefix string) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.namePrefix = prefix
	return c
}

func (c *Config) commonTagLabels() prometheus.Labels {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.commonTags) == 0 {
		return nil
	}
	labels := make(prometheus.Labels, len(c.commonTags))
	for key, value := range c.commonTags {
		labels[key] = value
	}
	return labels
}

func (c *Config) namePrefixValue() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.namePrefix
}
