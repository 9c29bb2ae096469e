package config

import (
	"time"

	"github.com/inhies/go-bytesize"
)

type CacheConfig struct {
	Enabled    bool              `koanf:"enabled"`
	MaxEntries uint64            `koanf:"max_entries"`
	MaxMemory  bytesize.ByteSize `koanf:"max_memory,string"`
	// TTL of zero keeps entries until they are evicted.
	TTL time.Duration `koanf:"ttl" validate:"gte=0s"`
}
