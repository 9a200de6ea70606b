package store

import (
	"time"
)

// ChunkInfo describes one chunk of records written by PutRecords.
type ChunkInfo struct {
	Key       string    `json:"key"`
	Chunk     string    `json:"chunk"`
	Codec     string    `json:"codec"`
	Type      string    `json:"type"`
	ByteSize  int       `json:"byte_size"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}
