package chainsync

import "time"

// Config tunes the sync state machine.
type Config struct {
	// MaxMetadataAttempts bounds the chain metadata requests of one initial sync round.
	MaxMetadataAttempts int
	MetadataBaseDelay   time.Duration
	MetadataMultiplier  float64
	MetadataMaxDelay    time.Duration

	HeaderChunkSize uint64
	// BlockFetchBatchSize is the number of blocks asked for in a single request.
	BlockFetchBatchSize    int
	BlockFetchConcurrency  int
	BlockRequestsPerSecond int

	ListeningInterval time.Duration
	WaitingInterval   time.Duration

	HorizonSyncHeightOffset uint64
}

// DefaultConfig returns the settings used by the node binary.
func DefaultConfig() Config {
	return Config{
		MaxMetadataAttempts:     8,
		MetadataBaseDelay:       time.Second,
		MetadataMultiplier:      2,
		MetadataMaxDelay:        time.Minute,
		HeaderChunkSize:         100,
		BlockFetchBatchSize:     10,
		BlockFetchConcurrency:   4,
		BlockRequestsPerSecond:  20,
		ListeningInterval:       30 * time.Second,
		WaitingInterval:         10 * time.Second,
		HorizonSyncHeightOffset: 50,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxMetadataAttempts <= 0 {
		c.MaxMetadataAttempts = d.MaxMetadataAttempts
	}
	if c.MetadataBaseDelay <= 0 {
		c.MetadataBaseDelay = d.MetadataBaseDelay
	}
	if c.MetadataMultiplier < 1 {
		c.MetadataMultiplier = d.MetadataMultiplier
	}
	if c.MetadataMaxDelay <= 0 {
		c.MetadataMaxDelay = d.MetadataMaxDelay
	}
	if c.HeaderChunkSize == 0 {
		c.HeaderChunkSize = d.HeaderChunkSize
	}
	if c.BlockFetchBatchSize <= 0 {
		c.BlockFetchBatchSize = d.BlockFetchBatchSize
	}
	if c.BlockFetchConcurrency <= 0 {
		c.BlockFetchConcurrency = d.BlockFetchConcurrency
	}
	if c.ListeningInterval <= 0 {
		c.ListeningInterval = d.ListeningInterval
	}
	if c.WaitingInterval <= 0 {
		c.WaitingInterval = d.WaitingInterval
	}
	return c
}
