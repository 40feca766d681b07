package consensus

import "github.com/kaspanet/kaspadns/domain/dagconfig"

// Config is a descriptor for consensus configuration
type Config struct {
	dagconfig.Params

	// UTXOCacheSize is the number of UTXO entries kept in memory. Zero
	// disables the cache.
	UTXOCacheSize int
}

const defaultUTXOCacheSize = 10_000

// NewConfig returns the default consensus configuration of the network
// described by params
func NewConfig(params *dagconfig.Params) *Config {
	return &Config{
		Params:        *params,
		UTXOCacheSize: defaultUTXOCacheSize,
	}
}
