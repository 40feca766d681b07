package ldb

import "github.com/syndtr/goleveldb/leveldb/opt"

// The ledger is written once per block in a single batch, so writes are
// buffered modestly and reads are served from the block cache.
const writeBufferMiB = 16

func options(cacheSizeMiB int) *opt.Options {
	return &opt.Options{
		Compression:            opt.NoCompression,
		BlockCacheCapacity:     cacheSizeMiB * opt.MiB,
		WriteBuffer:            writeBufferMiB * opt.MiB,
		DisableSeeksCompaction: true,
	}
}
