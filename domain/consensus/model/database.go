package model

// DBCursor iterates over the entries of a single bucket, in key order
type DBCursor interface {
	// Next moves the cursor to the next entry. It returns false once the
	// cursor is exhausted.
	Next() bool

	// First moves the cursor to the first entry. It returns false if the
	// bucket is empty.
	First() bool

	// Key returns the key of the current entry, or ErrNotFound if the
	// cursor is exhausted. The returned key must not be modified.
	Key() (DBKey, error)

	// Value returns the value of the current entry, or ErrNotFound if the
	// cursor is exhausted. The returned slice must not be modified, and may
	// change on the next call to Next.
	Value() ([]byte, error)

	// Close releases associated resources.
	Close() error
}

// DBReader reads committed ledger state
type DBReader interface {
	// Get gets the value for the given key. It returns
	// ErrNotFound if the given key does not exist.
	Get(key DBKey) ([]byte, error)

	// Has returns true if the database contains the given key.
	Has(key DBKey) (bool, error)

	// Cursor begins a new cursor over the given bucket.
	Cursor(bucket DBBucket) (DBCursor, error)
}

// DBWriter is an interface to write to the database
type DBWriter interface {
	DBReader

	// Put sets the value for the given key, overwriting any previous value.
	Put(key DBKey, value []byte) error

	// Delete deletes the value for the given key. Deleting a missing key
	// is not an error.
	Delete(key DBKey) error
}

// DBTransaction is a set of writes that is applied atomically once
// committed. Stores commit their staged changes into one.
type DBTransaction interface {
	DBWriter

	// Commit applies the transaction's writes to the database.
	Commit() error

	// RollbackUnlessClosed discards the transaction's writes, unless it
	// was already committed or rolled back.
	RollbackUnlessClosed() error
}

// DBManager is the database the ledger is kept in
type DBManager interface {
	DBWriter

	// Begin begins a new database transaction.
	Begin() (DBTransaction, error)
}

// DBKey is a key within a bucket
type DBKey interface {
	Bytes() []byte
	Bucket() DBBucket
	Suffix() []byte
}

// DBBucket is a namespace of keys. Every store keeps its entries in its
// own bucket.
type DBBucket interface {
	Key(suffix []byte) DBKey
	Path() []byte
}
