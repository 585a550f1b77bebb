package db

// KVStore is the storage surface the listing cache needs: point reads and
// writes over opaque keys, nothing more.
type KVStore interface {
	Get(key []byte) ([]byte, error)
	Put(key []byte, value []byte) error
	Has(key []byte) (bool, error)
	Close() error
}
