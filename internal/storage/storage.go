package storage

// Well-known logical keys shared by every page of the site.
const (
	KeyCart        = "cart"
	KeyLastOrder   = "last_order"
	KeyCartCleared = "cart_cleared"
)

// Store is the persisted key/value surface the cart and order stores sit on.
// It mirrors browser local storage: string keys, opaque byte values, no
// transactions, last writer wins.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) ([]byte, bool, error)
	// Set persists value under key, overwriting any prior value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
