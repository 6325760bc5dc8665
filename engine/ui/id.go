package ui

// ID is the stable integer identity derived from a caller-supplied string
// key. Stability across frames is what enables state persistence; uniqueness
// across unrelated call sites is a caller contract, not enforced here.
type ID uint64

const idNone ID = 0

// Hash maps a widget key to its identity (FNV-1a, 64 bit).
func Hash(key string) ID {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= prime64
	}
	if h == 0 {
		h = prime64 // reserve 0 for "no widget"
	}
	return ID(h)
}

// SubID derives a child identity from a parent key and an element key,
// useful for widgets generated in loops.
func SubID(parent, child string) ID {
	return Hash(parent + "##" + child)
}
