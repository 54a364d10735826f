package types

// DefaultMap is a map that materializes a value for missing keys on read.
//
//	byAddress := NewDefaultMap[string](func() []Wallet { return nil })
//	byAddress.Set(w.Address, append(byAddress.Get(w.Address), w))
type DefaultMap[K comparable, V any] struct {
	data        map[K]V
	defaultFunc func() V
}

// NewDefaultMap creates an empty DefaultMap using defaultFunc for missing keys.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get returns the value for key, storing and returning a default when absent.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Set assigns val to key.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.data[key] = val
}

// ToMap exposes the underlying map.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
