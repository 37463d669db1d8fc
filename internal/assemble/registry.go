package assemble

// Key is a record's natural key within its type's registry.
type Key string

// CompositeKey joins key parts with a separator that cannot appear in field
// data, so ("ZLA", "LOS ANGELES") never collides with ("ZLALOS", "ANGELES").
func CompositeKey(parts ...string) Key {
	key := ""
	for i, p := range parts {
		if i > 0 {
			key += "\x1f"
		}
		key += p
	}
	return Key(key)
}

// Registry accumulates one record type's records during a parse pass,
// preserving file order for publication. Duplicate keys replace the earlier
// record in place, keeping its original position.
type Registry[R any] struct {
	order    []Key
	items    map[Key]*R
	replaced int
}

// NewRegistry creates an empty registry.
func NewRegistry[R any]() *Registry[R] {
	return &Registry[R]{items: make(map[Key]*R)}
}

// Insert adds a record under its natural key. A record already present under
// the same key is replaced and counted.
func (r *Registry[R]) Insert(key Key, record *R) {
	if _, exists := r.items[key]; exists {
		r.replaced++
	} else {
		r.order = append(r.order, key)
	}
	r.items[key] = record
}

// Lookup returns the record under key, if any.
func (r *Registry[R]) Lookup(key Key) (*R, bool) {
	record, ok := r.items[key]
	return record, ok
}

// Values returns the records in insertion order.
func (r *Registry[R]) Values() []*R {
	out := make([]*R, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.items[key])
	}
	return out
}

// Len returns the number of distinct records.
func (r *Registry[R]) Len() int { return len(r.order) }

// Replaced returns how many inserts displaced an earlier record.
func (r *Registry[R]) Replaced() int { return r.replaced }
