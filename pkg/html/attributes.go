package html

// Attributes is an ordered key/value store for element attributes.
// Insertion order is preserved so rendering is deterministic.
type Attributes struct {
	keys   []string
	values map[string]string
}

// NewAttributes creates an empty attribute store.
func NewAttributes() *Attributes {
	return &Attributes{
		values: make(map[string]string),
	}
}

// Set stores an attribute. Re-setting an existing key updates its value
// in place; the key keeps its original position.
func (a *Attributes) Set(key, value string) {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value for key and whether it is present.
func (a *Attributes) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	value, ok := a.values[key]
	return value, ok
}

// Len returns the number of stored attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Each calls fn for every attribute in insertion order.
func (a *Attributes) Each(fn func(key, value string)) {
	if a == nil {
		return
	}
	for _, key := range a.keys {
		fn(key, a.values[key])
	}
}
