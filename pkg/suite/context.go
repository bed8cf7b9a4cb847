package suite

// UserContext is the mutable fixture store shared by convention across a
// suite's descendants. Sharing is by value snapshot: a child copies the
// parent's contents at branch time and never observes later parent
// mutations, which keeps interleaved or reordered sibling execution free of
// cross-talk.
type UserContext struct {
	values map[string]any
}

// NewUserContext returns an empty context.
func NewUserContext() *UserContext {
	return &UserContext{values: make(map[string]any)}
}

// FromExisting returns an independent snapshot of other's current contents.
// A nil other yields an empty context.
func FromExisting(other *UserContext) *UserContext {
	c := NewUserContext()
	if other != nil {
		for k, v := range other.values {
			c.values[k] = v
		}
	}
	return c
}

// Set stores value under key, replacing any previous value.
func (c *UserContext) Set(key string, value any) {
	c.values[key] = value
}

// Get returns the value stored under key.
func (c *UserContext) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Delete removes key from the context.
func (c *UserContext) Delete(key string) {
	delete(c.values, key)
}

// Len returns the number of stored keys.
func (c *UserContext) Len() int {
	return len(c.values)
}
