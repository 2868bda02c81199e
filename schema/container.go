package schema

// Pair is a column name with the value it will be written with.
type Pair struct {
	Name  string
	Value any
}

// Container holds the identity and value fields of one entity instance,
// each in declaration order.
type Container struct {
	identity []Pair
	values   []Pair
}

// AddIdentity appends an identity field.
func (c *Container) AddIdentity(name string, value any) {
	c.identity = append(c.identity, Pair{Name: name, Value: value})
}

// AddValue appends a value field.
func (c *Container) AddValue(name string, value any) {
	c.values = append(c.values, Pair{Name: name, Value: value})
}

// IdentityPairs returns the identity fields.
func (c *Container) IdentityPairs() []Pair { return c.identity }

// ValuePairs returns the value fields.
func (c *Container) ValuePairs() []Pair { return c.values }

// AllPairs returns identity fields followed by value fields.
func (c *Container) AllPairs() []Pair {
	all := make([]Pair, 0, len(c.identity)+len(c.values))
	all = append(all, c.identity...)
	return append(all, c.values...)
}

// IdentityNames returns the identity column names.
func (c *Container) IdentityNames() []string { return names(c.identity) }

// ValueNames returns the value column names.
func (c *Container) ValueNames() []string { return names(c.values) }

// AllNames returns identity column names followed by value column names.
func (c *Container) AllNames() []string { return names(c.AllPairs()) }

func names(pairs []Pair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.Name
	}
	return out
}
