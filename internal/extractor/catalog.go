package extractor

import "sort"

// FunctionCatalog accumulates the unique pipeline function-reference names
// seen across a run. It is owned by whoever coordinates the run and is only
// ever written from a single goroutine.
type FunctionCatalog struct {
	names map[string]struct{}
}

// NewFunctionCatalog creates an empty FunctionCatalog
func NewFunctionCatalog() *FunctionCatalog {
	return &FunctionCatalog{
		names: make(map[string]struct{}),
	}
}

// Add records a function-reference name
func (c *FunctionCatalog) Add(name string) {
	c.names[name] = struct{}{}
}

// Merge absorbs all names from another catalog
func (c *FunctionCatalog) Merge(other *FunctionCatalog) {
	if other == nil {
		return
	}
	for name := range other.names {
		c.names[name] = struct{}{}
	}
}

// Len returns the number of unique names
func (c *FunctionCatalog) Len() int {
	return len(c.names)
}

// Names returns the unique names sorted alphabetically
func (c *FunctionCatalog) Names() []string {
	names := make([]string, 0, len(c.names))
	for name := range c.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
