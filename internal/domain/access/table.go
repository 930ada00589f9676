package access

import "sync"

// Table classifies routes by method and router path template, e.g. "GET /api/reviews/:id".
type Table struct {
	mu      sync.RWMutex
	classes map[string]Class
}

func NewTable() *Table {
	return &Table{classes: make(map[string]Class)}
}

func (t *Table) Set(method, pathTemplate string, class Class) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.classes[method+" "+pathTemplate] = class
}

// Classify falls back to ClassAuthenticated for anything not registered.
func (t *Table) Classify(method, pathTemplate string) Class {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if c, ok := t.classes[method+" "+pathTemplate]; ok {
		return c
	}
	return ClassAuthenticated
}
