// Package prefs stores small scalar key-value preferences such as lifetime
// farming totals.
package prefs

import (
	"sort"
	"strconv"
)

// Store is a scalar key-value preference store.
// Setters are buffered until Save.
type Store interface {
	Int(key string, def int) int
	SetInt(key string, v int)
	String(key, def string) string
	SetString(key, v string)
	Has(key string) bool
	Delete(key string)
	Keys() []string
	Save() error
}

// Memory is a Store kept only in memory.
type Memory struct {
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Int(key string, def int) int {
	s, ok := m.values[key]
	if !ok {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func (m *Memory) SetInt(key string, v int) {
	m.values[key] = strconv.Itoa(v)
}

func (m *Memory) String(key, def string) string {
	s, ok := m.values[key]
	if !ok {
		return def
	}
	return s
}

func (m *Memory) SetString(key, v string) {
	m.values[key] = v
}

func (m *Memory) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m *Memory) Delete(key string) {
	delete(m.values, key)
}

// Keys returns the stored keys in sorted order.
func (m *Memory) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save is a no-op for the in-memory store.
func (m *Memory) Save() error { return nil }
