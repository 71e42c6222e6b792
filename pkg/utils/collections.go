package utils

import (
	"bytes"
	"fmt"
	"math/rand/v2"

	"github.com/goccy/go-json"
)

const (
	randomStringAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	DefaultRandomStringLength = 10
)

// Groups is the ordered result of GroupBy.
type Groups[T any] struct {
	keys  []string
	items map[string][]T
}

// Keys returns the group keys in order of first occurrence.
func (g *Groups[T]) Keys() []string {
	return append([]string(nil), g.keys...)
}

// Get returns the items grouped under key, in input order.
func (g *Groups[T]) Get(key string) []T {
	return g.items[key]
}

// Len returns the number of groups.
func (g *Groups[T]) Len() int {
	return len(g.keys)
}

// MarshalJSON encodes the groups as an object whose members follow Keys.
func (g *Groups[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(g.items[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// GroupBy partitions items by the string form of key(item).
func GroupBy[T any, K comparable](items []T, key func(T) K) *Groups[T] {
	groups := &Groups[T]{items: make(map[string][]T)}
	for _, item := range items {
		k := fmt.Sprint(key(item))
		if _, exists := groups.items[k]; !exists {
			groups.keys = append(groups.keys, k)
		}
		groups.items[k] = append(groups.items[k], item)
	}
	return groups
}

// RemoveDuplicates removes duplicate values from a slice, keeping the first
// occurrence of each
func RemoveDuplicates[T comparable](slice []T) []T {
	keys := make(map[T]bool)
	result := []T{}

	for _, item := range slice {
		if _, exists := keys[item]; !exists {
			keys[item] = true
			result = append(result, item)
		}
	}

	return result
}

// RemoveDuplicatesBy keeps the first item for each distinct key(item).
func RemoveDuplicatesBy[T any, K comparable](slice []T, key func(T) K) []T {
	seen := make(map[K]bool)
	result := []T{}

	for _, item := range slice {
		k := key(item)
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, item)
	}

	return result
}

// GenerateRandomString returns length alphanumeric characters. Zero selects
// DefaultRandomStringLength. Not suitable for secrets; use GenerateID.
func GenerateRandomString(length int) string {
	length = DefaultInt(length, DefaultRandomStringLength)
	if length < 0 {
		return ""
	}

	b := make([]byte, length)
	for i := range b {
		b[i] = randomStringAlphabet[rand.IntN(len(randomStringAlphabet))]
	}
	return string(b)
}

// DeepClone copies v through a JSON round trip. Only what JSON carries
// survives: unexported fields are lost and times come back from their
// RFC 3339 text. Values JSON cannot encode return an error.
func DeepClone[T any](v T) (T, error) {
	var clone T

	data, err := json.Marshal(v)
	if err != nil {
		return clone, fmt.Errorf("deep clone: encode: %w", err)
	}
	if err := json.Unmarshal(data, &clone); err != nil {
		return clone, fmt.Errorf("deep clone: decode: %w", err)
	}
	return clone, nil
}
