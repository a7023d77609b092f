// Package catalog holds the static reference tables the planner prices and
// recommends from. Tables are package data; accessors hand out copies.
package catalog

import "strings"

// entry is one row in an alias-matched table. A destination matches when its
// lowercase form contains any alias.
type entry[T any] struct {
	aliases []string
	value   T
}

func match[T any](table []entry[T], destination string) (T, bool) {
	d := strings.ToLower(strings.TrimSpace(destination))
	if d != "" {
		for _, e := range table {
			for _, a := range e.aliases {
				if strings.Contains(d, a) {
					return e.value, true
				}
			}
		}
	}
	var zero T
	return zero, false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
