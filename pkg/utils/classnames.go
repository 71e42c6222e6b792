package utils

import (
	"sort"
	"strings"
)

// ClassPart is one argument to Cn: a Class, a ClassMap or a ClassIf toggle.
type ClassPart interface {
	classNames() []string
}

// Class is a literal class name. The empty Class is dropped.
type Class string

func (c Class) classNames() []string {
	if c == "" {
		return nil
	}
	return []string{string(c)}
}

// ClassMap contributes every key mapped to true, in sorted order.
type ClassMap map[string]bool

func (m ClassMap) classNames() []string {
	names := make([]string, 0, len(m))
	for name, on := range m {
		if on && name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

type classToggle struct {
	name string
	on   bool
}

func (t classToggle) classNames() []string {
	if !t.on || t.name == "" {
		return nil
	}
	return []string{t.name}
}

// ClassIf contributes name only when on is true. Unlike ClassMap it keeps
// its position among the other parts.
func ClassIf(name string, on bool) ClassPart {
	return classToggle{name: name, on: on}
}

// Cn joins class names for an HTML class attribute.
//
//	Cn(Class("btn"), ClassIf("btn-active", active), ClassMap{"disabled": off})
func Cn(parts ...ClassPart) string {
	var names []string
	for _, part := range parts {
		if part == nil {
			continue
		}
		names = append(names, part.classNames()...)
	}
	return strings.TrimSpace(strings.Join(names, " "))
}
