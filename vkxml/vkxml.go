// Copyright 2025 Valve Corporation
// Copyright 2025 LunarG, Inc.
// SPDX-License-Identifier: Apache-2.0

package vkxml

import (
	"fmt"
	"os"
)

// DefaultAPI is the API variant honored when merging feature and extension
// requirements unless Options says otherwise.
const DefaultAPI = "vulkan"

// Options configures registry parsing.
type Options struct {
	// API selects which api=/supported= variant of the registry to honor.
	// Defaults to "vulkan" if empty.
	API string
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{API: DefaultAPI}
}

// EnumMember is a single enumerant of an enumeration group.
type EnumMember struct {
	// Name is the symbolic registry name, e.g. VK_DYNAMIC_STATE_SCISSOR.
	Name string

	// Alias names the canonical member this one is a synonym for.
	// Empty for canonical members.
	Alias string

	// Value is the numeric value as declared or as computed from an
	// extension offset. Empty when the registry does not state one.
	Value string
}

// IsAlias reports whether the member is a synonym for another member.
func (m EnumMember) IsAlias() bool { return m.Alias != "" }

// EnumGroup is one named enumeration group with members in merged registry
// order: core members first, then required extension enumerants in the order
// features and extensions appear in the document.
type EnumGroup struct {
	// Name is the group name, e.g. VkDynamicState.
	Name string

	// Members are the group's enumerants in merged order.
	Members []EnumMember
}

// Registry is a parsed Vulkan XML registry, reduced to its enumeration
// groups. Groups keep document order.
type Registry struct {
	// Groups are the enumeration groups in document order.
	Groups []EnumGroup

	// index maps group name to its position in Groups. Built during
	// parsing; registries assembled by hand are indexed on first lookup.
	index map[string]int
}

// Group returns the enumeration group with the given name.
func (r *Registry) Group(name string) (*EnumGroup, bool) {
	if r.index == nil {
		r.index = make(map[string]int, len(r.Groups))
		for i, g := range r.Groups {
			if _, exists := r.index[g.Name]; !exists {
				r.index[g.Name] = i
			}
		}
	}
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return &r.Groups[i], true
}

// groupIndex returns the position of the group with the given name,
// creating the group if needed. Appending to Groups can move the backing
// array, so parsing works through indexes rather than held pointers.
func (r *Registry) groupIndex(name string) int {
	if r.index == nil {
		r.index = make(map[string]int, 16)
	}
	if i, exists := r.index[name]; exists {
		return i
	}
	i := len(r.Groups)
	r.index[name] = i
	r.Groups = append(r.Groups, EnumGroup{Name: name})
	return i
}

// LoadFile reads and parses a registry document from disk.
func LoadFile(path string, opts Options) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	reg, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}
	return reg, nil
}
