// Copyright 2025 Valve Corporation
// Copyright 2025 LunarG, Inc.
// SPDX-License-Identifier: Apache-2.0

package vkxml

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Extension enumerants are numbered in per-extension blocks starting at
// 1000000000, per the registry's offset scheme.
const (
	extEnumBase      = 1000000000
	extEnumBlockSize = 1000
)

// Raw document shapes. Only the elements code generation needs are decoded;
// everything else in vk.xml (types, commands, formats, spirv tables) is
// skipped by the decoder.
type xmlRegistry struct {
	XMLName    xml.Name        `xml:"registry"`
	Enums      []xmlEnumsBlock `xml:"enums"`
	Features   []xmlFeature    `xml:"feature"`
	Extensions []xmlExtension  `xml:"extensions>extension"`
}

type xmlEnumsBlock struct {
	Name    string    `xml:"name,attr"`
	Type    string    `xml:"type,attr"`
	Members []xmlEnum `xml:"enum"`
}

type xmlEnum struct {
	Name      string `xml:"name,attr"`
	Alias     string `xml:"alias,attr"`
	Extends   string `xml:"extends,attr"`
	Value     string `xml:"value,attr"`
	Bitpos    string `xml:"bitpos,attr"`
	Offset    string `xml:"offset,attr"`
	Dir       string `xml:"dir,attr"`
	ExtNumber string `xml:"extnumber,attr"`
}

type xmlFeature struct {
	API      string       `xml:"api,attr"`
	Name     string       `xml:"name,attr"`
	Requires []xmlRequire `xml:"require"`
}

type xmlRequire struct {
	API   string    `xml:"api,attr"`
	Enums []xmlEnum `xml:"enum"`
}

type xmlExtension struct {
	Name      string       `xml:"name,attr"`
	Number    string       `xml:"number,attr"`
	Supported string       `xml:"supported,attr"`
	Requires  []xmlRequire `xml:"require"`
}

// Parse decodes a registry document and merges feature and extension
// enumerants into the groups they extend.
func Parse(data []byte, opts Options) (*Registry, error) {
	if opts.API == "" {
		opts.API = DefaultAPI
	}

	var doc xmlRegistry
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, NewError(ErrSyntax, err.Error())
	}

	reg := &Registry{}
	seen := make(map[string]map[string]bool, len(doc.Enums))

	memberSeen := func(group, name string) bool {
		names := seen[group]
		if names == nil {
			names = make(map[string]bool)
			seen[group] = names
		}
		if names[name] {
			return true
		}
		names[name] = true
		return false
	}

	// Core <enums> blocks, in document order.
	for _, block := range doc.Enums {
		if block.Name == "" {
			return nil, NewError(ErrStructure, "enums block without a name")
		}
		gi := reg.groupIndex(block.Name)
		for _, m := range block.Members {
			if m.Name == "" {
				return nil, NewError(ErrStructure, "enumerant without a name in "+block.Name)
			}
			if memberSeen(block.Name, m.Name) {
				continue
			}
			reg.Groups[gi].Members = append(reg.Groups[gi].Members, EnumMember{
				Name:  m.Name,
				Alias: m.Alias,
				Value: literalValue(m),
			})
		}
	}

	// Feature requirements, then extension requirements, both in document
	// order, matching how the registry tooling merges them.
	for _, f := range doc.Features {
		if !apiListHas(f.API, opts.API) {
			continue
		}
		for _, req := range f.Requires {
			if req.API != "" && !apiListHas(req.API, opts.API) {
				continue
			}
			if err := mergeRequired(reg, memberSeen, req.Enums, ""); err != nil {
				return nil, err
			}
		}
	}
	for _, ext := range doc.Extensions {
		if !apiListHas(ext.Supported, opts.API) {
			continue
		}
		for _, req := range ext.Requires {
			if req.API != "" && !apiListHas(req.API, opts.API) {
				continue
			}
			if err := mergeRequired(reg, memberSeen, req.Enums, ext.Number); err != nil {
				return nil, err
			}
		}
	}

	return reg, nil
}

// mergeRequired appends the extending enumerants of one require block to
// their groups. extNumber is the owning extension's number, used to resolve
// offset-based values; it is empty for feature requirements, where the
// enumerant carries its own extnumber attribute.
func mergeRequired(reg *Registry, memberSeen func(string, string) bool, enums []xmlEnum, extNumber string) error {
	for _, m := range enums {
		if m.Extends == "" {
			// Plain constant or re-required core enumerant; nothing to merge.
			continue
		}
		if m.Name == "" {
			return NewError(ErrStructure, "required enumerant without a name extends "+m.Extends)
		}
		if memberSeen(m.Extends, m.Name) {
			continue
		}
		gi := reg.groupIndex(m.Extends)
		reg.Groups[gi].Members = append(reg.Groups[gi].Members, EnumMember{
			Name:  m.Name,
			Alias: m.Alias,
			Value: requiredValue(m, extNumber),
		})
	}
	return nil
}

// requiredValue resolves the numeric value of a required enumerant: a
// self-contained value wins, otherwise an offset is expanded against the
// owning extension's number block. Aliases and unresolvable members
// yield "".
func requiredValue(m xmlEnum, extNumber string) string {
	if v := literalValue(m); v != "" {
		return v
	}
	if m.Offset == "" {
		return ""
	}
	if m.ExtNumber != "" {
		extNumber = m.ExtNumber
	}
	extNum, err := strconv.Atoi(extNumber)
	if err != nil {
		return ""
	}
	offset, err := strconv.Atoi(m.Offset)
	if err != nil {
		return ""
	}
	value := extEnumBase + (extNum-1)*extEnumBlockSize + offset
	if m.Dir == "-" {
		value = -value
	}
	return strconv.Itoa(value)
}

// literalValue returns an enumerant's self-contained value: the explicit
// value attribute, or one computed from a bit position. Bitmask groups use
// bitpos up to 63 for the 64-bit Flags2 types.
func literalValue(m xmlEnum) string {
	if m.Value != "" {
		return m.Value
	}
	if m.Bitpos == "" {
		return ""
	}
	pos, err := strconv.Atoi(m.Bitpos)
	if err != nil || pos < 0 || pos > 63 {
		return ""
	}
	return strconv.FormatUint(1<<uint(pos), 10)
}

// apiListHas reports whether a comma-separated api list names the requested
// API. An empty list matches everything; "disabled" matches nothing.
func apiListHas(list, api string) bool {
	if list == "" {
		return true
	}
	for _, item := range strings.Split(list, ",") {
		if strings.TrimSpace(item) == api {
			return true
		}
	}
	return false
}
