// Copyright 2025 Valve Corporation
// Copyright 2025 LunarG, Inc.
// SPDX-License-Identifier: Apache-2.0

package cpp

import (
	"fmt"

	"github.com/kearwood/Vulkan-ValidationLayers/dynstate"
)

// Names of the generated files.
const (
	HeaderFileName = "dynamic_state_helper.h"
	SourceFileName = "dynamic_state_helper.cpp"
)

// DefaultGeneratorName is stamped into the banner when Options omits one.
const DefaultGeneratorName = "vvlgen"

// Copyright defaults matching the checked-in helper files.
const defaultCopyrightYears = "2023"

var defaultCopyrightHolders = []string{"Valve Corporation", "LunarG, Inc."}

// Target selects which of the two generated files to render.
type Target uint8

const (
	// TargetHeader renders dynamic_state_helper.h.
	TargetHeader Target = iota

	// TargetSource renders dynamic_state_helper.cpp.
	TargetSource
)

// String returns the target name.
func (t Target) String() string {
	switch t {
	case TargetHeader:
		return "header"
	case TargetSource:
		return "source"
	default:
		return fmt.Sprintf("Target(%d)", uint8(t))
	}
}

// Filename returns the generated file name for the target.
func (t Target) Filename() string {
	if t == TargetSource {
		return SourceFileName
	}
	return HeaderFileName
}

// TargetForFilename maps a generated file name back to its target. Unknown
// names report ok false instead of rendering an empty file.
func TargetForFilename(name string) (Target, bool) {
	switch name {
	case HeaderFileName:
		return TargetHeader, true
	case SourceFileName:
		return TargetSource, true
	default:
		return 0, false
	}
}

// Options configures C++ code generation.
type Options struct {
	// Target selects the header or the source rendition.
	Target Target

	// GeneratorName appears in the banner's second line.
	// Defaults to DefaultGeneratorName.
	GeneratorName string

	// CopyrightYears is the year text stamped on the copyright lines.
	// Defaults to "2023".
	CopyrightYears string

	// CopyrightHolders get one copyright line each, in order.
	// Defaults to Valve Corporation and LunarG, Inc.
	CopyrightHolders []string
}

// DefaultOptions returns the options the shipped generator runs with.
func DefaultOptions() Options {
	return Options{
		Target:           TargetHeader,
		GeneratorName:    DefaultGeneratorName,
		CopyrightYears:   defaultCopyrightYears,
		CopyrightHolders: defaultCopyrightHolders,
	}
}

func (t Target) isValid() bool {
	return t == TargetHeader || t == TargetSource
}

// Generate renders one helper file for the collected dynamic states.
// Returns the file contents as a string, or an error for an unknown
// target.
func Generate(set *dynstate.Set, options Options) (string, error) {
	if !options.Target.isValid() {
		return "", fmt.Errorf("cpp: unknown target %s", options.Target)
	}

	// Apply defaults for zero values
	if options.GeneratorName == "" {
		options.GeneratorName = DefaultGeneratorName
	}
	if options.CopyrightYears == "" {
		options.CopyrightYears = defaultCopyrightYears
	}
	if options.CopyrightHolders == nil {
		options.CopyrightHolders = defaultCopyrightHolders
	}

	w := newWriter(set, &options)
	w.writeFile()
	return w.String(), nil
}
