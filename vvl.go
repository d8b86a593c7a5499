// Package vvl generates the dynamic state helpers of the Vulkan
// validation layers.
//
// The generator reads the Vulkan XML registry and emits a C++ header and
// source pair: a compact CBDynamicState enum covering every non-alias
// VkDynamicState enumerant, a bitset alias sized to it, and the conversion
// and formatting helpers the core checks build on.
//
// The package provides a simple, high-level API for full generation as
// well as lower-level access to the individual stages.
//
// Example usage:
//
//	data, err := os.ReadFile("vk.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	files, err := vvl.Generate(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	header := files[cpp.HeaderFileName]
//
// For stage-level control, use the vkxml, dynstate and cpp packages:
//
//	reg, _ := vkxml.Parse(data, vkxml.DefaultOptions())
//	set := vvl.Collect(reg)
//	text, err := cpp.Generate(set, cpp.DefaultOptions())
package vvl

import (
	"fmt"

	"github.com/kearwood/Vulkan-ValidationLayers/cpp"
	"github.com/kearwood/Vulkan-ValidationLayers/dynstate"
	"github.com/kearwood/Vulkan-ValidationLayers/vkxml"
)

// DynamicStateGroup is the registry enum group the generator consumes.
const DynamicStateGroup = dynstate.GroupName

// Options configures a full generation run.
type Options struct {
	// API selects which api= variants of the registry to keep
	// (default: vulkan).
	API string

	// Backend carries the banner and copyright stamp. Its Target field
	// is overridden per generated file.
	Backend cpp.Options
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		API:     vkxml.DefaultAPI,
		Backend: cpp.DefaultOptions(),
	}
}

// Generate renders both helper files from a registry document using
// default options, keyed by generated file name.
//
// This is the simplest way to run the generator. For more control, use
// GenerateWithOptions or the individual Parse/Collect/Render functions.
func Generate(data []byte) (map[string]string, error) {
	return GenerateWithOptions(data, DefaultOptions())
}

// GenerateWithOptions renders both helper files with custom options.
//
// The generation pipeline is:
//  1. Parse the registry document and merge its extension enumerants
//  2. Collect the non-alias VkDynamicState enumerants in order
//  3. Render the header and source renditions
func GenerateWithOptions(data []byte, opts Options) (map[string]string, error) {
	if opts.API == "" {
		opts.API = vkxml.DefaultAPI
	}

	reg, err := vkxml.Parse(data, vkxml.Options{API: opts.API})
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	set := Collect(reg)

	files := make(map[string]string, 2)
	for _, target := range []cpp.Target{cpp.TargetHeader, cpp.TargetSource} {
		text, err := Render(set, target, opts.Backend)
		if err != nil {
			return nil, err
		}
		files[target.Filename()] = text
	}
	return files, nil
}

// Parse parses a registry document into its enum groups.
//
// This is the first stage of generation. The registry holds every enum
// group of the document with feature and extension enumerants merged in;
// the dynamic state generator only reads one of them.
func Parse(data []byte) (*vkxml.Registry, error) {
	return vkxml.Parse(data, vkxml.DefaultOptions())
}

// Collect retains the non-alias VkDynamicState enumerants of a registry in
// declaration order and numbers them from 1.
//
// A registry without the group yields an empty set, which still renders
// structurally valid files.
func Collect(reg *vkxml.Registry) *dynstate.Set {
	collector := dynstate.NewCollector()
	if group, ok := reg.Group(DynamicStateGroup); ok {
		for _, member := range group.Members {
			collector.Add(member.Name, member.IsAlias())
		}
	}
	return collector.Finalize()
}

// Render renders one helper file from a collected set.
//
// This is the final stage of generation. The output is the complete file
// text, stable for a given set and options.
func Render(set *dynstate.Set, target cpp.Target, opts cpp.Options) (string, error) {
	opts.Target = target
	text, err := cpp.Generate(set, opts)
	if err != nil {
		return "", fmt.Errorf("render error: %w", err)
	}
	return text, nil
}
