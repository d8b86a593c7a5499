// Copyright 2025 Valve Corporation
// Copyright 2025 LunarG, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package vkxml parses the Vulkan XML API registry (vk.xml).
//
// The registry is the machine-readable description of the whole Vulkan API
// surface. This package keeps only what code generation needs: enumeration
// groups and their members, with feature- and extension-required enumerants
// merged into the group they extend, the way the Khronos registry tooling
// presents them.
//
// # Components
//
//   - Registry: the parsed document, an ordered list of enumeration groups
//   - EnumGroup: one named group in registry (merged) order
//   - EnumMember: a single enumerant, with its alias marker when the name
//     is a synonym for another member
//
// # Usage
//
//	reg, err := vkxml.LoadFile("vk.xml", vkxml.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	group, ok := reg.Group("VkDynamicState")
//
// # Merge semantics
//
// Core <enums> blocks are read first, in document order. Then <feature> and
// <extension> requirements carrying extends="..." are appended to the group
// they extend, in document order, skipping features and extensions whose
// api/supported list does not include the requested API (and, with that,
// anything marked disabled). A required name already present in its group is
// ignored; promoted extensions legitimately re-require the same enumerant.
package vkxml
