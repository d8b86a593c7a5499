// Copyright 2025 Valve Corporation
// Copyright 2025 LunarG, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package cpp renders the dynamic state helper files consumed by the
// validation layer.
//
// The backend produces two files from one collected state set:
//
//   - dynamic_state_helper.h: the CBDynamicState enum, the CBDynamicFlags
//     bitset alias and the helper declarations
//   - dynamic_state_helper.cpp: the conversion and formatting definitions
//
// # Basic Usage
//
//	text, err := cpp.Generate(set, cpp.Options{
//	    Target: cpp.TargetHeader,
//	})
//
// Rendered output is deterministic: the same state set and options always
// produce the same bytes, so the files can be diffed against checked-in
// copies.
package cpp
