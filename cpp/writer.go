// Copyright 2025 Valve Corporation
// Copyright 2025 LunarG, Inc.
// SPDX-License-Identifier: Apache-2.0

package cpp

import (
	"fmt"
	"strings"

	"github.com/kearwood/Vulkan-ValidationLayers/dynstate"
)

// Writer renders one generated C++ file from a dynamic state set.
type Writer struct {
	set     *dynstate.Set
	options *Options

	// Output buffer
	out strings.Builder

	// Current indentation level
	indent int
}

// newWriter creates a writer for one rendition.
func newWriter(set *dynstate.Set, options *Options) *Writer {
	return &Writer{set: set, options: options}
}

// String returns the rendered file contents.
func (w *Writer) String() string {
	return w.out.String()
}

// writeFile renders the complete file for the configured target.
func (w *Writer) writeFile() {
	w.writeBanner()
	w.writeCopyright()

	if w.options.Target == TargetSource {
		w.writeLine(`#include "core_checks/core_validation.h"`)
		w.writeToOriginal()
		w.writeToLocal()
		w.writeStringHelpers()
		return
	}

	w.writeLine("#pragma once")
	w.writeLine("#include <bitset>")
	w.writeLocalEnum()
}

// writeBanner writes the do-not-edit marker naming the generator.
func (w *Writer) writeBanner() {
	w.writeLine("// *** THIS FILE IS GENERATED - DO NOT EDIT ***")
	w.writeLine("// See %s for modifications", w.options.GeneratorName)
	w.writeLine("")
	w.writeLine("")
}

// writeCopyright writes the Apache-2.0 block comment, one copyright line
// per holder.
func (w *Writer) writeCopyright() {
	w.writeLine("/***************************************************************************")
	w.writeLine(" *")
	for _, holder := range w.options.CopyrightHolders {
		w.writeLine(" * Copyright (c) %s %s", w.options.CopyrightYears, holder)
	}
	w.writeLine(" *")
	w.writeLine(` * Licensed under the Apache License, Version 2.0 (the "License");`)
	w.writeLine(" * you may not use this file except in compliance with the License.")
	w.writeLine(" * You may obtain a copy of the License at")
	w.writeLine(" *")
	w.writeLine(" *     http://www.apache.org/licenses/LICENSE-2.0")
	w.writeLine(" *")
	w.writeLine(" * Unless required by applicable law or agreed to in writing, software")
	w.writeLine(` * distributed under the License is distributed on an "AS IS" BASIS,`)
	w.writeLine(" * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.")
	w.writeLine(" * See the License for the specific language governing permissions and")
	w.writeLine(" * limitations under the License.")
	w.writeLine(" ****************************************************************************/")
	w.writeLine("")
}

// writeLocalEnum writes the reordered enum, the bitset alias and the
// helper declarations. States are numbered from 1 so the closing
// CB_DYNAMIC_STATE_STATUS_NUM enumerant doubles as the bitset width.
func (w *Writer) writeLocalEnum() {
	w.writeLine("")
	w.writeLine("// Reorders VkDynamicState so it can be a bitset")
	w.writeLine("typedef enum CBDynamicState {")
	w.pushIndent()
	for _, state := range w.set.States() {
		w.writeLine("%s = %d,", state.Local, state.Value)
	}
	w.writeLine("%s = %d", dynstate.CountName, w.set.Count())
	w.popIndent()
	w.writeLine("} CBDynamicState;")
	w.writeLine("")
	w.writeLine("using CBDynamicFlags = std::bitset<%s>;", dynstate.CountName)
	w.writeLine("CBDynamicState ConvertToCBDynamicState(VkDynamicState dynamic_state);")
	w.writeLine("const char* DynamicStateToString(CBDynamicState dynamic_state);")
	w.writeLine("std::string DynamicStatesToString(CBDynamicFlags const &dynamic_states);")
	w.writeLine("")
}

// writeToOriginal writes the local-to-original conversion. Unknown values
// fall through to VK_DYNAMIC_STATE_MAX_ENUM.
func (w *Writer) writeToOriginal() {
	w.writeLine("")
	w.writeLine("static VkDynamicState ConvertToDynamicState(CBDynamicState dynamic_state) {")
	w.pushIndent()
	w.writeLine("switch (dynamic_state) {")
	w.pushIndent()
	for _, state := range w.set.States() {
		w.writeLine("case %s:", state.Local)
		w.pushIndent()
		w.writeLine("return %s;", state.Original)
		w.popIndent()
	}
	w.writeLine("default:")
	w.pushIndent()
	w.writeLine("return %s;", dynstate.InvalidName)
	w.popIndent()
	w.popIndent()
	w.writeLine("}")
	w.popIndent()
	w.writeLine("}")
}

// writeToLocal writes the original-to-local conversion. Unknown values
// fall through to the out-of-range CB_DYNAMIC_STATE_STATUS_NUM.
func (w *Writer) writeToLocal() {
	w.writeLine("")
	w.writeLine("CBDynamicState ConvertToCBDynamicState(VkDynamicState dynamic_state) {")
	w.pushIndent()
	w.writeLine("switch (dynamic_state) {")
	w.pushIndent()
	for _, state := range w.set.States() {
		w.writeLine("case %s:", state.Original)
		w.pushIndent()
		w.writeLine("return %s;", state.Local)
		w.popIndent()
	}
	w.writeLine("default:")
	w.pushIndent()
	w.writeLine("return %s;", dynstate.CountName)
	w.popIndent()
	w.popIndent()
	w.writeLine("}")
	w.popIndent()
	w.writeLine("}")
}

// writeStringHelpers writes the single-state and flag-set formatters. The
// flag formatter walks values in ascending order and renders the
// out-of-range marker when nothing is set.
func (w *Writer) writeStringHelpers() {
	w.writeLine("")
	w.writeLine("const char* DynamicStateToString(CBDynamicState dynamic_state) {")
	w.pushIndent()
	w.writeLine("return string_VkDynamicState(ConvertToDynamicState(dynamic_state));")
	w.popIndent()
	w.writeLine("}")
	w.writeLine("")
	w.writeLine("std::string DynamicStatesToString(CBDynamicFlags const &dynamic_states) {")
	w.pushIndent()
	w.writeLine("std::string ret;")
	w.writeLine("// enum is not zero based")
	w.writeLine("for (int index = 1; index < %s; ++index) {", dynstate.CountName)
	w.pushIndent()
	w.writeLine("CBDynamicState status = static_cast<CBDynamicState>(index);")
	w.writeLine("if (dynamic_states[status]) {")
	w.pushIndent()
	w.writeLine(`if (!ret.empty()) ret.append("|");`)
	w.writeLine("ret.append(string_VkDynamicState(ConvertToDynamicState(status)));")
	w.popIndent()
	w.writeLine("}")
	w.popIndent()
	w.writeLine("}")
	w.writeLine("if (ret.empty()) ret.append(string_VkDynamicState(ConvertToDynamicState(%s)));", dynstate.CountName)
	w.writeLine("return ret;")
	w.popIndent()
	w.writeLine("}")
	w.writeLine("")
}

// writeLine writes an indented line followed by a newline.
func (w *Writer) writeLine(format string, args ...any) {
	w.writeIndent()
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

// writeIndent writes the current indentation.
func (w *Writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("    ")
	}
}

// pushIndent increases indentation.
func (w *Writer) pushIndent() {
	w.indent++
}

// popIndent decreases indentation.
func (w *Writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}
