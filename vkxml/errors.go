// Copyright 2025 Valve Corporation
// Copyright 2025 LunarG, Inc.
// SPDX-License-Identifier: Apache-2.0

package vkxml

import "fmt"

// ErrorKind categorizes registry parsing errors.
type ErrorKind uint8

const (
	// ErrSyntax indicates the document is not well-formed XML.
	ErrSyntax ErrorKind = iota

	// ErrStructure indicates well-formed XML that violates registry shape,
	// for example an enums block or required enumerant without a name.
	ErrStructure
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "Syntax"
	case ErrStructure:
		return "Structure"
	default:
		return "Unknown"
	}
}

// Error represents a registry parsing error. Per the registry contract these
// are build-time defects in the input document, not runtime conditions; they
// are reported and never recovered.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("vkxml %s: %s", e.Kind, e.Message)
}

// NewError creates a new registry error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// IsSyntax returns true if the error is ErrSyntax.
func (e *Error) IsSyntax() bool { return e.Kind == ErrSyntax }

// IsStructure returns true if the error is ErrStructure.
func (e *Error) IsStructure() bool { return e.Kind == ErrStructure }
