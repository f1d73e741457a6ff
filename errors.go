// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hlist

import (
	"errors"
	"fmt"
	"strconv"
)

// Operations that cannot prove their precondition from the list type alone
// report failures with these sentinels, wrapped in a structured error that
// names the operation and the element type involved.
var (
	// ErrNotFound reports that no element has the requested type.
	ErrNotFound = errors.New("hlist: element type not found")

	// ErrAmbiguous reports that more than one element has the requested type.
	ErrAmbiguous = errors.New("hlist: element type is ambiguous")

	// ErrCapability reports that an element does not satisfy a required type.
	ErrCapability = errors.New("hlist: element lacks capability")

	// ErrLength reports a length mismatch between a list type and its source.
	ErrLength = errors.New("hlist: length mismatch")
)

// LookupError describes a failed type-indexed lookup.
type LookupError struct {
	Op    string // operation, e.g. "Get"
	Type  string // requested element type
	Count int    // number of elements with that type
}

func (e *LookupError) Error() string {
	if e.Count == 0 {
		return "hlist: " + e.Op + "[" + e.Type + "]: element type not found"
	}
	return "hlist: " + e.Op + "[" + e.Type + "]: element type is ambiguous (" + strconv.Itoa(e.Count) + " matches)"
}

// Unwrap returns [ErrNotFound] or [ErrAmbiguous].
func (e *LookupError) Unwrap() error {
	if e.Count == 0 {
		return ErrNotFound
	}
	return ErrAmbiguous
}

// CapabilityError describes an element that does not satisfy the type an
// operation requires of every element.
type CapabilityError struct {
	Op    string // operation, e.g. "Visit"
	Index int    // position of the offending element
	Have  string // type of the element
	Want  string // required type
}

func (e *CapabilityError) Error() string {
	return "hlist: " + e.Op + ": element " + strconv.Itoa(e.Index) + " (" + e.Have + ") does not satisfy " + e.Want
}

// Unwrap returns [ErrCapability].
func (e *CapabilityError) Unwrap() error { return ErrCapability }

// LengthError describes a source that does not have exactly as many elements
// as the target list type.
type LengthError struct {
	Op   string
	Want int
	Have int // lower bound when the source was longer than Want
}

func (e *LengthError) Error() string {
	if e.Have > e.Want {
		return "hlist: " + e.Op + ": too many elements, want " + strconv.Itoa(e.Want)
	}
	return "hlist: " + e.Op + ": not enough elements, have " + strconv.Itoa(e.Have) + ", want " + strconv.Itoa(e.Want)
}

// Unwrap returns [ErrLength].
func (e *LengthError) Unwrap() error { return ErrLength }

// typeName returns the name of V for diagnostics.
// The pointer indirection keeps interface types from printing as <nil>.
func typeName[V any]() string {
	return fmt.Sprintf("%T", (*V)(nil))[1:]
}
