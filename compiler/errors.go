// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compiler

import "errors"

var (
	// ErrEmptyPattern indicates a pattern string was empty.
	ErrEmptyPattern = errors.New("compiler: pattern must not be empty")

	// ErrNilHandler indicates the associated data for a terminal was nil.
	ErrNilHandler = errors.New("compiler: handler must not be nil")

	// ErrMalformedPlaceholder indicates a ':' was not followed by a name.
	ErrMalformedPlaceholder = errors.New("compiler: placeholder name must not be empty")

	// ErrAdjacentPlaceholders indicates two placeholders, or a placeholder
	// and a wildcard, were not separated by at least one literal byte.
	ErrAdjacentPlaceholders = errors.New("compiler: placeholders must be separated by a literal byte")

	// ErrDuplicatePlaceholderName indicates the same placeholder name was
	// used twice within one pattern.
	ErrDuplicatePlaceholderName = errors.New("compiler: duplicate placeholder name in pattern")

	// ErrWildcardNotFinal indicates '*' appeared somewhere other than the
	// last byte of the pattern.
	ErrWildcardNotFinal = errors.New("compiler: wildcard '*' must be the final byte of the pattern")

	// ErrTooManyPlaceholders indicates a pattern declared more than the
	// maximum of MaxPlaceholders placeholders.
	ErrTooManyPlaceholders = errors.New("compiler: pattern exceeds maximum placeholder count")

	// ErrUnknownConstraintName indicates a constraint was registered for a
	// placeholder name that does not appear in the pattern.
	ErrUnknownConstraintName = errors.New("compiler: constraint refers to a placeholder not present in the pattern")

	// ErrConflictingPlaceholder marks an internal invariant violation: two
	// NFA paths for the same terminal disagree on which placeholder is
	// active at a shared node. A correctly built single pattern can never
	// reach this, since the grammar forbids adjacent placeholders and each
	// pattern therefore produces a branch-free path. Builder code that
	// panics with this wraps it rather than returning it, matching the
	// "unrecoverable abort" this represents.
	ErrConflictingPlaceholder = errors.New("compiler: internal invariant violation: conflicting placeholder tags at one node")
)
