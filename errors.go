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

package router

import "github.com/dfamux/router/compiler"

// These re-export the compiler package's registration-time sentinel errors
// so callers can errors.Is against them without importing compiler
// themselves.
var (
	ErrEmptyPattern             = compiler.ErrEmptyPattern
	ErrNilHandler               = compiler.ErrNilHandler
	ErrMalformedPlaceholder     = compiler.ErrMalformedPlaceholder
	ErrAdjacentPlaceholders     = compiler.ErrAdjacentPlaceholders
	ErrDuplicatePlaceholderName = compiler.ErrDuplicatePlaceholderName
	ErrWildcardNotFinal         = compiler.ErrWildcardNotFinal
	ErrTooManyPlaceholders      = compiler.ErrTooManyPlaceholders
	ErrUnknownConstraintName    = compiler.ErrUnknownConstraintName
)
