/*
Copyright (C) 2026  pephint contributors

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package hint

import "fmt"

// Kind is the closed error taxonomy from spec §7. It is a tag, not a
// message: message text lives on GenError and may reference a hint's
// Describe()'d form, but never a caller-specific identifier, so that a
// memoized error stays valid regardless of who asked for it.
type Kind uint8

const (
	HintNonCompliant Kind = iota
	HintUnsupported
	SignUnsupported
	HintIgnorablePresent
	MixedAnnotatedMetadata
	RootNotChecked
	ForwardRefMalformed
	DuplicateName
	HintTooLarge
)

func (k Kind) String() string {
	switch k {
	case HintNonCompliant:
		return "HintNonCompliant"
	case HintUnsupported:
		return "HintUnsupported"
	case SignUnsupported:
		return "SignUnsupported"
	case HintIgnorablePresent:
		return "HintIgnorablePresent"
	case MixedAnnotatedMetadata:
		return "MixedAnnotatedMetadata"
	case RootNotChecked:
		return "RootNotChecked"
	case ForwardRefMalformed:
		return "ForwardRefMalformed"
	case DuplicateName:
		return "DuplicateName"
	case HintTooLarge:
		return "HintTooLarge"
	default:
		return "Unknown"
	}
}

// GenError is the only error type the core returns. Kind selects the
// taxonomy bucket (spec §7); Detail is free text for humans.
type GenError struct {
	Kind   Kind
	Detail string
}

func (e *GenError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func errf(k Kind, format string, a ...any) *GenError {
	return &GenError{Kind: k, Detail: fmt.Sprintf(format, a...)}
}
