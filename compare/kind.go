// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"strings"

	"github.com/HarrisonGreenlee/isohash/refine"
)

// Kind selects the refinement used for a comparison.
type Kind uint8

const (
	// KindNode compares vertex refinement signatures.
	KindNode Kind = iota
	// KindEdge compares edge refinement signatures.
	KindEdge
	// KindWalk compares walk-count refinement signatures.
	KindWalk
)

// Kinds lists every Kind in declaration order.
func Kinds() []Kind { return []Kind{KindNode, KindEdge, KindWalk} }

// String returns the lowercase name: "node", "edge" or "walk".
func (k Kind) String() string {
	if m, ok := k.mode(); ok {
		return m.String()
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Title returns the capitalised name used in report headers ("Node").
func (k Kind) Title() string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseKind accepts "node", "edge" or "walk", case-insensitively.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := k.mode(); !ok {
		return nil, fmt.Errorf("MarshalText: %v: %w", k, ErrUnknownKind)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k Kind) mode() (refine.Mode, bool) {
	switch k {
	case KindNode:
		return refine.ModeNode, true
	case KindEdge:
		return refine.ModeEdge, true
	case KindWalk:
		return refine.ModeWalk, true
	default:
		return 0, false
	}
}
