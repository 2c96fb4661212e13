package config

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=UnknownPolicy -linecomment

// UnknownPolicy decides what an import does with a relation of unknown type.
type UnknownPolicy int

const (
	PolicyAbort UnknownPolicy = iota // abort
	PolicySkip                       // skip
)

// ParsePolicy parses "abort" or "skip".
func ParsePolicy(s string) (UnknownPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case PolicyAbort.String():
		return PolicyAbort, nil
	case PolicySkip.String():
		return PolicySkip, nil
	default:
		return 0, fmt.Errorf("unknown relation policy %q (want abort or skip)", s)
	}
}
