// SPDX-License-Identifier: MIT

// Package offsets: specifier parsing.
// Parse accepts the alias grammar [multiplier]base[alignment][-anchor] and
// normalizes equivalent spellings: "1MS" parses the same as "MS", legacy
// "T" means "min", and the bare period tokens "M"/"Q"/"Y" normalize to the
// end-aligned forms "ME"/"QE"/"YE".
package offsets

import (
	"fmt"
	"strconv"
	"strings"
)

// baseSpec describes one recognized head token.
type baseSpec struct {
	base  Base
	align Alignment
}

var headTokens = map[string]baseSpec{
	"s":   {BaseSecond, AlignNone},
	"S":   {BaseSecond, AlignNone},
	"min": {BaseMinute, AlignNone},
	"T":   {BaseMinute, AlignNone},
	"h":   {BaseHour, AlignNone},
	"H":   {BaseHour, AlignNone},
	"D":   {BaseDay, AlignNone},
	"W":   {BaseWeek, AlignNone},
	"MS":  {BaseMonth, AlignStart},
	"ME":  {BaseMonth, AlignEnd},
	"M":   {BaseMonth, AlignEnd},
	"QS":  {BaseQuarter, AlignStart},
	"QE":  {BaseQuarter, AlignEnd},
	"Q":   {BaseQuarter, AlignEnd},
	"YS":  {BaseYear, AlignStart},
	"YE":  {BaseYear, AlignEnd},
	"Y":   {BaseYear, AlignEnd},
}

// Parse parses a periodic-spacing specifier into its components.
//
// The multiplier may be negative (descending contexts) but not zero. The
// anchor, when present, must suit the base unit: a weekday token for W, a
// month token for Q*/Y*. Any other shape fails with ErrParse.
func Parse(spec string) (Alias, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return Alias{}, fmt.Errorf("%w: empty specifier", ErrParse)
	}

	// Split off the multiplier.
	i := 0
	if s[0] == '-' || s[0] == '+' {
		i = 1
	}
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n := 1
	if digits := s[:i]; digits != "" && digits != "+" && digits != "-" {
		v, err := strconv.Atoi(digits)
		if err != nil {
			return Alias{}, fmt.Errorf("%w: %q", ErrParse, spec)
		}
		n = v
	} else if digits == "-" {
		// A bare sign negates the implicit multiplier of one.
		n = -1
	} else if digits == "+" {
		n = 1
	}
	if n == 0 {
		return Alias{}, fmt.Errorf("%w: %q", ErrZeroMultiplier, spec)
	}

	head, anchor, hasAnchor := strings.Cut(s[i:], "-")
	bs, ok := headTokens[head]
	if !ok {
		return Alias{}, fmt.Errorf("%w: %q", ErrParse, spec)
	}

	if hasAnchor {
		anchor = strings.ToUpper(anchor)
		switch bs.base {
		case BaseWeek:
			if _, ok := weekdayByToken[anchor]; !ok {
				return Alias{}, fmt.Errorf("%w: %q", ErrBadAnchor, spec)
			}
		case BaseQuarter, BaseYear:
			if _, ok := monthByToken[anchor]; !ok {
				return Alias{}, fmt.Errorf("%w: %q", ErrBadAnchor, spec)
			}
		default:
			return Alias{}, fmt.Errorf("%w: %q", ErrBadAnchor, spec)
		}
	} else {
		anchor = ""
	}

	return Alias{N: n, Base: bs.base, Alignment: bs.align, Anchor: anchor}, nil
}

// MustParse is a test and example helper; it panics on invalid specifiers.
func MustParse(spec string) Alias {
	a, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return a
}
