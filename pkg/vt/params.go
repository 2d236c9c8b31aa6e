package vt

import (
	"iter"
	"strconv"
	"strings"
)

const (
	// MaxParams is the number of parameter slots a CSI or DCS sequence
	// can fill. Parameters past this bound are parsed but not stored,
	// and the eventual dispatch is flagged as ignored.
	MaxParams = 32

	// maxParamValue is the saturation point for a single parameter.
	// Digits keep being consumed after the cap is hit, the value just
	// stops growing.
	maxParamValue = 65535
)

// Params holds the numeric parameters collected for a CSI or DCS
// sequence, in the order they appeared. A slot can be a subparameter,
// meaning it was attached to the slot before it with ':' instead of
// ';' (the form SGR truecolor sequences like 38:2:r:g:b use).
//
// A *Params handed to a Performer aliases parser-owned storage and is
// only valid for the duration of the callback.
type Params struct {
	values [MaxParams]uint16
	subs   [MaxParams]bool
	length int
}

// Len returns the number of stored parameters, subparameters included.
func (p *Params) Len() int {
	return p.length
}

// Get returns the parameter in slot i. Out-of-range slots read as 0.
func (p *Params) Get(i int) uint16 {
	if i < 0 || i >= p.length {
		return 0
	}
	return p.values[i]
}

// Subparam reports whether slot i was joined to slot i-1 with ':'.
func (p *Params) Subparam(i int) bool {
	if i < 0 || i >= p.length {
		return false
	}
	return p.subs[i]
}

// All returns every parameter positionally, ignoring subparameter
// boundaries. The returned slice aliases internal storage.
func (p *Params) All() []uint16 {
	return p.values[:p.length]
}

// Groups iterates over parameter groups: each group is one parameter
// together with the subparameters chained to it by ':'. The yielded
// slices alias internal storage.
func (p *Params) Groups() iter.Seq[[]uint16] {
	return func(yield func([]uint16) bool) {
		start := 0
		for start < p.length {
			end := start + 1
			for end < p.length && p.subs[end] {
				end++
			}
			if !yield(p.values[start:end]) {
				return
			}
			start = end
		}
	}
}

// String renders the parameters the way they appeared inside the
// sequence: ';' between parameters, ':' before subparameters.
func (p *Params) String() string {
	var sb strings.Builder
	for i := 0; i < p.length; i++ {
		if i > 0 {
			if p.subs[i] {
				sb.WriteByte(':')
			} else {
				sb.WriteByte(';')
			}
		}
		sb.WriteString(strconv.FormatUint(uint64(p.values[i]), 10))
	}
	return sb.String()
}

func (p *Params) clear() {
	p.length = 0
}

func (p *Params) full() bool {
	return p.length == MaxParams
}

// push stores one completed parameter. Pushing into a full Params is a
// no-op; the parser decides whether that flags the sequence as ignored.
func (p *Params) push(value uint16, subparam bool) {
	if p.full() {
		return
	}
	p.values[p.length] = value
	p.subs[p.length] = subparam
	p.length++
}

// saturatingDigit folds one decimal digit into an accumulating
// parameter, capping at maxParamValue instead of overflowing.
func saturatingDigit(current uint16, digit byte) uint16 {
	v := uint32(current)*10 + uint32(digit)
	if v > maxParamValue {
		return maxParamValue
	}
	return uint16(v)
}
