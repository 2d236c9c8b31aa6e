// Package vt implements a streaming recognizer for ANSI/VT100 control
// sequences and UTF-8 text. Bytes go in through Parser.Advance; what
// comes out is a series of callbacks on a user-supplied Performer:
// printable characters, single-byte controls, and complete CSI, ESC,
// DCS and OSC sequences with their parameters and intermediates.
//
// The parser is a table-driven state machine in the style of the DEC
// ANSI-compatible video terminals, extended with UTF-8 decoding and
// C1 handling for 8-bit streams. It never returns errors and never
// loses framing: malformed sequences are tracked to their end and
// flagged, ill-formed UTF-8 becomes U+FFFD, and unknown controls pass
// through to the Performer to accept or drop.
//
// Parsing is synchronous and allocation-free on the hot path. The
// parser carries its incomplete state across Advance calls, so a
// sequence split at any byte boundary produces the same callbacks as
// the unsplit stream.
package vt

import "unicode/utf8"

const (
	// maxIntermediates bounds the intermediate bytes kept per sequence.
	// Real control functions carry at most two.
	maxIntermediates = 2

	// maxOscRaw bounds the accumulated OSC payload. Longer payloads
	// mark the string ignored and its dispatch is withheld.
	maxOscRaw = 1024

	// maxOscFields caps the ';' split performed at dispatch time.
	// Separators past the cap stay inside the last field.
	maxOscFields = 16
)

// Parser is a streaming recognizer for VT100-family control sequences
// and UTF-8 text. It holds no reference to its consumer and produces no
// errors: malformed input is absorbed, substituted, or ignored, and the
// parser is always ready for the next byte.
//
// The zero value is ready to use. One Parser serves one byte stream;
// sharing an instance across concurrent streams interleaves state and
// is unsupported. Duplicate the parser per stream instead.
type Parser struct {
	state State

	params     Params
	param      uint16 // parameter currently being accumulated
	pendingSub bool   // the accumulating parameter was introduced by ':'

	intermediates  [maxIntermediates]byte
	intermediateIx int

	// ignoring marks a sequence that overflowed a collector. The
	// sequence is still tracked to its end, then dispatched with the
	// ignore flag set so the consumer can decide what to do with it.
	ignoring bool

	oscRaw      []byte
	oscOverflow bool
	oscFields   [maxOscFields][]byte

	utf8 utf8Decoder
}

// NewParser returns a Parser in the Ground state.
func NewParser() *Parser {
	return &Parser{}
}

// Advance processes bytes in order, invoking performer callbacks
// synchronously for every recognized unit. Splitting a stream across
// multiple Advance calls produces exactly the callbacks the
// concatenated input would, at whatever chunk size the reader happens
// to deliver.
func (p *Parser) Advance(performer Performer, bytes []byte) {
	i := 0
	for i < len(bytes) {
		if p.state == StateGround {
			i += p.advanceGround(performer, bytes[i:])
		} else {
			p.advanceByte(performer, bytes[i])
			i++
		}
	}
}

// Reset returns the parser to Ground and empties every collector. For
// use when the stream itself is known to have lost framing; ordinary
// malformed input never needs it.
func (p *Parser) Reset() {
	p.state = StateGround
	p.clearSequence()
	p.oscRaw = p.oscRaw[:0]
	p.oscOverflow = false
	p.utf8.reset()
}

// State exposes the current state for diagnostics.
func (p *Parser) State() State {
	return p.state
}

// advanceGround is the Ground fast path: printable ASCII dispatches
// straight to Print and complete multi-byte runes decode in one step,
// skipping per-byte table lookups. Observable behavior is identical to
// feeding the same bytes through advanceByte one at a time; the
// differential tests hold the two paths to that.
func (p *Parser) advanceGround(performer Performer, bytes []byte) int {
	i := 0
	for i < len(bytes) {
		b := bytes[i]
		switch {
		case b >= 0x20 && b < 0x7f:
			performer.Print(rune(b))
			i++
		case b < 0x80: // C0 control, or DEL
			p.advanceByte(performer, b)
			i++
			if p.state != StateGround {
				return i
			}
		case !utf8.FullRune(bytes[i:]):
			// Possible partial sequence at the end of the chunk; the
			// scalar path carries it across the Advance boundary.
			p.advanceByte(performer, b)
			return i + 1
		default:
			if r, size := utf8.DecodeRune(bytes[i:]); size > 1 {
				performer.Print(r)
				i += size
				continue
			}
			// Stray continuation, invalid lead, or a C1 control: one
			// table step sorts it.
			p.advanceByte(performer, b)
			i++
			if p.state != StateGround {
				return i
			}
		}
	}
	return i
}

// advanceByte is the scalar path: one table transition per byte.
func (p *Parser) advanceByte(performer Performer, b byte) {
	if p.state == StateUtf8 {
		p.advanceUtf8(performer, b)
		return
	}
	packed := transitions[p.state][b]
	next := State(packed >> 4)
	act := action(packed & 0x0f)
	if next == stateAnywhere {
		p.performAction(performer, act, b)
		return
	}
	p.transitionTo(performer, next, act, b)
}

func (p *Parser) advanceUtf8(performer Performer, b byte) {
	r, status := p.utf8.next(b)
	switch status {
	case utf8More:
	case utf8Done:
		performer.Print(r)
		p.state = StateGround
	case utf8Reject:
		// One replacement character for the failed sequence, then the
		// offending byte is reprocessed as if it had arrived in
		// Ground. It may itself begin a valid sequence.
		performer.Print(utf8.RuneError)
		p.state = StateGround
		p.utf8.reset()
		p.advanceByte(performer, b)
	}
}

// transitionTo runs the exit action of the old state, the transition
// action, then the entry action of the new state, in that order.
func (p *Parser) transitionTo(performer Performer, next State, act action, b byte) {
	switch p.state {
	case StateDcsPassthrough:
		p.performAction(performer, actionUnhook, b)
	case StateOscString:
		p.performAction(performer, actionOscEnd, b)
	}

	p.performAction(performer, act, b)

	switch next {
	case StateEscape, StateCsiEntry, StateDcsEntry:
		p.performAction(performer, actionClear, b)
	case StateDcsPassthrough:
		p.performAction(performer, actionHook, b)
	case StateOscString:
		p.performAction(performer, actionOscStart, b)
	}

	p.state = next
}

func (p *Parser) performAction(performer Performer, act action, b byte) {
	switch act {
	case actionNone:

	case actionPrint:
		performer.Print(rune(b))

	case actionExecute:
		performer.Execute(b)

	case actionClear:
		p.clearSequence()

	case actionCollect:
		if p.intermediateIx == maxIntermediates {
			p.ignoring = true
		} else {
			p.intermediates[p.intermediateIx] = b
			p.intermediateIx++
		}

	case actionParam:
		if p.params.full() {
			p.ignoring = true
			return
		}
		switch b {
		case ';':
			p.params.push(p.param, p.pendingSub)
			p.param = 0
			p.pendingSub = false
		case ':':
			p.params.push(p.param, p.pendingSub)
			p.param = 0
			p.pendingSub = true
		default:
			p.param = saturatingDigit(p.param, b-'0')
		}

	case actionEscDispatch:
		performer.EscDispatch(p.currentIntermediates(), p.ignoring, b)

	case actionCsiDispatch:
		p.pushPendingParam()
		performer.CsiDispatch(&p.params, p.currentIntermediates(), p.ignoring, b)

	case actionHook:
		p.pushPendingParam()
		performer.Hook(&p.params, p.currentIntermediates(), p.ignoring, b)

	case actionPut:
		performer.Put(b)

	case actionUnhook:
		performer.Unhook()

	case actionOscStart:
		p.oscRaw = p.oscRaw[:0]
		p.oscOverflow = false

	case actionOscPut:
		if len(p.oscRaw) == maxOscRaw {
			p.oscOverflow = true
		} else {
			p.oscRaw = append(p.oscRaw, b)
		}

	case actionOscEnd:
		p.dispatchOsc(performer, b)

	case actionBeginUtf8:
		p.utf8.begin(b)

	case actionInvalid:
		performer.Print(utf8.RuneError)
	}
}

// pushPendingParam completes the parameter still being accumulated
// when a sequence dispatches. The trailing parameter always exists, so
// a bare final byte still carries one zero-valued parameter and a
// trailing ';' contributes an explicit 0.
func (p *Parser) pushPendingParam() {
	if p.params.full() {
		p.ignoring = true
		return
	}
	p.params.push(p.param, p.pendingSub)
}

func (p *Parser) currentIntermediates() []byte {
	return p.intermediates[:p.intermediateIx]
}

func (p *Parser) clearSequence() {
	p.params.clear()
	p.param = 0
	p.pendingSub = false
	p.intermediateIx = 0
	p.ignoring = false
}

// dispatchOsc splits the accumulated payload on ';' and hands the
// fields over. Payload overflow withholds the dispatch entirely: a
// truncated OSC string is worse than none, since its meaning lives in
// the payload.
func (p *Parser) dispatchOsc(performer Performer, terminator byte) {
	if p.oscOverflow {
		return
	}
	bel := terminator == 0x07
	if len(p.oscRaw) == 0 {
		performer.OscDispatch(p.oscFields[:0], bel)
		return
	}
	n := 0
	start := 0
	for i := 0; i < len(p.oscRaw) && n < maxOscFields-1; i++ {
		if p.oscRaw[i] == ';' {
			p.oscFields[n] = p.oscRaw[start:i]
			n++
			start = i + 1
		}
	}
	p.oscFields[n] = p.oscRaw[start:]
	n++
	performer.OscDispatch(p.oscFields[:n], bel)
}
