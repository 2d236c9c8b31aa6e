package vt

// Performer receives the recognized units of a byte stream. The parser
// never stores the Performer it is given; a new one may be supplied on
// every Advance call, though the usual arrangement is one long-lived
// consumer per stream.
//
// Slices passed to callbacks (parameters, intermediates, OSC fields)
// alias parser-owned buffers. They are valid only until the callback
// returns and must be copied to be retained.
type Performer interface {
	// Print delivers one decoded character of printable text.
	Print(r rune)

	// Execute handles a C0 or C1 single-byte control function.
	Execute(b byte)

	// CsiDispatch closes a control sequence. ignore is set when the
	// sequence overflowed its parameter or intermediate capacity: the
	// shape was still tracked but the contents are incomplete.
	CsiDispatch(params *Params, intermediates []byte, ignore bool, final byte)

	// EscDispatch closes a plain escape sequence.
	EscDispatch(intermediates []byte, ignore bool, final byte)

	// Hook opens a device control string. Every payload byte that
	// follows arrives through Put until Unhook closes the string.
	Hook(params *Params, intermediates []byte, ignore bool, final byte)

	// Put delivers one DCS payload byte.
	Put(b byte)

	// Unhook closes the device control string.
	Unhook()

	// OscDispatch delivers an operating system command, split into its
	// ';'-separated fields. bellTerminated distinguishes BEL-terminated
	// strings from ST-terminated or aborted ones.
	OscDispatch(params [][]byte, bellTerminated bool)
}

// NopPerformer implements Performer with empty methods. Embed it to
// implement only the callbacks a consumer cares about.
type NopPerformer struct{}

func (NopPerformer) Print(rune) {}

func (NopPerformer) Execute(byte) {}

func (NopPerformer) CsiDispatch(*Params, []byte, bool, byte) {}

func (NopPerformer) EscDispatch([]byte, bool, byte) {}

func (NopPerformer) Hook(*Params, []byte, bool, byte) {}

func (NopPerformer) Put(byte) {}

func (NopPerformer) Unhook() {}

func (NopPerformer) OscDispatch([][]byte, bool) {}
