package vt

// State identifies where the parser currently sits in the control
// sequence grammar. The zero value is StateGround, so a zero Parser is
// ready to use.
type State uint8

const (
	StateGround State = iota
	StateEscape
	StateEscapeIntermediate
	StateCsiEntry
	StateCsiParam
	StateCsiIntermediate
	StateCsiIgnore
	StateDcsEntry
	StateDcsParam
	StateDcsIntermediate
	StateDcsPassthrough
	StateDcsIgnore
	StateOscString
	StateSosPmApcString
	StateUtf8

	// stateAnywhere never becomes the parser state. As a transition
	// target it marks table entries that perform an action without
	// leaving the current state.
	stateAnywhere
)

var stateNames = [...]string{
	StateGround:             "Ground",
	StateEscape:             "Escape",
	StateEscapeIntermediate: "EscapeIntermediate",
	StateCsiEntry:           "CsiEntry",
	StateCsiParam:           "CsiParam",
	StateCsiIntermediate:    "CsiIntermediate",
	StateCsiIgnore:          "CsiIgnore",
	StateDcsEntry:           "DcsEntry",
	StateDcsParam:           "DcsParam",
	StateDcsIntermediate:    "DcsIntermediate",
	StateDcsPassthrough:     "DcsPassthrough",
	StateDcsIgnore:          "DcsIgnore",
	StateOscString:          "OscString",
	StateSosPmApcString:     "SosPmApcString",
	StateUtf8:               "Utf8",
	stateAnywhere:           "Anywhere",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// action is the table-selected operation performed for one input byte.
type action uint8

const (
	actionNone action = iota
	actionPrint
	actionExecute
	actionClear
	actionCollect
	actionParam
	actionEscDispatch
	actionCsiDispatch
	actionHook
	actionPut
	actionUnhook
	actionOscStart
	actionOscPut
	actionOscEnd
	actionBeginUtf8
	actionInvalid
)

// Transitions are packed into one byte: target state in the high
// nibble, action in the low nibble. Both enums fit four bits exactly.
func pack(next State, act action) byte {
	return byte(next)<<4 | byte(act)
}

// transitions maps (current state, input byte) to a packed transition.
// Built once; Advance does a single indexed load per byte.
var transitions = buildTransitions()

func buildTransitions() [stateAnywhere][256]byte {
	var t [stateAnywhere][256]byte

	fill := func(s State, lo, hi int, next State, act action) {
		for b := lo; b <= hi; b++ {
			t[s][b] = pack(next, act)
		}
	}
	one := func(s State, b int, next State, act action) {
		t[s][b] = pack(next, act)
	}

	for s := StateGround; s < stateAnywhere; s++ {
		fill(s, 0x00, 0xff, stateAnywhere, actionNone)
	}

	// Ground: text, C0/C1 controls, and UTF-8 lead bytes. The 8-bit C1
	// range only reaches this row on non-UTF-8 streams; well-formed
	// UTF-8 keeps continuation bytes inside StateUtf8.
	fill(StateGround, 0x00, 0x17, stateAnywhere, actionExecute)
	one(StateGround, 0x19, stateAnywhere, actionExecute)
	fill(StateGround, 0x1c, 0x1f, stateAnywhere, actionExecute)
	fill(StateGround, 0x20, 0x7f, stateAnywhere, actionPrint)
	fill(StateGround, 0x80, 0x8f, stateAnywhere, actionExecute)
	one(StateGround, 0x90, StateDcsEntry, actionNone)
	fill(StateGround, 0x91, 0x9a, stateAnywhere, actionExecute)
	one(StateGround, 0x98, StateSosPmApcString, actionNone)
	one(StateGround, 0x9b, StateCsiEntry, actionNone)
	one(StateGround, 0x9d, StateOscString, actionNone)
	one(StateGround, 0x9e, StateSosPmApcString, actionNone)
	one(StateGround, 0x9f, StateSosPmApcString, actionNone)
	fill(StateGround, 0xa0, 0xc1, stateAnywhere, actionInvalid)
	fill(StateGround, 0xc2, 0xdf, StateUtf8, actionBeginUtf8)
	fill(StateGround, 0xe0, 0xef, StateUtf8, actionBeginUtf8)
	fill(StateGround, 0xf0, 0xf4, StateUtf8, actionBeginUtf8)
	fill(StateGround, 0xf5, 0xff, stateAnywhere, actionInvalid)

	fill(StateEscape, 0x00, 0x17, stateAnywhere, actionExecute)
	one(StateEscape, 0x19, stateAnywhere, actionExecute)
	fill(StateEscape, 0x1c, 0x1f, stateAnywhere, actionExecute)
	fill(StateEscape, 0x20, 0x2f, StateEscapeIntermediate, actionCollect)
	fill(StateEscape, 0x30, 0x4f, StateGround, actionEscDispatch)
	one(StateEscape, 0x50, StateDcsEntry, actionNone)
	fill(StateEscape, 0x51, 0x57, StateGround, actionEscDispatch)
	one(StateEscape, 0x58, StateSosPmApcString, actionNone)
	one(StateEscape, 0x59, StateGround, actionEscDispatch)
	one(StateEscape, 0x5a, StateGround, actionEscDispatch)
	one(StateEscape, 0x5b, StateCsiEntry, actionNone)
	one(StateEscape, 0x5c, StateGround, actionEscDispatch)
	one(StateEscape, 0x5d, StateOscString, actionNone)
	one(StateEscape, 0x5e, StateSosPmApcString, actionNone)
	one(StateEscape, 0x5f, StateSosPmApcString, actionNone)
	fill(StateEscape, 0x60, 0x7e, StateGround, actionEscDispatch)

	fill(StateEscapeIntermediate, 0x00, 0x17, stateAnywhere, actionExecute)
	one(StateEscapeIntermediate, 0x19, stateAnywhere, actionExecute)
	fill(StateEscapeIntermediate, 0x1c, 0x1f, stateAnywhere, actionExecute)
	fill(StateEscapeIntermediate, 0x20, 0x2f, stateAnywhere, actionCollect)
	fill(StateEscapeIntermediate, 0x30, 0x7e, StateGround, actionEscDispatch)

	fill(StateCsiEntry, 0x00, 0x17, stateAnywhere, actionExecute)
	one(StateCsiEntry, 0x19, stateAnywhere, actionExecute)
	fill(StateCsiEntry, 0x1c, 0x1f, stateAnywhere, actionExecute)
	fill(StateCsiEntry, 0x20, 0x2f, StateCsiIntermediate, actionCollect)
	fill(StateCsiEntry, 0x30, 0x3b, StateCsiParam, actionParam)
	fill(StateCsiEntry, 0x3c, 0x3f, StateCsiParam, actionCollect)
	fill(StateCsiEntry, 0x40, 0x7e, StateGround, actionCsiDispatch)

	fill(StateCsiParam, 0x00, 0x17, stateAnywhere, actionExecute)
	one(StateCsiParam, 0x19, stateAnywhere, actionExecute)
	fill(StateCsiParam, 0x1c, 0x1f, stateAnywhere, actionExecute)
	fill(StateCsiParam, 0x20, 0x2f, StateCsiIntermediate, actionCollect)
	fill(StateCsiParam, 0x30, 0x3b, stateAnywhere, actionParam)
	fill(StateCsiParam, 0x3c, 0x3f, StateCsiIgnore, actionNone)
	fill(StateCsiParam, 0x40, 0x7e, StateGround, actionCsiDispatch)

	fill(StateCsiIntermediate, 0x00, 0x17, stateAnywhere, actionExecute)
	one(StateCsiIntermediate, 0x19, stateAnywhere, actionExecute)
	fill(StateCsiIntermediate, 0x1c, 0x1f, stateAnywhere, actionExecute)
	fill(StateCsiIntermediate, 0x20, 0x2f, stateAnywhere, actionCollect)
	fill(StateCsiIntermediate, 0x30, 0x3f, StateCsiIgnore, actionNone)
	fill(StateCsiIntermediate, 0x40, 0x7e, StateGround, actionCsiDispatch)

	fill(StateCsiIgnore, 0x00, 0x17, stateAnywhere, actionExecute)
	one(StateCsiIgnore, 0x19, stateAnywhere, actionExecute)
	fill(StateCsiIgnore, 0x1c, 0x1f, stateAnywhere, actionExecute)
	fill(StateCsiIgnore, 0x40, 0x7e, StateGround, actionNone)

	// DCS header states drop C0 controls instead of executing them.
	fill(StateDcsEntry, 0x20, 0x2f, StateDcsIntermediate, actionCollect)
	fill(StateDcsEntry, 0x30, 0x3b, StateDcsParam, actionParam)
	fill(StateDcsEntry, 0x3c, 0x3f, StateDcsParam, actionCollect)
	fill(StateDcsEntry, 0x40, 0x7e, StateDcsPassthrough, actionNone)

	fill(StateDcsParam, 0x20, 0x2f, StateDcsIntermediate, actionCollect)
	fill(StateDcsParam, 0x30, 0x3b, stateAnywhere, actionParam)
	fill(StateDcsParam, 0x3c, 0x3f, StateDcsIgnore, actionNone)
	fill(StateDcsParam, 0x40, 0x7e, StateDcsPassthrough, actionNone)

	fill(StateDcsIntermediate, 0x20, 0x2f, stateAnywhere, actionCollect)
	fill(StateDcsIntermediate, 0x30, 0x3f, StateDcsIgnore, actionNone)
	fill(StateDcsIntermediate, 0x40, 0x7e, StateDcsPassthrough, actionNone)

	fill(StateDcsPassthrough, 0x00, 0x17, stateAnywhere, actionPut)
	one(StateDcsPassthrough, 0x19, stateAnywhere, actionPut)
	fill(StateDcsPassthrough, 0x1c, 0x1f, stateAnywhere, actionPut)
	fill(StateDcsPassthrough, 0x20, 0x7e, stateAnywhere, actionPut)
	one(StateDcsPassthrough, 0x9c, StateGround, actionNone)

	one(StateDcsIgnore, 0x9c, StateGround, actionNone)

	one(StateSosPmApcString, 0x9c, StateGround, actionNone)

	// OSC payload is raw: everything from 0x20 up accumulates, including
	// bytes above 0x7f. Only BEL or ESC-led ST terminate the string.
	one(StateOscString, 0x07, StateGround, actionNone)
	fill(StateOscString, 0x20, 0xff, stateAnywhere, actionOscPut)

	// CAN and SUB abort any sequence; ESC restarts from anywhere. Applied
	// last so they win in every state.
	for s := StateGround; s < stateAnywhere; s++ {
		one(s, 0x18, StateGround, actionExecute)
		one(s, 0x1a, StateGround, actionExecute)
		one(s, 0x1b, StateEscape, actionNone)
	}

	return t
}
