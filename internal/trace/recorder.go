// Package trace turns parser callbacks into a durable event stream for
// the vtdump CLI: recorded events, text and JSON renderings, and
// aggregate counts.
package trace

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/raphamorim/rio-sub001/pkg/seqinfo"
	"github.com/raphamorim/rio-sub001/pkg/vt"
)

// Kind tags which parser callback produced an event.
type Kind string

// Event kinds, one per Performer callback.
const (
	KindPrint   Kind = "print"
	KindExecute Kind = "execute"
	KindCsi     Kind = "csi"
	KindEsc     Kind = "esc"
	KindHook    Kind = "hook"
	KindPut     Kind = "put"
	KindUnhook  Kind = "unhook"
	KindOsc     Kind = "osc"
)

// Event is one parser callback with everything it carried, copied out
// of the parser's buffers so it stays valid indefinitely. Parameters
// keep their subparameter markers through the rendered form ("38:2:1"
// versus "38;2;1"). The JSON field names are stable; vtdump's JSON
// output is this struct, one object per line.
type Event struct {
	Kind Kind `json:"kind"`

	// Print
	Char  string `json:"char,omitempty"`
	Width int    `json:"width,omitempty"`

	// Execute and Put, rendered "0x0a"
	Byte string `json:"byte,omitempty"`

	// Csi, Esc, Hook
	Params        string `json:"params,omitempty"`
	Intermediates string `json:"intermediates,omitempty"`
	Final         string `json:"final,omitempty"`
	Ignore        bool   `json:"ignore,omitempty"`

	// Osc
	Payload        []string `json:"payload,omitempty"`
	BellTerminated bool     `json:"bell_terminated,omitempty"`

	// Mnemonic from seqinfo when one is known
	Name string `json:"name,omitempty"`
}

// Recorder implements vt.Performer. Events either accumulate for later
// inspection or stream to a sink as they happen; the streaming form
// holds nothing, so arbitrarily long inputs stay flat in memory.
type Recorder struct {
	sink   func(Event)
	events []Event
}

// NewRecorder returns a Recorder that accumulates events.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewStreaming returns a Recorder that hands each event to sink
// instead of keeping it.
func NewStreaming(sink func(Event)) *Recorder {
	return &Recorder{sink: sink}
}

// Events returns the accumulated events. Nil in streaming mode.
func (r *Recorder) Events() []Event {
	return r.events
}

func (r *Recorder) emit(ev Event) {
	if r.sink != nil {
		r.sink(ev)
		return
	}
	r.events = append(r.events, ev)
}

// Print implements vt.Performer.
func (r *Recorder) Print(ru rune) {
	r.emit(Event{
		Kind:  KindPrint,
		Char:  string(ru),
		Width: runewidth.RuneWidth(ru),
	})
}

// Execute implements vt.Performer.
func (r *Recorder) Execute(b byte) {
	r.emit(Event{
		Kind: KindExecute,
		Byte: fmt.Sprintf("0x%02x", b),
		Name: seqinfo.ControlName(b),
	})
}

// CsiDispatch implements vt.Performer.
func (r *Recorder) CsiDispatch(params *vt.Params, intermediates []byte, ignore bool, final byte) {
	r.emit(Event{
		Kind:          KindCsi,
		Params:        params.String(),
		Intermediates: string(intermediates),
		Final:         string(final),
		Ignore:        ignore,
		Name:          seqinfo.CsiName(intermediates, final),
	})
}

// EscDispatch implements vt.Performer.
func (r *Recorder) EscDispatch(intermediates []byte, ignore bool, final byte) {
	r.emit(Event{
		Kind:          KindEsc,
		Intermediates: string(intermediates),
		Final:         string(final),
		Ignore:        ignore,
		Name:          seqinfo.EscName(intermediates, final),
	})
}

// Hook implements vt.Performer.
func (r *Recorder) Hook(params *vt.Params, intermediates []byte, ignore bool, final byte) {
	r.emit(Event{
		Kind:          KindHook,
		Params:        params.String(),
		Intermediates: string(intermediates),
		Final:         string(final),
		Ignore:        ignore,
	})
}

// Put implements vt.Performer.
func (r *Recorder) Put(b byte) {
	r.emit(Event{
		Kind: KindPut,
		Byte: fmt.Sprintf("0x%02x", b),
	})
}

// Unhook implements vt.Performer.
func (r *Recorder) Unhook() {
	r.emit(Event{Kind: KindUnhook})
}

// OscDispatch implements vt.Performer.
func (r *Recorder) OscDispatch(params [][]byte, bellTerminated bool) {
	fields := make([]string, len(params))
	for i, p := range params {
		fields[i] = string(p)
	}
	var name string
	if len(fields) > 0 {
		name = seqinfo.OscName(params[0])
	}
	r.emit(Event{
		Kind:           KindOsc,
		Payload:        fields,
		BellTerminated: bellTerminated,
		Name:           name,
	})
}
