package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/coregx/strmatch/trace"
)

// renderer prints trace events as they arrive. Matches are green,
// spurious hash hits yellow, everything else dimmed.
type renderer struct {
	w     io.Writer
	match func(a ...interface{}) string
	warn  func(a ...interface{}) string
	label func(a ...interface{}) string
	dim   func(a ...interface{}) string
}

func newRenderer(w io.Writer) *renderer {
	return &renderer{
		w:     w,
		match: color.New(color.FgGreen, color.Bold).SprintFunc(),
		warn:  color.New(color.FgYellow).SprintFunc(),
		label: color.New(color.FgCyan).SprintFunc(),
		dim:   color.New(color.Faint).SprintFunc(),
	}
}

// Emit implements trace.Sink.
func (r *renderer) Emit(ev trace.Event) {
	tag := r.label(fmt.Sprintf("%-12s", ev.Kind))
	switch ev.Kind {
	case trace.Match:
		fmt.Fprintf(r.w, "%s %s\n", r.match(fmt.Sprintf("%-12s", ev.Kind)), r.match(fmt.Sprintf("shift %d", ev.Shift)))
	case trace.SpuriousHit:
		fmt.Fprintf(r.w, "%s %s\n", r.warn(fmt.Sprintf("%-12s", ev.Kind)),
			r.warn(fmt.Sprintf("shift %d hash %d = pattern hash, text differs", ev.Shift, ev.Hash)))
	case trace.Compare:
		fmt.Fprintf(r.w, "%s shift %d %s\n", tag, ev.Shift, r.dim(okWord(ev.Ok)))
	case trace.Transition, trace.Fallback:
		fmt.Fprintf(r.w, "%s pos %d %s: %d -> %d\n", tag, ev.Pos, describe(ev.Symbol), ev.State, ev.Next)
	case trace.RowBuilt:
		fmt.Fprintf(r.w, "%s row %d %s\n", tag, ev.State, r.dim(fmt.Sprintf("copied from %d", ev.Next)))
	case trace.PrefixStep:
		fmt.Fprintf(r.w, "%s prefix[%d] = %d\n", tag, ev.Pos, ev.Next)
	case trace.Hash:
		fmt.Fprintf(r.w, "%s pos %d %s: %d\n", tag, ev.Pos, describe(ev.Symbol), ev.Hash)
	case trace.Roll, trace.HashHit:
		fmt.Fprintf(r.w, "%s shift %d hash %d %s\n", tag, ev.Shift, ev.Hash, r.dim(fmt.Sprintf("(pattern %d)", ev.PatternHash)))
	default:
		fmt.Fprintln(r.w, r.dim(ev.String()))
	}
}

func okWord(ok bool) string {
	if ok {
		return "equal"
	}
	return "differs"
}
