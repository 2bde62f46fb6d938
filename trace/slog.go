package trace

import (
	"context"
	"log/slog"
)

// NewSlogSink returns a Sink that writes each event as a structured log
// record at the given level. Attributes carry the event fields relevant to
// its kind; a nil logger yields a Nop sink.
func NewSlogSink(logger *slog.Logger, level slog.Level) Sink {
	if logger == nil {
		return Nop()
	}
	return &slogSink{logger: logger, level: level}
}

type slogSink struct {
	logger *slog.Logger
	level  slog.Level
}

func (s *slogSink) Emit(ev Event) {
	ctx := context.Background()
	if !s.logger.Enabled(ctx, s.level) {
		return
	}
	s.logger.LogAttrs(ctx, s.level, ev.Kind.String(), eventAttrs(ev)...)
}

func eventAttrs(ev Event) []slog.Attr {
	attrs := []slog.Attr{slog.String("matcher", ev.Matcher)}
	switch ev.Kind {
	case Compare:
		attrs = append(attrs, slog.Int("shift", ev.Shift), slog.Bool("ok", ev.Ok))
	case Transition, Fallback:
		attrs = append(attrs,
			slog.Int("pos", ev.Pos),
			slog.Int("from", ev.State),
			slog.Int("to", ev.Next),
			slog.Any("symbol", ev.Symbol),
		)
	case RowBuilt:
		attrs = append(attrs, slog.Int("row", ev.State), slog.Int("from", ev.Next))
		if ev.Table != nil {
			attrs = append(attrs, slog.Any("table", ev.Table))
		}
	case PrefixStep:
		attrs = append(attrs, slog.Int("pos", ev.Pos), slog.Int("value", ev.Next))
		if ev.Table != nil {
			attrs = append(attrs, slog.Any("table", ev.Table))
		}
	case Hash:
		attrs = append(attrs,
			slog.Int("pos", ev.Pos),
			slog.Any("symbol", ev.Symbol),
			slog.Uint64("hash", ev.Hash),
		)
	case Roll, HashHit, SpuriousHit:
		attrs = append(attrs,
			slog.Int("shift", ev.Shift),
			slog.Uint64("hash", ev.Hash),
			slog.Uint64("pattern_hash", ev.PatternHash),
		)
	case Match:
		attrs = append(attrs, slog.Int("shift", ev.Shift))
	}
	return attrs
}
