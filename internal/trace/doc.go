// Package trace is the structured event log of the strn command.
//
// Commands open spans around their work (a whole command, one input file,
// one token pass) and the configured Tracer writes them out as text or
// NDJSON, keeps them in a ring buffer, or both.
//
// # Levels
//
//   - LevelOff: nothing is recorded
//   - LevelError: only explicit error points
//   - LevelCommand: command boundaries
//   - LevelFile: per-file events
//   - LevelDebug: everything, token passes included
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "tokenize", 0)
//	defer span.End("")
package trace
