// Package rosdebug provides an optional, structured-logging implementation
// of routeros.Sink for callers who want to see the words crossing the
// wire without writing their own sink. The core package never imports
// this one — logging sinks are an injectable collaborator, not part of
// the protocol engine itself.
package rosdebug

import (
	"github.com/rs/zerolog"

	"github.com/mikroapi/routeros"
)

// ZerologSink returns a routeros.Sink that writes one debug-level event
// per word, tagging it with the direction marker and the logger's
// existing fields. Grounded in acornnugget-router-brute's MikroTik v6/v7
// modules, which log every protocol step through zlog at Trace/Debug
// level rather than with bare fmt/log calls.
func ZerologSink(logger zerolog.Logger) routeros.Sink {
	return func(direction, word string) {
		logger.Debug().
			Str("direction", direction).
			Str("word", word).
			Msg("routeros word")
	}
}
