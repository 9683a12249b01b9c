package logging

import (
	"os"
	"time"

	"github.com/andrei-cloud/eblp/internal/errorcodes"
	"github.com/andrei-cloud/eblp/pkg/eblp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger initializes the zerolog logger with the specified debug mode and output format.
func InitLogger(debug, human bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano                 // always initialize base logger with timestamp.
	base := zerolog.New(os.Stderr).With().Timestamp().Logger() // initialize base logger.
	if human {
		log.Logger = base.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339Nano,
		}) // select output format.
	} else {
		log.Logger = base // use JSON logger.
	}
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel) // set debug level.
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel) // set info level.
	}
}

// LogParsed logs a plugin document that passed validation.
func LogParsed(path string, rec eblp.Record) {
	log.Info().
		Str("event", "document_parsed").
		Str("path", path).
		Str("name", rec.Name).
		Str("version", rec.Version).
		Str("id", rec.ID).
		Int("script_bytes", len(rec.Script)).
		Msg("parsed plugin document")
}

// LogRejected logs a plugin document that failed validation.
func LogRejected(path string, errs []errorcodes.CompilerError) {
	codes := make([]string, len(errs))
	msgs := make([]string, len(errs))
	for i, e := range errs {
		codes[i] = e.CodeOnly()
		msgs[i] = e.Description
	}

	log.Warn().
		Str("event", "document_rejected").
		Str("path", path).
		Strs("codes", codes).
		Strs("errors", msgs).
		Int("error_count", len(errs)).
		Msg("plugin document rejected")
}

// LogCompiled logs a written .eblp file.
func LogCompiled(src, dst string, rec eblp.Record) {
	log.Info().
		Str("event", "plugin_compiled").
		Str("source", src).
		Str("destination", dst).
		Str("name", rec.Name).
		Str("id", rec.ID).
		Msg("compiled plugin")
}
