package boundary

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger provides structured logging with consistent fields, adapted
// from explorer/indexer/pkg/logger's Logger down to the one method
// (Warn) this package actually calls.
type logger struct {
	base zerolog.Logger
}

func newLogger(component string) *logger {
	l := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("component", component).
		Logger().
		Level(zerolog.InfoLevel)
	zerolog.DurationFieldUnit = time.Millisecond
	return &logger{base: l}
}

func (l *logger) Warn(msg string, keyvals ...interface{}) {
	l.base.Warn().Fields(kvToMap(keyvals...)).Msg(msg)
}

func kvToMap(kv ...interface{}) map[string]interface{} {
	fields := make(map[string]interface{})
	for i := 0; i < len(kv)-1; i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		fields[key] = kv[i+1]
	}
	return fields
}

var log = newLogger("curvesim-boundary")
