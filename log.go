// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// engineLog wraps a leveled, structured logger tagged with a run identifier.
// rudd gates the same kind of phase/GC narration behind a _DEBUG/_LOGLEVEL
// build tag and a bare log.Printf (see hkernel.go, hudd.go); we keep the same
// trigger points but route them through charmbracelet/log so that
// concurrent, independently-tabled analyses (an engine is only safe to run
// in parallel when each instance owns its own tables) can be told apart in
// the log stream by run ID rather than by interleaved bare-text lines.
type engineLog struct {
	logger *log.Logger
	runID  uuid.UUID
	on     bool
}

func newEngineLog(debug bool) *engineLog {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "zbdd",
	})
	if debug {
		l.SetLevel(log.DebugLevel)
	} else {
		l.SetLevel(log.WarnLevel)
	}
	return &engineLog{
		logger: l,
		runID:  uuid.New(),
		on:     debug,
	}
}

func (e *engineLog) phase(name string, kv ...interface{}) {
	if e == nil {
		return
	}
	args := append([]interface{}{"run", e.runID.String()}, kv...)
	e.logger.Debug(name, args...)
}

func (e *engineLog) warn(format string, kv ...interface{}) {
	if e == nil {
		return
	}
	e.logger.Warn(format, kv...)
}
