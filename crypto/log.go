package crypto

import (
	"github.com/btcsuite/btclog/v2"
	"github.com/davecgh/go-spew/spew"
)

// Subsystem defines the logging code for this subsystem.
const Subsystem = "CRPT"

// log is a logger that is initialized with the btclog.Disabled logger.
var log btclog.Logger

// The default amount of logging is none.
func init() {
	UseLogger(btclog.Disabled)
}

// DisableLog disables all logging output.
func DisableLog() {
	UseLogger(btclog.Disabled)
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// logClosure defers expensive formatting until the logger decides the
// message is worth printing.
type logClosure func() string

func (c logClosure) String() string {
	return c()
}

func spewClosure(a any) logClosure {
	return func() string {
		return spew.Sdump(a)
	}
}
