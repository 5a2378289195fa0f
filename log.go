package delegate

import (
	"sync"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// log is the package-level structured logger, used for diagnostic
// conditions: dispatch rejections (which are also returned to the caller),
// dropped fire-and-forget errors, abandoned-call teardown, and swallowed
// panics from an abandoned waiter.
// It is never on the hot (successful-call) path. stumpy.L.New builds a
// *logiface.Logger[*stumpy.Event] that callers can replace wholesale via
// SetLogger.
var (
	logMu sync.RWMutex
	log   = stumpy.L.New()
)

// SetLogger replaces the package-level logger used for diagnostic events
// (dispatch rejection, abandoned-call teardown, swallowed panics). Pass nil
// to restore the default stumpy-backed logger.
func SetLogger(l *logiface.Logger[*stumpy.Event]) {
	logMu.Lock()
	defer logMu.Unlock()
	if l == nil {
		l = stumpy.L.New()
	}
	log = l
}

func getLogger() *logiface.Logger[*stumpy.Event] {
	logMu.RLock()
	defer logMu.RUnlock()
	return log
}
