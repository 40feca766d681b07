package panics

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/kaspanet/kaspadns/infrastructure/logger"
)

// flushTimeout bounds how long a crashing process waits for its logs
const flushTimeout = 5 * time.Second

// exitFunc is replaced in tests
var exitFunc = os.Exit

// HandlePanic must be deferred. It logs a recovered panic with the current
// stack, and spawnStack when the panic happened in a spawned goroutine,
// flushes the log backend and exits the process.
func HandlePanic(log *logger.Logger, spawnStack []byte) {
	recovered := recover()
	if recovered == nil {
		return
	}
	crash(log, fmt.Sprintf("Fatal error: %+v", recovered), debug.Stack(), spawnStack)
}

// GoroutineWrapperFunc returns a spawn function that runs f in a new
// goroutine guarded by HandlePanic. The stack of the spawning goroutine is
// kept so a crash reports where the goroutine came from.
func GoroutineWrapperFunc(log *logger.Logger) func(name string, f func()) {
	return func(name string, f func()) {
		spawnStack := debug.Stack()
		go func() {
			defer HandlePanic(log, spawnStack)
			log.Tracef("Started goroutine %s", name)
			f()
		}()
	}
}

func crash(log *logger.Logger, reason string, stack []byte, spawnStack []byte) {
	flushed := make(chan struct{})
	go func() {
		defer close(flushed)
		log.Criticalf("Exiting: %s", reason)
		if spawnStack != nil {
			log.Criticalf("Spawned from: %s", spawnStack)
		}
		log.Criticalf("Stack trace: %s", stack)
		log.Backend().Close()
	}()

	select {
	case <-flushed:
	case <-time.After(flushTimeout):
		fmt.Fprintln(os.Stderr, "Timed out flushing the logs before exiting")
	}
	exitFunc(1)
}
