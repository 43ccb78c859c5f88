package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu        sync.Mutex
	crashFinalizer func()
)

// SetCrashFinalizer registers the terminal restore hook run before a crash report
// Only the latest registration is kept
func SetCrashFinalizer(fn func()) {
	crashMu.Lock()
	crashFinalizer = fn
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints the panic value with stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	fin := crashFinalizer
	crashMu.Unlock()
	if fin != nil {
		fin()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mJEZZBALL CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Recover is deferred at the top of every goroutine that touches the terminal
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer Recover()
		fn()
	}()
}
