// Package signal provides signal handling utilities for the CLI application.
package signal

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Exit statuses for a run stopped by a signal.
const (
	// ExitInterrupted is used when the operator stops a run with Ctrl+C.
	ExitInterrupted = 130
	// ExitTerminated is used when the run receives SIGTERM.
	ExitTerminated = 143
)

// interruptNotice is printed on the first Ctrl+C.
const interruptNotice = "\nPress Ctrl+C again to stop the manual test run\n"

// InterruptHandler manages Ctrl+C (SIGINT) signals with a double-press exit pattern.
// A manual run spends nearly all its time blocked on an operator answer that
// cannot be cancelled, so the second press exits the process directly.
// On first press, it prints a notice and starts the timeout.
// If the timeout expires without a second press, the counter resets.
type InterruptHandler struct {
	timeout       time.Duration
	out           io.Writer
	exitFunc      func(int)
	lastPressTime time.Time
	pressCount    int
	running       bool
	mu            sync.Mutex
	resetTimer    *time.Timer
	sigCh         chan os.Signal
	stopCh        chan struct{}
}

// NewInterruptHandler creates a new InterruptHandler with the specified timeout.
// The notice for the first press is written to out.
func NewInterruptHandler(timeout time.Duration, out io.Writer) *InterruptHandler {
	if out == nil {
		out = os.Stderr
	}
	return &InterruptHandler{
		timeout:  timeout,
		out:      out,
		exitFunc: os.Exit,
	}
}

// Start begins listening for SIGINT and SIGTERM. SIGTERM exits at once;
// SIGINT follows the double-press pattern.
// This method should be called once after creating the handler.
func (h *InterruptHandler) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		return
	}

	h.running = true
	h.sigCh = make(chan os.Signal, 1)
	h.stopCh = make(chan struct{})

	signal.Notify(h.sigCh, os.Interrupt, syscall.SIGTERM)

	go func(sigCh <-chan os.Signal, stopCh <-chan struct{}) {
		for {
			select {
			case <-stopCh:
				return
			case sig := <-sigCh:
				h.handleSignal(sig)
			}
		}
	}(h.sigCh, h.stopCh)
}

// handleSignal dispatches a received signal.
func (h *InterruptHandler) handleSignal(sig os.Signal) {
	if sig == syscall.SIGTERM {
		h.terminate()
		return
	}
	h.handleInterrupt()
}

// terminate exits without waiting for a second signal.
func (h *InterruptHandler) terminate() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.running {
		return
	}
	h.stopResetTimer()
	h.exitFunc(ExitTerminated)
}

// handleInterrupt processes a received interrupt signal.
// It implements the double-press detection logic with timeout-based reset.
func (h *InterruptHandler) handleInterrupt() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.running {
		return
	}

	now := time.Now()
	if h.pressCount > 0 && now.Sub(h.lastPressTime) < h.timeout {
		h.pressCount = 0
		h.stopResetTimer()
		h.exitFunc(ExitInterrupted)
		return
	}

	h.pressCount = 1
	h.lastPressTime = now
	fmt.Fprint(h.out, interruptNotice)

	h.stopResetTimer()
	h.resetTimer = time.AfterFunc(h.timeout, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.pressCount = 0
	})
}

// stopResetTimer stops and clears the reset timer if it exists.
// Caller must hold h.mu.
func (h *InterruptHandler) stopResetTimer() {
	if h.resetTimer != nil {
		h.resetTimer.Stop()
		h.resetTimer = nil
	}
}

// Stop stops listening for signals and cleans up resources.
// It is safe to call Stop multiple times.
func (h *InterruptHandler) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.running {
		return
	}

	h.running = false
	signal.Stop(h.sigCh)
	close(h.stopCh)
	h.sigCh = nil
	h.stopCh = nil
	h.stopResetTimer()
}

// SimulateInterrupt simulates receiving a SIGINT signal.
// This method is intended for testing purposes only.
func (h *InterruptHandler) SimulateInterrupt() {
	h.handleSignal(os.Interrupt)
}

// SimulateTerminate simulates receiving a SIGTERM signal.
// This method is intended for testing purposes only.
func (h *InterruptHandler) SimulateTerminate() {
	h.handleSignal(syscall.SIGTERM)
}
