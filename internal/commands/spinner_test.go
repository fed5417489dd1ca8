package commands

import (
	"testing"
	"time"
)

func TestSpinnerStopOnce(t *testing.T) {
	s := newSpinner("testing")
	s.start()

	// Stopping twice must not panic on a double-close
	s.stopOnce()
	s.stopOnce()

	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("spinner goroutine did not exit")
	}
}

func TestSpinnerStopWithError(t *testing.T) {
	s := newSpinner("testing")
	s.start()
	s.stopWithError()

	select {
	case <-s.done:
	default:
		t.Fatal("stopWithError should wait for the goroutine")
	}
}
