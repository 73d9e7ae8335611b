//go:build unix

package output

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestFileSinkLockExcludesAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	first, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	// A second run that opened the lock file while the first held it.
	waiter, err := os.OpenFile(path+".lock", os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("open lock file: %v", err)
	}
	defer waiter.Close()

	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := syscall.Flock(int(waiter.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		t.Fatalf("waiter flock after Close: %v", err)
	}

	if _, err := Open(path, nil); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked while the waiter holds the lock, got %v", err)
	}

	if err := syscall.Flock(int(waiter.Fd()), syscall.LOCK_UN); err != nil {
		t.Fatalf("waiter unlock: %v", err)
	}
	again, err := Open(path, nil)
	if err != nil {
		t.Fatalf("reopen after release: %v", err)
	}
	if err := again.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
