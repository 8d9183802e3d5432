package uds

import (
	"io"
	"runtime"
	"testing"
	"time"
)

// A handle whose last reference is an in-flight blocking read must survive
// garbage collection: the finalizer may not close the descriptor out from
// under the syscall. The reading goroutine's reference dies as soon as the
// read call is entered, so only the KeepAlive pins inside the fd methods keep
// the descriptor open here.
func TestBlockingReadSurvivesGC(t *testing.T) {
	a, b, err := Pair()
	if err != nil {
		t.Fatalf("TestBlockingReadSurvivesGC: %s", err)
	}
	defer b.Close()

	type result struct {
		data []byte
		err  error
	}
	resultCh := make(chan result, 1)
	go func(s *Stream) {
		buf := make([]byte, 5)
		_, err := io.ReadFull(s, buf)
		resultCh <- result{data: buf, err: err}
	}(a)
	a = nil

	// Give the reader time to park in the kernel, then churn the collector
	// hard enough that a prematurely-run finalizer would have fired.
	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 10; i++ {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}

	if _, err := b.Write([]byte("hello")); err != nil {
		t.Fatalf("TestBlockingReadSurvivesGC: write to parked reader: %s", err)
	}

	select {
	case r := <-resultCh:
		if r.err != nil {
			t.Fatalf("TestBlockingReadSurvivesGC: read: %s", r.err)
		}
		if string(r.data) != "hello" {
			t.Errorf("TestBlockingReadSurvivesGC: read %q, want %q", r.data, "hello")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("TestBlockingReadSurvivesGC: reader never woke up")
	}
}
