package gate

import (
	"sync"
	"testing"
	"time"
)

func TestReentrantLock_MutualExclusion(t *testing.T) {
	var l reentrantLock
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				l.Lock()
				counter++
				l.Unlock()
			}
		}()
	}
	wg.Wait()

	if counter != 16000 {
		t.Fatalf("counter = %d, want 16000 (lost updates under lock)", counter)
	}
}

func TestReentrantLock_NestedSameGoroutine(t *testing.T) {
	var l reentrantLock

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Lock()
		l.Lock() // must not self-deadlock
		l.Lock()
		l.Unlock()
		l.Unlock()
		l.Unlock()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("nested acquisition deadlocked")
	}
}

func TestReentrantLock_OtherGoroutineWaitsForFullRelease(t *testing.T) {
	var l reentrantLock

	acquired := make(chan struct{})
	releaseOnce := make(chan struct{})
	releaseAll := make(chan struct{})
	go func() {
		l.Lock()
		l.Lock()
		close(acquired)
		<-releaseOnce
		l.Unlock() // depth 2 -> 1, still held
		<-releaseAll
		l.Unlock()
	}()

	<-acquired

	got := make(chan struct{})
	go func() {
		l.Lock()
		l.Unlock()
		close(got)
	}()

	close(releaseOnce)
	select {
	case <-got:
		t.Fatal("second goroutine acquired while first still held one level")
	case <-time.After(100 * time.Millisecond):
	}

	close(releaseAll)
	select {
	case <-got:
	case <-time.After(5 * time.Second):
		t.Fatal("second goroutine never acquired after full release")
	}
}

func TestReentrantLock_UnlockUnlocked(t *testing.T) {
	var l reentrantLock
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unlock of unlocked lock")
		}
	}()
	l.Unlock()
}

func TestGoroutineID_StablePerGoroutine(t *testing.T) {
	a := goroutineID()
	b := goroutineID()
	if a != b {
		t.Fatalf("same goroutine reported two IDs: %d, %d", a, b)
	}

	other := make(chan uint64, 1)
	go func() { other <- goroutineID() }()
	if o := <-other; o == a {
		t.Fatalf("distinct goroutines reported the same ID %d", o)
	}
}
