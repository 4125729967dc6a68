package main

import (
	"sync"
	"testing"
)

func TestSizeTracker(t *testing.T) {
	st := newSizeTracker(80, 24)
	if w, h, err := st.getSize(); w != 80 || h != 24 || err != nil {
		t.Fatalf("getSize = %d, %d, %v", w, h, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.update(120, 40)
			_, _, _ = st.getSize()
		}()
	}
	wg.Wait()

	if w, h, _ := st.getSize(); w != 120 || h != 40 {
		t.Fatalf("after update getSize = %d, %d", w, h)
	}
}
