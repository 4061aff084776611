package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGetOrComputeMemoizes(t *testing.T) {
	c, err := New[string](10)
	if err != nil {
		t.Fatal(err)
	}

	calls := 0
	producer := func() (string, error) {
		calls++
		return "computed", nil
	}

	v1, err := c.GetOrCompute("k", producer)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := c.GetOrCompute("k", producer)
	if err != nil {
		t.Fatal(err)
	}

	if v1 != "computed" || v2 != "computed" {
		t.Errorf("got %q, %q", v1, v2)
	}
	if calls != 1 {
		t.Errorf("producer invoked %d times, want 1", calls)
	}
}

func TestGetOrComputeDistinctKeys(t *testing.T) {
	c, _ := New[int](10)

	a, _ := c.GetOrCompute("a", func() (int, error) { return 1, nil })
	b, _ := c.GetOrCompute("b", func() (int, error) { return 2, nil })
	if a != 1 || b != 2 {
		t.Errorf("keys collided: a=%d b=%d", a, b)
	}
}

func TestFailedComputationNotCached(t *testing.T) {
	c, _ := New[string](10)

	calls := 0
	_, err := c.GetOrCompute("k", func() (string, error) {
		calls++
		return "", errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected error")
	}

	v, err := c.GetOrCompute("k", func() (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if v != "ok" || calls != 2 {
		t.Errorf("failed result was cached: v=%q calls=%d", v, calls)
	}
}

func TestSingleFlight(t *testing.T) {
	c, _ := New[string](10)

	var computations atomic.Int32
	release := make(chan struct{})

	producer := func() (string, error) {
		computations.Add(1)
		<-release
		return "shared", nil
	}

	const goroutines = 8
	var wg sync.WaitGroup
	results := make([]string, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.GetOrCompute("k", producer)
			if err != nil {
				t.Errorf("goroutine %d: %v", i, err)
				return
			}
			results[i] = v
		}(i)
	}

	// Let all goroutines pile up on the in-flight computation.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := computations.Load(); n != 1 {
		t.Errorf("%d concurrent computations ran, want 1", n)
	}
	for i, v := range results {
		if v != "shared" {
			t.Errorf("goroutine %d got %q", i, v)
		}
	}
}

func TestLRUBound(t *testing.T) {
	c, _ := New[int](2)

	c.GetOrCompute("a", func() (int, error) { return 1, nil })
	c.GetOrCompute("b", func() (int, error) { return 2, nil })
	c.GetOrCompute("c", func() (int, error) { return 3, nil })

	if c.Len() != 2 {
		t.Errorf("cache holds %d entries, want 2", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("oldest entry survived past the LRU bound")
	}
}

func TestPurge(t *testing.T) {
	c, _ := New[int](10)
	c.GetOrCompute("a", func() (int, error) { return 1, nil })
	c.Purge()
	if c.Len() != 0 {
		t.Errorf("cache holds %d entries after purge", c.Len())
	}
}
