package idgen

import (
	"sync"
	"testing"
)

func TestLocked_ConcurrentUniqueness(t *testing.T) {
	gen, err := NewLocked(&Config{MachineID: 1, ServerID: 2})
	if err != nil {
		t.Fatalf("Failed to create locked generator: %v", err)
	}

	const (
		goroutines = 8
		perG       = 2000
	)

	var wg sync.WaitGroup
	results := make([][]int64, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			ids := make([]int64, 0, perG)
			for i := 0; i < perG; i++ {
				ids = append(ids, gen.Next())
			}
			results[g] = ids
		}(g)
	}
	wg.Wait()

	seen := make(map[int64]bool, goroutines*perG)
	for _, ids := range results {
		for _, id := range ids {
			if seen[id] {
				t.Fatalf("duplicate id across goroutines: %d", id)
			}
			seen[id] = true
		}
	}
	if len(seen) != goroutines*perG {
		t.Errorf("unique count = %d，期望 %d", len(seen), goroutines*perG)
	}
}

func TestLocked_AllStrategies(t *testing.T) {
	gen, err := NewLocked(&Config{MachineID: 1, ServerID: 2})
	if err != nil {
		t.Fatalf("Failed to create locked generator: %v", err)
	}

	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		for _, id := range []int64{gen.Next(), gen.NextByTime(), gen.NextLazy()} {
			if seen[id] {
				t.Fatalf("duplicate id: %d", id)
			}
			seen[id] = true
		}
	}
}

func TestLocked_InvalidConfig(t *testing.T) {
	if _, err := NewLocked(&Config{ServerID: 32}); err == nil {
		t.Error("Expected error for out-of-range server id")
	}
}
