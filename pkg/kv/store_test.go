package kv

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetSet(t *testing.T) {
	s := New[int, string]()

	s.Set(1, "projects")
	val, ok := s.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "projects", val)

	_, ok = s.Get(2)
	assert.False(t, ok)
	assert.False(t, s.Has(2))
}

func TestStore_SetIfAbsent(t *testing.T) {
	s := New[int, bool]()

	assert.True(t, s.SetIfAbsent(3, true))
	assert.False(t, s.SetIfAbsent(3, false), "second write must be rejected")

	val, _ := s.Get(3)
	assert.True(t, val, "original value is kept")
}

func TestStore_Len(t *testing.T) {
	s := New[int, bool]()
	s.Set(4, true)
	s.Set(0, true)
	s.Set(4, false)

	assert.Equal(t, 2, s.Len())
}

func TestStore_SetIfAbsentConcurrent(t *testing.T) {
	s := New[int, bool]()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.SetIfAbsent(7, true) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}
