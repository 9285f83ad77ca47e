package prepcache

import (
	"sync"
	"testing"

	"github.com/jonathan/interview-prep-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGetDelete(t *testing.T) {
	s := New()

	_, ok := s.Get(42)
	assert.False(t, ok)

	prep := &types.InterviewPrep{ID: 7, TailoredResumeID: 42}
	s.Put(42, prep)

	got, ok := s.Get(42)
	require.True(t, ok)
	assert.Same(t, prep, got)
	assert.Equal(t, 1, s.Len())

	s.Delete(42)
	_, ok = s.Get(42)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStore_OverwriteWholesale(t *testing.T) {
	s := New()
	s.Put(42, &types.InterviewPrep{ID: 1, CompanyProfile: &types.CompanyProfile{Name: "Old Co"}})
	s.Put(42, &types.InterviewPrep{ID: 2})

	got, ok := s.Get(42)
	require.True(t, ok)
	assert.EqualValues(t, 2, got.ID)
	// No partial merge: the old company profile must not survive.
	assert.Nil(t, got.CompanyProfile)
}

func TestStore_ConcurrentRefreshLastWriteWins(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.Put(42, &types.InterviewPrep{ID: id})
		}(int64(i))
	}
	wg.Wait()

	got, ok := s.Get(42)
	require.True(t, ok)
	// Whichever Put completed last is the value; all that matters is that
	// the entry is one complete aggregate, not a blend.
	assert.GreaterOrEqual(t, got.ID, int64(0))
	assert.Less(t, got.ID, int64(50))
}
