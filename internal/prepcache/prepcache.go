// Package prepcache holds generated interview-prep aggregates in memory,
// keyed by tailored-resume id. Entries are overwritten wholesale on refresh;
// when two refreshes race, the one that completes last wins.
package prepcache

import (
	"sync"

	"github.com/jonathan/interview-prep-agent/internal/types"
)

// Store is a process-wide cache of interview-prep aggregates.
type Store struct {
	mu       sync.RWMutex
	byParent map[int64]*types.InterviewPrep
}

// New creates an empty Store.
func New() *Store {
	return &Store{byParent: make(map[int64]*types.InterviewPrep)}
}

// Get returns the cached aggregate for a tailored resume, if any.
func (s *Store) Get(tailoredResumeID int64) (*types.InterviewPrep, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prep, ok := s.byParent[tailoredResumeID]
	return prep, ok
}

// Put stores the aggregate, replacing any previous entry for the key.
func (s *Store) Put(tailoredResumeID int64, prep *types.InterviewPrep) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byParent[tailoredResumeID] = prep
}

// Delete evicts the aggregate for a tailored resume. Used by the refresh
// flow before re-fetching.
func (s *Store) Delete(tailoredResumeID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byParent, tailoredResumeID)
}

// Len reports how many aggregates are cached.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byParent)
}
