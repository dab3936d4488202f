package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

type memoryStore struct {
	mu           sync.Mutex
	applications map[int]*Application
	records      map[int]map[int]*ReviewRecord
	saveErr      error
	statusErr    error
	statusWrites int
}

func newMemoryStore(apps ...*Application) *memoryStore {
	s := &memoryStore{
		applications: make(map[int]*Application),
		records:      make(map[int]map[int]*ReviewRecord),
	}
	for _, app := range apps {
		s.applications[app.ID] = app
	}
	return s
}

func (s *memoryStore) LoadApplication(_ context.Context, id int) (*Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[id]
	if !ok {
		return nil, fmt.Errorf("application %d: %w", id, ErrNotFound)
	}
	copied := *app
	return &copied, nil
}

func (s *memoryStore) LoadReviewRecords(_ context.Context, applicationID int) ([]*ReviewRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]*ReviewRecord, 0)
	for _, record := range s.records[applicationID] {
		copied := *record
		records = append(records, &copied)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ReviewerID < records[j].ReviewerID })
	return records, nil
}

func (s *memoryStore) SaveReviewRecord(_ context.Context, record *ReviewRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	if s.records[record.ApplicationID] == nil {
		s.records[record.ApplicationID] = make(map[int]*ReviewRecord)
	}
	copied := *record
	s.records[record.ApplicationID][record.ReviewerID] = &copied
	return nil
}

func (s *memoryStore) SaveApplicationStatus(_ context.Context, id int, status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	if s.statusErr != nil {
		err := s.statusErr
		s.statusErr = nil
		return err
	}
	app, ok := s.applications[id]
	if !ok {
		return fmt.Errorf("application %d: %w", id, ErrNotFound)
	}
	app.Status = status
	s.statusWrites++
	return nil
}

func (s *memoryStore) status(id int) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applications[id].Status
}

func (s *memoryStore) record(applicationID, reviewerID int) *ReviewRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[applicationID][reviewerID]
	if !ok {
		return nil
	}
	copied := *record
	return &copied
}

func (s *memoryStore) recordCount(applicationID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records[applicationID])
}

type reviewerSet map[int]bool

func (r reviewerSet) IsReviewer(_ context.Context, userID int) (bool, error) {
	return r[userID], nil
}

type recordingAuditor struct {
	mu      sync.Mutex
	entries []AuditEntry
	err     error
}

func (a *recordingAuditor) Record(_ context.Context, entry AuditEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	return a.err
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []LifecycleEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event LifecycleEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

var errStorage = errors.New("storage unavailable")
