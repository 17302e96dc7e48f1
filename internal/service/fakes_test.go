package service

import (
	"context"
	"encoding/json"
	"sync"

	"remedyai/internal/model"
)

// memSessionCache is an in-memory stand-in for the Redis session cache.
// It round-trips sessions through JSON so mutations that skip Set are not
// silently visible, matching the real cache's behavior.
type memSessionCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemSessionCache() *memSessionCache {
	return &memSessionCache{data: make(map[string][]byte)}
}

func (c *memSessionCache) Set(_ context.Context, session *model.SurveySession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[session.ID] = data
	return nil
}

func (c *memSessionCache) Get(_ context.Context, id string) (*model.SurveySession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.data[id]
	if !ok {
		return nil, nil
	}
	var session model.SurveySession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *memSessionCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, id)
	return nil
}

// memRecordRepo captures inserted records; Inserted signals each write so
// tests can wait for the fire-and-forget persistence goroutine.
type memRecordRepo struct {
	Inserted chan *model.SurveyRecord
}

func newMemRecordRepo() *memRecordRepo {
	return &memRecordRepo{Inserted: make(chan *model.SurveyRecord, 8)}
}

func (r *memRecordRepo) Insert(_ context.Context, record *model.SurveyRecord) error {
	r.Inserted <- record
	return nil
}

func (r *memRecordRepo) ListRecent(_ context.Context, _ int64) ([]*model.SurveyRecord, error) {
	return nil, nil
}

// stubAdvisor returns whatever its function says and counts calls
type stubAdvisor struct {
	mu    sync.Mutex
	calls int
	fn    func(symptom, duration, severity string) (*model.AdvisoryResult, error)
}

func (a *stubAdvisor) RequestAdvisory(_ context.Context, symptom, duration, severity string) (*model.AdvisoryResult, error) {
	a.mu.Lock()
	a.calls++
	a.mu.Unlock()
	return a.fn(symptom, duration, severity)
}

func (a *stubAdvisor) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

// stubNotifier records result-ready events
type stubNotifier struct {
	mu      sync.Mutex
	reports []*model.TriageReport
}

func (n *stubNotifier) ResultReady(_ string, report *model.TriageReport) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reports = append(n.reports, report)
}

func (n *stubNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.reports)
}
