package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"orgassess/internal/model"
)

type fakeRepo struct {
	mu      sync.Mutex
	byID    map[string]*model.Assessment
	failAll bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[string]*model.Assessment)}
}

func (r *fakeRepo) Create(_ context.Context, a *model.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return errors.New("mongo down")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id], nil
}

func (r *fakeRepo) ListByOrganization(_ context.Context, orgID string, limit int64) ([]model.AssessmentSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.AssessmentSummary{}
	for _, a := range r.byID {
		if a.OrganizationID == orgID {
			out = append(out, a.Summary())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) CountByOrganization(_ context.Context, orgID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.byID {
		if a.OrganizationID == orgID {
			n++
		}
	}
	return n, nil
}

type fakeResults struct {
	mu   sync.Mutex
	byID map[string]*model.Assessment
	gets int
}

func newFakeResults() *fakeResults {
	return &fakeResults{byID: make(map[string]*model.Assessment)}
}

func (c *fakeResults) Get(_ context.Context, id string) (*model.Assessment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	return c.byID[id], nil
}

func (c *fakeResults) Set(_ context.Context, a *model.Assessment) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byID[a.ID] = a
	return nil
}

type fakeBenchmarks struct {
	mu     sync.Mutex
	scores map[string]map[string]int
}

func newFakeBenchmarks() *fakeBenchmarks {
	return &fakeBenchmarks{scores: make(map[string]map[string]int)}
}

func (b *fakeBenchmarks) Record(_ context.Context, orgType, id string, score int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.scores[orgType] == nil {
		b.scores[orgType] = make(map[string]int)
	}
	b.scores[orgType][id] = score
	return nil
}

func (b *fakeBenchmarks) Rank(_ context.Context, orgType string, score int) (int64, int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var below int64
	for _, s := range b.scores[orgType] {
		if s < score {
			below++
		}
	}
	return below, int64(len(b.scores[orgType])), nil
}

type broadcast struct {
	org     string
	msgType string
	payload interface{}
}

type fakeBroadcaster struct {
	mu   sync.Mutex
	sent []broadcast
}

func (f *fakeBroadcaster) BroadcastToOrganization(org, msgType string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, broadcast{org, msgType, payload})
}
