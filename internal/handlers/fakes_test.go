package handlers

import (
	"context"
	"sync"

	"survey-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// memStore keeps all three collections in memory.
type memStore struct {
	mu          sync.Mutex
	preSurveys  []models.PreSurveyResponse
	responses   []models.TrialResponse
	postSurveys []models.PostSurveyResponse

	insertCalls int
	err         error
}

type preSurveyMem struct{ *memStore }
type responseMem struct{ *memStore }
type postSurveyMem struct{ *memStore }

func (m preSurveyMem) Create(ctx context.Context, resp *models.PreSurveyResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	resp.ID = bson.NewObjectID()
	m.preSurveys = append(m.preSurveys, *resp)
	return nil
}

func (m postSurveyMem) Create(ctx context.Context, resp *models.PostSurveyResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	resp.ID = bson.NewObjectID()
	m.postSurveys = append(m.postSurveys, *resp)
	return nil
}

func (m responseMem) InsertMany(ctx context.Context, responses []models.TrialResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls++
	if m.err != nil {
		return m.err
	}
	for _, r := range responses {
		r.ID = bson.NewObjectID()
		m.responses = append(m.responses, r)
	}
	return nil
}

func (m responseMem) FindAll(ctx context.Context) ([]models.TrialResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.TrialResponse, len(m.responses))
	copy(out, m.responses)
	return out, nil
}

func newTestHandler() (*SurveyHandler, *memStore) {
	store := &memStore{}
	return NewSurveyHandler(preSurveyMem{store}, responseMem{store}, postSurveyMem{store}), store
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }
