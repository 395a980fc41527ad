package game

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"sync"
)

type memStore struct {
	mu        sync.Mutex
	questions []Question
	calls     int
	ratings   []Rating
	failWith  error
}

func (m *memStore) RandomQuestion(_ context.Context, questionType QuestionType, rating Rating, guildID *int64) (Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.ratings = append(m.ratings, rating)
	if m.failWith != nil {
		return Question{}, m.failWith
	}
	var eligible []Question
	for _, q := range m.questions {
		if q.Type != questionType || q.Rating != rating || !visible(q, guildID) {
			continue
		}
		eligible = append(eligible, q)
	}
	if len(eligible) == 0 {
		return Question{}, ErrQuestionNotFound
	}
	return eligible[rand.Intn(len(eligible))], nil
}

func (m *memStore) ListVisible(_ context.Context, guildID *int64) ([]Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []Question
	for _, q := range m.questions {
		if visible(q, guildID) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memStore) ListCustom(_ context.Context, guildID *int64) ([]Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	if guildID == nil {
		return nil, nil
	}
	var out []Question
	for _, q := range m.questions {
		if q.GuildID != nil && *q.GuildID == *guildID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memStore) Insert(_ context.Context, question Question) (Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if question.UID == "" {
		question.UID = strconv.Itoa(len(m.questions) + 1)
	}
	m.questions = append(m.questions, question)
	return question, nil
}

func (m *memStore) Delete(_ context.Context, guildID int64, uid string) (bool, error) {
	return false, errors.New("not implemented")
}

func (m *memStore) ExistsInGuild(_ context.Context, guildID int64, uid string) (bool, error) {
	return false, errors.New("not implemented")
}

func visible(q Question, guildID *int64) bool {
	if q.GuildID == nil {
		return true
	}
	return guildID != nil && *q.GuildID == *guildID
}

type memSettings struct {
	ratings map[int64]RatingPolicy
	err     error
}

func (m *memSettings) GetRating(_ context.Context, guildID int64) (RatingPolicy, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	policy, ok := m.ratings[guildID]
	return policy, ok, nil
}

func (m *memSettings) UpsertRating(_ context.Context, guildID int64, policy RatingPolicy) error {
	if m.ratings == nil {
		m.ratings = make(map[int64]RatingPolicy)
	}
	m.ratings[guildID] = policy
	return nil
}

func (m *memSettings) GetPermission(context.Context, int64) (bool, error) { return false, nil }

func (m *memSettings) UpsertPermission(context.Context, int64, bool) error { return nil }

func guild(id int64) *int64 { return &id }

func makeCatalog(n int) []Question {
	catalog := make([]Question, 0, n)
	for i := 0; i < n; i++ {
		catalog = append(catalog, Question{
			UID:    "uid-" + strconv.Itoa(i),
			Prompt: "prompt " + strconv.Itoa(i),
			Type:   TypeTruth,
			Rating: RatingPG,
		})
	}
	return catalog
}
