package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/aroundtheus/around-api/internal/domain"
	"github.com/aroundtheus/around-api/internal/store"
)

// MockCardStore implements store.CardStore backed by an in-memory map.
// Per-method function fields let individual tests override behavior.
type MockCardStore struct {
	mu    sync.RWMutex
	cards map[uuid.UUID]*domain.Card

	CreateFn     func(ctx context.Context, card *domain.Card) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	ListFn       func(ctx context.Context) ([]*domain.Card, error)
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
	AddLikeFn    func(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)
	RemoveLikeFn func(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)
}

var _ store.CardStore = (*MockCardStore)(nil)

// NewMockCardStore creates an empty in-memory card store.
func NewMockCardStore() *MockCardStore {
	return &MockCardStore{cards: make(map[uuid.UUID]*domain.Card)}
}

// Seed inserts cards directly, bypassing validation. For test setup only.
func (m *MockCardStore) Seed(cards ...*domain.Card) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range cards {
		m.cards[c.ID] = c
	}
}

func (m *MockCardStore) Create(ctx context.Context, card *domain.Card) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, card)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards[card.ID] = card
	return nil
}

func (m *MockCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	card, ok := m.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	return copyCard(card), nil
}

func (m *MockCardStore) List(ctx context.Context) ([]*domain.Card, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	cards := make([]*domain.Card, 0, len(m.cards))
	for _, card := range m.cards {
		cards = append(cards, copyCard(card))
	}
	return cards, nil
}

func (m *MockCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cards[id]; !ok {
		return store.ErrCardNotFound
	}
	delete(m.cards, id)
	return nil
}

func (m *MockCardStore) AddLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	if m.AddLikeFn != nil {
		return m.AddLikeFn(ctx, cardID, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	card, ok := m.cards[cardID]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	if !card.IsLikedBy(userID) {
		card.Likes = append(card.Likes, userID)
	}
	return copyCard(card), nil
}

func (m *MockCardStore) RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	if m.RemoveLikeFn != nil {
		return m.RemoveLikeFn(ctx, cardID, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	card, ok := m.cards[cardID]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	likes := card.Likes[:0]
	for _, id := range card.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	card.Likes = likes
	return copyCard(card), nil
}

func copyCard(card *domain.Card) *domain.Card {
	copied := *card
	copied.Likes = append([]uuid.UUID{}, card.Likes...)
	return &copied
}
