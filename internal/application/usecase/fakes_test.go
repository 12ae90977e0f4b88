package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/kubelo1705/booking-system/internal/domain/rating"
	"github.com/kubelo1705/booking-system/internal/domain/review"
	"github.com/kubelo1705/booking-system/internal/domain/room"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// --- In-memory cache fake ---

type memoryCache struct {
	mu             sync.Mutex
	entries        map[string][]byte
	sets           map[string]map[string]struct{}
	patternDeletes []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		entries: make(map[string][]byte),
		sets:    make(map[string]map[string]struct{}),
	}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = raw
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func (c *memoryCache) AddMember(_ context.Context, setKey string, members ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	set, ok := c.sets[setKey]
	if !ok {
		set = make(map[string]struct{})
		c.sets[setKey] = set
	}
	for _, member := range members {
		set[member] = struct{}{}
	}
	return nil
}

func (c *memoryCache) Members(_ context.Context, setKey string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	members := make([]string, 0, len(c.sets[setKey]))
	for member := range c.sets[setKey] {
		members = append(members, member)
	}
	sort.Strings(members)
	return members, nil
}

func (c *memoryCache) RemoveMember(_ context.Context, setKey string, members ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, member := range members {
		delete(c.sets[setKey], member)
	}
	return nil
}

func (c *memoryCache) DeletePattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patternDeletes = append(c.patternDeletes, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

func (c *memoryCache) Ping(_ context.Context) error { return nil }
func (c *memoryCache) Close() error                 { return nil }

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

func (c *memoryCache) dirtyRooms() []string {
	members, _ := c.Members(context.Background(), dirtyRoomsKey)
	return members
}

// --- In-memory lock fake ---

type memoryLock struct {
	mu   sync.Mutex
	held map[string]bool
}

func newMemoryLock() *memoryLock {
	return &memoryLock{held: make(map[string]bool)}
}

func (l *memoryLock) Acquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] {
		return false, nil
	}
	l.held[key] = true
	return true, nil
}

func (l *memoryLock) Release(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
	return nil
}

func (l *memoryLock) Close() error { return nil }

// --- Mock rating repository ---

type mockRatingRepository struct {
	mock.Mock
}

func (m *mockRatingRepository) FindByRoomID(ctx context.Context, roomID int64) (*rating.Aggregate, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.Aggregate), args.Error(1)
}

func (m *mockRatingRepository) Save(ctx context.Context, aggregate *rating.Aggregate) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

// --- In-memory review repository ---

type memoryReviewRepository struct {
	mu      sync.Mutex
	reviews map[string]review.Review
}

func newMemoryReviewRepository() *memoryReviewRepository {
	return &memoryReviewRepository{reviews: make(map[string]review.Review)}
}

func (r *memoryReviewRepository) FindByID(_ context.Context, id string) (*review.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.reviews[id]
	if !ok {
		return nil, review.ErrNotFound
	}
	return &e, nil
}

func (r *memoryReviewRepository) FindByRoomID(_ context.Context, roomID int64) ([]review.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []review.Review
	for _, e := range r.reviews {
		if e.RoomID == roomID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ReviewOrder < result[j].ReviewOrder })
	return result, nil
}

func (r *memoryReviewRepository) FindByUserID(_ context.Context, userID string) ([]review.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []review.Review
	for _, e := range r.reviews {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *memoryReviewRepository) Create(_ context.Context, e *review.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = review.StatusActive
	}
	r.reviews[e.ID] = *e
	return nil
}

func (r *memoryReviewRepository) Save(_ context.Context, e *review.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews[e.ID] = *e
	return nil
}

func (r *memoryReviewRepository) MaxReviewOrder(_ context.Context, roomID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	maxOrder := 0
	for _, e := range r.reviews {
		if e.RoomID == roomID && e.ReviewOrder > maxOrder {
			maxOrder = e.ReviewOrder
		}
	}
	return maxOrder, nil
}

func (r *memoryReviewRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reviews)
}

// --- Mock room repository ---

type mockRoomRepository struct {
	mock.Mock
}

func (m *mockRoomRepository) FindByID(ctx context.Context, id int64) (*room.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Room), args.Error(1)
}

func (m *mockRoomRepository) FindByHotelID(ctx context.Context, hotelID int64) ([]room.Room, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]room.Room), args.Error(1)
}

func (m *mockRoomRepository) Create(ctx context.Context, e *room.Room) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockRoomRepository) Save(ctx context.Context, e *room.Room) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockRoomRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRoomRepository) FindAvailable(ctx context.Context, criteria room.SearchCriteria) (*room.Page, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Page), args.Error(1)
}

func (m *mockRoomRepository) FindByMinRating(ctx context.Context, criteria room.SuggestCriteria) (*room.Page, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Page), args.Error(1)
}
