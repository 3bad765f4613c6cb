package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ============================================
// In-memory fakes for the repository interfaces
// ============================================

type memStore struct {
	mu           sync.Mutex
	hotels       map[uuid.UUID]*entity.Hotel
	plans        map[uuid.UUID]*entity.Plan
	availability map[string]*entity.Availability // planID + "/" + dateKey
	reservations map[uuid.UUID]*entity.Reservation
	users        map[uuid.UUID]*entity.User
	sessions     map[string]*entity.Session
	tweets       []*entity.Tweet

	failReservationWrite bool
}

func newMemStore() *memStore {
	return &memStore{
		hotels:       make(map[uuid.UUID]*entity.Hotel),
		plans:        make(map[uuid.UUID]*entity.Plan),
		availability: make(map[string]*entity.Availability),
		reservations: make(map[uuid.UUID]*entity.Reservation),
		users:        make(map[uuid.UUID]*entity.User),
		sessions:     make(map[string]*entity.Session),
	}
}

func (m *memStore) availKey(planID uuid.UUID, dateKey string) string {
	return planID.String() + "/" + dateKey
}

func (m *memStore) setAvailability(planID uuid.UUID, dateKey string, rooms, booked int) {
	m.availability[m.availKey(planID, dateKey)] = &entity.Availability{
		PlanID:  planID,
		DateKey: dateKey,
		Rooms:   rooms,
		Booked:  booked,
	}
}

func (m *memStore) bookedCount(planID uuid.UUID, dateKey string) int {
	entry, ok := m.availability[m.availKey(planID, dateKey)]
	if !ok {
		return -1
	}
	return entry.Booked
}

// --- HotelRepository ---

type mockHotelRepo struct{ store *memStore }

func (r *mockHotelRepo) FindAll(ctx context.Context) ([]*entity.Hotel, error) {
	var hotels []*entity.Hotel
	for _, h := range r.store.hotels {
		hotels = append(hotels, h)
	}
	return hotels, nil
}

func (r *mockHotelRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	return r.store.hotels[id], nil
}

// --- PlanRepository ---

type mockPlanRepo struct{ store *memStore }

func (r *mockPlanRepo) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Plan, error) {
	var plans []*entity.Plan
	for _, p := range r.store.plans {
		if p.HotelID == hotelID {
			plans = append(plans, p)
		}
	}
	return plans, nil
}

func (r *mockPlanRepo) FindByID(ctx context.Context, hotelID, planID uuid.UUID) (*entity.Plan, error) {
	plan, ok := r.store.plans[planID]
	if !ok || plan.HotelID != hotelID {
		return nil, nil
	}
	return plan, nil
}

// --- AvailabilityRepository ---

type mockAvailabilityRepo struct{ store *memStore }

func (r *mockAvailabilityRepo) LoadForPlan(ctx context.Context, planID uuid.UUID) (map[string]entity.Availability, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snapshot := make(map[string]entity.Availability)
	for _, entry := range r.store.availability {
		if entry.PlanID == planID {
			snapshot[entry.DateKey] = *entry
		}
	}
	return snapshot, nil
}

func (r *mockAvailabilityRepo) FindByDate(ctx context.Context, planID uuid.UUID, dateKey string) (*entity.Availability, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entry, ok := r.store.availability[r.store.availKey(planID, dateKey)]
	if !ok {
		return nil, nil
	}
	copied := *entry
	return &copied, nil
}

// --- ReservationRepository ---

// mockReservationRepo mirrors the transactional semantics of the real
// repository: the insert and both conditional increments apply together
// or not at all.
type mockReservationRepo struct{ store *memStore }

func (r *mockReservationRepo) CreateWithBookedIncrements(ctx context.Context, reservation *entity.Reservation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.failReservationWrite {
		return fmt.Errorf("insert reservation: connection reset")
	}

	keys := []string{
		entity.DateKey(reservation.CheckInDate),
		entity.DateKey(reservation.CheckOutDate),
	}

	// Validate both increments before applying either, same as a
	// rolled-back transaction.
	staged := make(map[string]int)
	for _, dateKey := range keys {
		entry, ok := r.store.availability[r.store.availKey(reservation.PlanID, dateKey)]
		if !ok {
			return fmt.Errorf("increment booked for %s: %w", dateKey, repository.ErrNoCapacity)
		}
		if entry.Booked+staged[dateKey] >= entry.Rooms {
			return fmt.Errorf("increment booked for %s: %w", dateKey, repository.ErrNoCapacity)
		}
		staged[dateKey]++
	}

	for dateKey, n := range staged {
		r.store.availability[r.store.availKey(reservation.PlanID, dateKey)].Booked += n
	}

	r.store.reservations[reservation.ID] = reservation
	return nil
}

func (r *mockReservationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.reservations[id], nil
}

func (r *mockReservationRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var reservations []*entity.Reservation
	for _, reservation := range r.store.reservations {
		if reservation.UserID == userID {
			reservations = append(reservations, reservation)
		}
	}
	return reservations, nil
}

func (r *mockReservationRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	reservations, _ := r.FindByUserID(ctx, userID, 0, 0)
	return int64(len(reservations)), nil
}

// --- UserRepository ---

type mockUserRepo struct{ store *memStore }

func (r *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.users[user.ID] = user
	return nil
}

func (r *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.store.users[id], nil
}

func (r *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.store.users[user.ID]; !ok {
		return errors.New("user not found")
	}
	r.store.users[user.ID] = user
	return nil
}

// --- SessionRepository ---

type mockSessionRepo struct{ store *memStore }

func (r *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	r.store.sessions[session.Token.String()] = session
	return nil
}

func (r *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return r.store.sessions[token], nil
}

func (r *mockSessionRepo) Delete(ctx context.Context, token string) error {
	delete(r.store.sessions, token)
	return nil
}

// --- TweetRepository ---

type mockTweetRepo struct{ store *memStore }

func (r *mockTweetRepo) Create(ctx context.Context, tweet *entity.Tweet) error {
	r.store.tweets = append(r.store.tweets, tweet)
	return nil
}

func (r *mockTweetRepo) FindRecent(ctx context.Context, limit, offset int) ([]*entity.Tweet, error) {
	tweets := make([]*entity.Tweet, len(r.store.tweets))
	copy(tweets, r.store.tweets)
	// newest first
	for i, j := 0, len(tweets)-1; i < j; i, j = i+1, j-1 {
		tweets[i], tweets[j] = tweets[j], tweets[i]
	}
	if len(tweets) > limit && limit > 0 {
		tweets = tweets[:limit]
	}
	return tweets, nil
}

func (r *mockTweetRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.store.tweets)), nil
}

// --- wiring helper ---

func newMockRepository(store *memStore) *repository.Repository {
	return &repository.Repository{
		User:         &mockUserRepo{store: store},
		Session:      &mockSessionRepo{store: store},
		Hotel:        &mockHotelRepo{store: store},
		Plan:         &mockPlanRepo{store: store},
		Availability: &mockAvailabilityRepo{store: store},
		Reservation:  &mockReservationRepo{store: store},
		Tweet:        &mockTweetRepo{store: store},
	}
}

// ============================================
// Mailer fake
// ============================================

type mockMailer struct {
	mu     sync.Mutex
	sent   []*mailer.ReservationDetails
	sentTo []string
	fail   bool
}

func (m *mockMailer) SendReservationConfirmation(to string, details *mailer.ReservationDetails) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail {
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, details)
	m.sentTo = append(m.sentTo, to)
	return nil
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func mustParseUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("parse uuid %q: %v", s, err)
	}
	return id
}
