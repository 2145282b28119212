package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/starevents/starevents-api/internal/domain"
)

// store is an in-memory stand-in for postgres. Every mutation runs under one
// mutex, which plays the part of the database transaction.
type store struct {
	mu         sync.Mutex
	nextID     uint
	users      map[uint]domain.User
	venues     map[uint]domain.Venue
	categories map[uint]domain.EventCategory
	events     map[uint]domain.Event
	bookings   map[string]domain.Booking
	promotions map[string]domain.Promotion

	// failInsert makes the next booking insert fail after the reserve.
	failInsert bool
}

func newStore() *store {
	return &store{
		users:      map[uint]domain.User{},
		venues:     map[uint]domain.Venue{},
		categories: map[uint]domain.EventCategory{},
		events:     map[uint]domain.Event{},
		bookings:   map[string]domain.Booking{},
		promotions: map[string]domain.Promotion{},
	}
}

func (s *store) id() uint {
	s.nextID++
	return s.nextID
}

func (s *store) addUser(role domain.Role) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	u := domain.User{
		ID:        id,
		Email:     fmt.Sprintf("user%d@example.com", id),
		FirstName: "User",
		LastName:  fmt.Sprint(id),
		Role:      role,
		IsActive:  true,
	}
	s.users[id] = u
	return u
}

func (s *store) addVenue(capacity int, active bool) domain.Venue {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := domain.Venue{ID: s.id(), Name: "Hall", Address: "1 Main St", City: "Lyon", Capacity: capacity, IsActive: active}
	s.venues[v.ID] = v
	return v
}

func (s *store) addCategory(active bool) domain.EventCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := domain.EventCategory{ID: s.id(), Name: "Concert", IsActive: active}
	s.categories[c.ID] = c
	return c
}

func (s *store) addEvent(e domain.Event) domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.id()
	if e.Version == 0 {
		e.Version = 1
	}
	s.events[e.ID] = e
	return e
}

func (s *store) addPromotion(p domain.Promotion) domain.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	s.promotions[p.Code] = p
	return p
}

func (s *store) event(id uint) domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[id]
}

func (s *store) booking(ref string) domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings[ref]
}

func (s *store) promotion(code string) domain.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.promotions[code]
}

func (s *store) bookingWithEvent(b domain.Booking) domain.Booking {
	e := s.events[b.EventID]
	b.Event = &e
	return b
}

func (s *store) cancelBooking(b domain.Booking, at time.Time) (domain.Booking, error) {
	if b.Status != domain.BookingConfirmed {
		return b, fmt.Errorf("booking %s: %w", b.Reference, domain.ErrInvalidTransition)
	}
	e := s.events[b.EventID]
	domain.Release(&e, b.Quantity)
	s.events[e.ID] = e

	b.Status = domain.BookingCancelled
	b.CancelledAt = &at
	for i := range b.Tickets {
		if b.Tickets[i].Status == domain.TicketValid {
			b.Tickets[i].Status = domain.TicketCancelled
		}
	}
	if b.Payment != nil {
		p := *b.Payment
		refund := p.Amount
		p.Status = domain.PaymentRefunded
		p.RefundAmount = &refund
		b.Payment = &p
	}
	s.bookings[b.Reference] = b
	return b, nil
}

type fakeEvents struct{ *store }

func (f fakeEvents) Create(_ context.Context, e domain.Event) (domain.Event, error) {
	return f.addEvent(e), nil
}

func (f fakeEvents) FindByID(_ context.Context, id uint) (domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[id]
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return e, nil
}

func (f fakeEvents) FindByIDs(_ context.Context, ids []uint) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var events []domain.Event
	for _, id := range ids {
		if e, ok := f.events[id]; ok {
			events = append(events, e)
		}
	}
	return events, nil
}

func (f fakeEvents) List(_ context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var events []domain.Event
	for _, e := range f.events {
		if filter.PublicOnly && (e.Status != domain.EventApproved || e.AvailableTickets == 0 || e.Date.Before(filter.From)) {
			continue
		}
		if filter.OrganizerID != 0 && e.OrganizerID != filter.OrganizerID {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(e.Title), strings.ToLower(filter.Search)) {
			continue
		}
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (f fakeEvents) ListForModeration(_ context.Context, _ string, _ domain.EventStatus) ([]domain.EventRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []domain.EventRow
	for _, e := range f.events {
		rows = append(rows, domain.EventRow{Event: e, TicketsSold: e.Sold()})
	}
	return rows, nil
}

func (f fakeEvents) Update(_ context.Context, id uint, mutate func(*domain.Event) error) (domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[id]
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	if err := mutate(&e); err != nil {
		return domain.Event{}, err
	}
	if e.AvailableTickets < 0 || e.AvailableTickets > e.TotalTickets {
		return domain.Event{}, domain.ErrCapacityViolation
	}
	e.Version++
	f.events[id] = e
	return e, nil
}

func (f fakeEvents) Cancel(_ context.Context, id uint, check func(domain.Event) error, at time.Time) (domain.Event, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[id]
	if !ok {
		return domain.Event{}, 0, domain.ErrEventNotFound
	}
	if err := check(e); err != nil {
		return domain.Event{}, 0, err
	}
	e.Status = domain.EventCancelled
	e.Version++
	f.events[id] = e

	n := 0
	for _, b := range f.bookings {
		if b.EventID == id && b.Status == domain.BookingConfirmed {
			if _, err := f.cancelBooking(b, at); err != nil {
				return domain.Event{}, 0, err
			}
			n++
		}
	}
	return f.events[id], n, nil
}

type fakeBookings struct{ *store }

func (f fakeBookings) Place(_ context.Context, b domain.Booking, promotionID *uint) (domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	e, ok := f.events[b.EventID]
	if !ok {
		return domain.Booking{}, domain.ErrEventNotFound
	}
	if e.Status != domain.EventApproved {
		return domain.Booking{}, domain.ErrEventNotBookable
	}
	if err := domain.Reserve(&e, b.Quantity); err != nil {
		return domain.Booking{}, err
	}

	var promo *domain.Promotion
	if promotionID != nil {
		for _, p := range f.promotions {
			if p.ID == *promotionID {
				if p.UsageLimit > 0 && p.UsedCount >= p.UsageLimit {
					return domain.Booking{}, domain.NewValidationError("promotion_code", "promotion usage limit reached")
				}
				p.UsedCount++
				promo = &p
			}
		}
	}

	if f.failInsert {
		f.failInsert = false
		return domain.Booking{}, fmt.Errorf("insert booking: connection reset")
	}

	// Commit.
	f.events[e.ID] = e
	if promo != nil {
		f.promotions[promo.Code] = *promo
	}
	b.ID = f.id()
	for i := range b.Tickets {
		b.Tickets[i].ID = f.id()
		b.Tickets[i].BookingID = b.ID
	}
	if b.Payment != nil {
		p := *b.Payment
		p.ID = f.id()
		p.BookingID = b.ID
		b.Payment = &p
	}
	f.bookings[b.Reference] = b

	return f.bookingWithEvent(b), nil
}

func (f fakeBookings) Cancel(_ context.Context, ref string, at time.Time) (domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[ref]
	if !ok {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	b, err := f.cancelBooking(b, at)
	if err != nil {
		return domain.Booking{}, err
	}
	return f.bookingWithEvent(b), nil
}

func (f fakeBookings) FindByReference(_ context.Context, ref string) (domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[ref]
	if !ok {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	return f.bookingWithEvent(b), nil
}

func (f fakeBookings) ListByUser(_ context.Context, userID uint) ([]domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, f.bookingWithEvent(b))
		}
	}
	return out, nil
}

func (f fakeBookings) ListUpcomingTickets(_ context.Context, userID uint, from time.Time) ([]domain.TicketDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.TicketDetails
	for _, b := range f.bookings {
		e := f.events[b.EventID]
		if b.UserID != userID || b.Status != domain.BookingConfirmed || e.Date.Before(from) {
			continue
		}
		for _, t := range b.Tickets {
			if t.Status == domain.TicketValid {
				out = append(out, domain.TicketDetails{Ticket: t, BookingReference: b.Reference, BookingStatus: b.Status, Event: e})
			}
		}
	}
	return out, nil
}

func (f fakeBookings) findTicket(number string) (domain.Booking, int, bool) {
	for _, b := range f.bookings {
		for i, t := range b.Tickets {
			if t.Number == number {
				return b, i, true
			}
		}
	}
	return domain.Booking{}, 0, false
}

func (f fakeBookings) FindTicketByNumber(_ context.Context, number string) (domain.TicketDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, i, ok := f.findTicket(number)
	if !ok {
		return domain.TicketDetails{}, domain.ErrTicketNotFound
	}
	return domain.TicketDetails{
		Ticket:           b.Tickets[i],
		BookingReference: b.Reference,
		BookingStatus:    b.Status,
		Event:            f.events[b.EventID],
	}, nil
}

func (f fakeBookings) MarkTicketUsed(_ context.Context, id uint, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ref, b := range f.bookings {
		for i, t := range b.Tickets {
			if t.ID != id {
				continue
			}
			if t.Status != domain.TicketValid {
				return domain.ErrInvalidTransition
			}
			b.Tickets[i].Status = domain.TicketUsed
			b.Tickets[i].ScannedAt = &at
			f.bookings[ref] = b
			return nil
		}
	}
	return domain.ErrTicketNotFound
}

type fakeUsers struct{ *store }

func (f fakeUsers) Create(_ context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return domain.User{}, domain.ErrUserEmailExists
		}
	}
	u.ID = f.id()
	f.users[u.ID] = u
	return u, nil
}

func (f fakeUsers) FindByID(_ context.Context, id uint) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (f fakeUsers) FindByEmail(_ context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (f fakeUsers) List(_ context.Context, filter domain.UserFilter) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.User
	for _, u := range f.users {
		if filter.Role == "" || u.Role == filter.Role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f fakeUsers) Update(_ context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.ID]; !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	f.users[u.ID] = u
	return u, nil
}

func (f fakeUsers) UpdatePassword(_ context.Context, id uint, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Password = hash
	f.users[id] = u
	return nil
}

func (f fakeUsers) TouchLastLogin(_ context.Context, id uint, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.users[id]
	u.LastLogin = &at
	f.users[id] = u
	return nil
}

func (f fakeUsers) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.events {
		if e.OrganizerID == id {
			return domain.ErrUserHasDependents
		}
	}
	delete(f.users, id)
	return nil
}

type fakeCatalog struct{ *store }

func (f fakeCatalog) FindVenueByID(_ context.Context, id uint) (domain.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.venues[id]
	if !ok {
		return domain.Venue{}, domain.ErrVenueNotFound
	}
	return v, nil
}

func (f fakeCatalog) FindCategoryByID(_ context.Context, id uint) (domain.EventCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.categories[id]
	if !ok {
		return domain.EventCategory{}, domain.ErrCategoryNotFound
	}
	return c, nil
}

type fakePromotions struct{ *store }

func (f fakePromotions) FindByCode(_ context.Context, code string) (domain.Promotion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.promotions[code]
	if !ok {
		return domain.Promotion{}, domain.ErrPromotionNotFound
	}
	return p, nil
}

// fakeImages keeps stored images in memory.
type fakeImages struct {
	mu    sync.Mutex
	files map[string][]byte
	n     int
}

func newFakeImages() *fakeImages {
	return &fakeImages{files: map[string][]byte{}}
}

func (f *fakeImages) Save(_ context.Context, data []byte, name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	path := fmt.Sprintf("/uploads/events/%d-%s.webp", f.n, name)
	f.files[path] = data
	return path, nil
}

func (f *fakeImages) Delete(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.files, path)
	return nil
}

func (f *fakeImages) has(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.files[path]
	return ok
}

type fakeHub struct {
	mu        sync.Mutex
	published []domain.Availability
}

func (h *fakeHub) Publish(a domain.Availability) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.published = append(h.published, a)
}

func (h *fakeHub) last() domain.Availability {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.published) == 0 {
		return domain.Availability{}
	}
	return h.published[len(h.published)-1]
}

var (
	testNow   = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	nextMonth = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
)

func fixedNow() time.Time { return testNow }

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func approvedEvent(organizerID uint, total, available int) domain.Event {
	return domain.Event{
		Title:            "Spring Gala",
		Date:             nextMonth,
		Time:             "20:00",
		TicketPrice:      price("50.00"),
		TotalTickets:     total,
		AvailableTickets: available,
		Status:           domain.EventApproved,
		OrganizerID:      organizerID,
	}
}
