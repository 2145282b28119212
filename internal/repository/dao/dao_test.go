package dao

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/starevents/starevents-api/internal/domain"
)

var testDB *gorm.DB

// TestMain starts a throwaway postgres. Without docker, or with -short, the
// tests in this package are skipped.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	pool, err := dockertest.NewPool("")
	if err != nil || pool.Client.Ping() != nil {
		log.Printf("docker unavailable, skipping dao integration tests")
		os.Exit(m.Run())
	}
	pool.MaxWait = 90 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=starevents",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=starevents",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres: %v", err)
	}
	_ = resource.Expire(300)

	dsn := fmt.Sprintf("postgres://starevents:secret@%s/starevents?sslmode=disable", resource.GetHostPort("5432/tcp"))
	err = pool.Retry(func() error {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err = sqlDB.Ping(); err != nil {
			return err
		}
		testDB = db
		return nil
	})
	if err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("could not connect to postgres: %v", err)
	}

	if err = InitTables(testDB); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("InitTables: %v", err)
	}

	code := m.Run()

	_ = pool.Purge(resource)
	os.Exit(code)
}

func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("postgres not available")
	}
	return testDB
}

type fixture struct {
	organizer User
	customer  User
	venue     Venue
	category  EventCategory
}

func newFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	ctx := context.Background()
	users := NewUserDAO(db)
	catalog := NewCatalogDAO(db)
	suffix := uuid.NewString()[:8]
	now := time.Now()

	organizer, err := users.Insert(ctx, User{
		Email: "org-" + suffix + "@example.com", Password: "x",
		FirstName: "Olga", LastName: "Org", Role: string(domain.RoleOrganizer), DateJoined: now, IsActive: true,
	})
	require.NoError(t, err)
	customer, err := users.Insert(ctx, User{
		Email: "cus-" + suffix + "@example.com", Password: "x",
		FirstName: "Carl", LastName: "Cus", City: "Colombo", Role: string(domain.RoleCustomer), DateJoined: now, IsActive: true,
	})
	require.NoError(t, err)
	venue, err := catalog.InsertVenue(ctx, Venue{
		Name: "Hall " + suffix, Address: "1 Main St", City: "Colombo", Capacity: 500, CreatedBy: organizer.ID, IsActive: true,
	})
	require.NoError(t, err)
	category, err := catalog.InsertCategory(ctx, EventCategory{Name: "Music " + suffix, IsActive: true})
	require.NoError(t, err)

	return fixture{organizer: organizer, customer: customer, venue: venue, category: category}
}

func (f fixture) event(t *testing.T, db *gorm.DB, total int, status domain.EventStatus) Event {
	t.Helper()
	event, err := NewEventDAO(db).Insert(context.Background(), Event{
		Title:            "Concert",
		Date:             time.Now().AddDate(0, 1, 0),
		Time:             "19:30",
		TicketPrice:      decimal.RequireFromString("25.00"),
		TotalTickets:     total,
		AvailableTickets: total,
		Status:           string(status),
		OrganizerID:      f.organizer.ID,
		VenueID:          f.venue.ID,
		CategoryID:       f.category.ID,
		Version:          1,
	})
	require.NoError(t, err)
	return event
}

func (f fixture) booking(eventID uint, quantity int) Booking {
	ref := domain.NewBookingReference()
	amount := decimal.RequireFromString("25.00").Mul(decimal.NewFromInt(int64(quantity)))
	tickets := make([]Ticket, quantity)
	for i := range tickets {
		number := domain.NewTicketNumber()
		tickets[i] = Ticket{
			Number: number, AttendeeName: "Carl Cus", AttendeeEmail: f.customer.Email,
			QRPayload: domain.QRPayload(ref, number), Status: string(domain.TicketValid),
		}
	}

	return Booking{
		Reference:   ref,
		UserID:      f.customer.ID,
		EventID:     eventID,
		Quantity:    quantity,
		UnitPrice:   decimal.RequireFromString("25.00"),
		TotalAmount: amount,
		BookingDate: time.Now(),
		Status:      string(domain.BookingConfirmed),
		Tickets:     tickets,
		Payment: &Payment{
			Reference: domain.NewPaymentReference(), Amount: amount, Method: string(domain.PaymentCreditCard),
			Status: string(domain.PaymentCompleted), PaymentDate: time.Now(),
		},
	}
}

func TestBookingDAO_PlaceNeverOversells(t *testing.T) {
	db := requireDB(t)
	f := newFixture(t, db)
	event := f.event(t, db, 10, domain.EventApproved)
	bookings := NewBookingDAO(db)

	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		confirmed    int
		insufficient int
	)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := bookings.Place(context.Background(), f.booking(event.ID, 1))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				confirmed++
			case assert.ErrorIs(t, err, domain.ErrInsufficientInventory):
				insufficient++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, confirmed)
	assert.Equal(t, 15, insufficient)

	reloaded, err := NewEventDAO(db).FindByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.AvailableTickets)
}

func TestBookingDAO_PlaceRejectsUnbookable(t *testing.T) {
	db := requireDB(t)
	f := newFixture(t, db)
	pending := f.event(t, db, 10, domain.EventPending)
	bookings := NewBookingDAO(db)

	_, err := bookings.Place(context.Background(), f.booking(pending.ID, 1))
	assert.ErrorIs(t, err, domain.ErrEventNotBookable)

	_, err = bookings.Place(context.Background(), f.booking(999999, 1))
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	reloaded, err := NewEventDAO(db).FindByID(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, reloaded.AvailableTickets)
}

func TestBookingDAO_FailedInsertRollsBackReserve(t *testing.T) {
	db := requireDB(t)
	f := newFixture(t, db)
	event := f.event(t, db, 5, domain.EventApproved)
	bookings := NewBookingDAO(db)

	first, err := bookings.Place(context.Background(), f.booking(event.ID, 2))
	require.NoError(t, err)

	dup := f.booking(event.ID, 2)
	dup.Reference = first.Reference
	_, err = bookings.Place(context.Background(), dup)
	require.Error(t, err)

	reloaded, err := NewEventDAO(db).FindByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.AvailableTickets)
}

func TestBookingDAO_Cancel(t *testing.T) {
	db := requireDB(t)
	f := newFixture(t, db)
	event := f.event(t, db, 10, domain.EventApproved)
	bookings := NewBookingDAO(db)

	placed, err := bookings.Place(context.Background(), f.booking(event.ID, 3))
	require.NoError(t, err)
	require.Len(t, placed.Tickets, 3)
	require.NotNil(t, placed.Payment)

	cancelled, err := bookings.Cancel(context.Background(), placed.Reference, time.Now())
	require.NoError(t, err)
	assert.Equal(t, string(domain.BookingCancelled), cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
	for _, tk := range cancelled.Tickets {
		assert.Equal(t, string(domain.TicketCancelled), tk.Status)
	}
	assert.Equal(t, string(domain.PaymentRefunded), cancelled.Payment.Status)
	require.NotNil(t, cancelled.Payment.RefundAmount)
	assert.True(t, cancelled.Payment.RefundAmount.Equal(cancelled.Payment.Amount))
	assert.Equal(t, 10, cancelled.Event.AvailableTickets)

	_, err = bookings.Cancel(context.Background(), placed.Reference, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	reloaded, err := NewEventDAO(db).FindByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, reloaded.AvailableTickets)
}

func TestEventDAO_UpdateKeepsSoldTickets(t *testing.T) {
	db := requireDB(t)
	f := newFixture(t, db)
	event := f.event(t, db, 10, domain.EventApproved)
	events := NewEventDAO(db)

	_, err := NewBookingDAO(db).Place(context.Background(), f.booking(event.ID, 4))
	require.NoError(t, err)

	updated, err := events.Update(context.Background(), event.ID, func(e *Event) error {
		e.TotalTickets = 6
		e.AvailableTickets = 6 - (10 - e.AvailableTickets)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.TotalTickets)
	assert.Equal(t, 2, updated.AvailableTickets)
	assert.Equal(t, event.Version+1, updated.Version)

	_, err = events.Update(context.Background(), event.ID, func(e *Event) error {
		e.AvailableTickets = e.TotalTickets + 1
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrCapacityViolation)
}

func TestEventDAO_CancelCancelsBookings(t *testing.T) {
	db := requireDB(t)
	f := newFixture(t, db)
	event := f.event(t, db, 10, domain.EventApproved)
	bookings := NewBookingDAO(db)

	a, err := bookings.Place(context.Background(), f.booking(event.ID, 2))
	require.NoError(t, err)
	_, err = bookings.Place(context.Background(), f.booking(event.ID, 1))
	require.NoError(t, err)

	cancelled, n, err := NewEventDAO(db).Cancel(context.Background(), event.ID, func(*Event) error { return nil }, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, string(domain.EventCancelled), cancelled.Status)
	assert.Equal(t, 10, cancelled.AvailableTickets)

	reloaded, err := bookings.FindByReference(context.Background(), a.Reference)
	require.NoError(t, err)
	assert.Equal(t, string(domain.BookingCancelled), reloaded.Status)
}

func TestReportDAO_RevenueByMethod(t *testing.T) {
	db := requireDB(t)
	f := newFixture(t, db)
	event := f.event(t, db, 10, domain.EventApproved)
	_, err := NewBookingDAO(db).Place(context.Background(), f.booking(event.ID, 2))
	require.NoError(t, err)

	today := time.Now()
	r := domain.ReportRange{OrganizerID: f.organizer.ID, From: today.AddDate(0, 0, -1), To: today}
	reports := NewReportDAO(db)

	byMethod, err := reports.RevenueByMethod(context.Background(), r)
	require.NoError(t, err)
	require.Len(t, byMethod, 1)
	assert.Equal(t, string(domain.PaymentCreditCard), byMethod[0].Name)
	assert.True(t, byMethod[0].Amount.Equal(decimal.RequireFromString("50")))

	ids, err := reports.EventIDs(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, []uint{event.ID}, ids)

	cities, err := reports.TopCities(context.Background(), r, 5)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Colombo", cities[0].City)
	assert.Equal(t, int64(2), cities[0].Tickets)
}
