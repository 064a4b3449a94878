package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"savingsbook/internal/database"
	"savingsbook/internal/repositories"
	"savingsbook/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CircuitBreakerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	next    *repository_mocks.MockLedgerStore
	clock   *FixedClock
	breaker *CircuitBreaker
	store   *GuardedLedgerStore
	ctx     context.Context
}

func TestCircuitBreakerSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerSuite))
}

func (s *CircuitBreakerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.next = repository_mocks.NewMockLedgerStore(s.ctrl)
	s.clock = NewFixedClock(time.Date(2025, 3, 1, 8, 0, 0, 0, branchZone))
	s.breaker = NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     3,
		ResetTimeout:    10 * time.Second,
		HalfOpenMaxSucc: 2,
	}, s.clock)
	s.store = NewGuardedLedgerStore(s.next, s.breaker)
	s.ctx = context.Background()
}

func (s *CircuitBreakerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CircuitBreakerSuite) failStore(times int) {
	s.next.EXPECT().
		GetAccount(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: connection reset", repositories.ErrStoreUnavailable)).
		Times(times)
	for i := 0; i < times; i++ {
		_, err := s.store.GetAccount(s.ctx, uuid.New())
		s.Require().Error(err)
	}
}

func (s *CircuitBreakerSuite) TestOpensAfterConsecutiveFailures() {
	s.failStore(3)
	s.Equal(CircuitOpen, s.breaker.State())

	// Open breaker rejects without reaching the store
	_, err := s.store.GetAccount(s.ctx, uuid.New())
	s.ErrorIs(err, repositories.ErrStoreUnavailable)
	s.ErrorIs(err, ErrCircuitBreakerOpen)
}

func (s *CircuitBreakerSuite) TestDriverErrorsSurfaceAsUnavailable() {
	driverErr := errors.New("sql: database is closed")
	s.next.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(nil, driverErr)

	_, err := s.store.GetAccount(s.ctx, uuid.New())
	s.ErrorIs(err, repositories.ErrStoreUnavailable)
	s.ErrorIs(err, driverErr)
	s.Equal(1, s.breaker.Failures())

	// Already classified errors are not wrapped twice
	s.next.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: connection reset", repositories.ErrStoreUnavailable))
	_, err = s.store.ListTransactions(s.ctx, uuid.New())
	s.Equal("store unavailable: connection reset", err.Error())
}

func (s *CircuitBreakerSuite) TestDomainErrorsDoNotTrip() {
	s.next.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrAccountNotFound).Times(5)
	for i := 0; i < 5; i++ {
		_, err := s.store.GetAccount(s.ctx, uuid.New())
		s.ErrorIs(err, repositories.ErrAccountNotFound)
	}

	s.next.EXPECT().
		CommitTransition(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrConcurrentModification).
		Times(5)
	for i := 0; i < 5; i++ {
		_, err := s.store.CommitTransition(s.ctx, repositories.AccountUpdate{}, nil)
		s.ErrorIs(err, repositories.ErrConcurrentModification)
	}

	s.Equal(CircuitClosed, s.breaker.State())
	s.Equal(0, s.breaker.Failures())
}

func (s *CircuitBreakerSuite) TestSuccessResetsFailureCount() {
	s.failStore(2)
	s.Equal(2, s.breaker.Failures())

	s.next.EXPECT().FindAccountsByCustomerRef(gomock.Any(), "CUST-1").Return(nil, nil)
	_, err := s.store.FindAccountsByCustomerRef(s.ctx, "CUST-1")
	s.NoError(err)

	s.Equal(0, s.breaker.Failures())
	s.Equal(CircuitClosed, s.breaker.State())
}

func (s *CircuitBreakerSuite) TestHalfOpenRecovery() {
	s.failStore(3)
	s.clock.Set(s.clock.Now().Add(11 * time.Second))

	s.next.EXPECT().QueryTransactions(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	_, err := s.store.QueryTransactions(s.ctx, repositories.TransactionQuery{})
	s.NoError(err)
	s.Equal(CircuitHalfOpen, s.breaker.State())

	_, err = s.store.QueryTransactions(s.ctx, repositories.TransactionQuery{})
	s.NoError(err)
	s.Equal(CircuitClosed, s.breaker.State())
}

func (s *CircuitBreakerSuite) TestHalfOpenFailureReopens() {
	s.failStore(3)
	s.clock.Set(s.clock.Now().Add(11 * time.Second))

	s.next.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, errors.New("i/o timeout"))
	_, err := s.store.ListTransactions(s.ctx, uuid.New())
	s.Error(err)
	s.Equal(CircuitOpen, s.breaker.State())
}

func (s *CircuitBreakerSuite) TestPingBypassesBreaker() {
	s.failStore(3)

	s.next.EXPECT().Ping(gomock.Any()).Return(nil)
	s.NoError(s.store.Ping(s.ctx))
}

func TestGuardedLedgerStore_ClosedDatabase(t *testing.T) {
	db := database.SetupTestDB(t)
	clock := NewFixedClock(time.Date(2025, 1, 1, 9, 30, 0, 0, branchZone))
	store := NewGuardedLedgerStore(
		repositories.NewAccountRepository(db.DB),
		NewCircuitBreaker(DefaultCircuitBreakerConfig(), clock),
	)
	e := newEngine(t, store,
		repositories.NewSavingsTypeRepository(db.DB),
		repositories.NewRegulationRepository(db.DB),
	)
	account := e.open(t, "No term", 100000)

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = e.savings.Deposit(e.ctx, account.ID, money(200000), "teller-01")
	require.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrStoreUnavailable)

	_, err = e.reports.DailyReport(e.ctx, clock.Now())
	assert.ErrorIs(t, err, repositories.ErrStoreUnavailable)
}

func TestCircuitStateString(t *testing.T) {
	for state, want := range map[CircuitState]string{
		CircuitClosed:   "closed",
		CircuitOpen:     "open",
		CircuitHalfOpen: "half_open",
	} {
		if got := state.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", state, got, want)
		}
	}
}
