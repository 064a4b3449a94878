package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"savingsbook/internal/models"
	"savingsbook/internal/repositories"
	"savingsbook/internal/repositories/memory"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var branchZone = time.FixedZone("ICT", 7*60*60)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// tickingClock moves forward by step after every read
type tickingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

// engine wires the savings services over one set of stores
type engine struct {
	ctx         context.Context
	clock       *FixedClock
	registry    *prometheus.Registry
	store       repositories.LedgerStore
	types       repositories.SavingsTypeRepositoryInterface
	regulations *RegulationStore
	ledger      *AccountLedger
	savings     *SavingsService
	reports     ReportAggregatorInterface
	catalogue   SavingsTypeServiceInterface
}

func newEngine(t *testing.T, store repositories.LedgerStore, types repositories.SavingsTypeRepositoryInterface, regulations repositories.RegulationRepositoryInterface) *engine {
	t.Helper()

	ctx := context.Background()
	logger := discardLogger()
	clock := NewFixedClock(time.Date(2025, 1, 1, 9, 30, 0, 0, branchZone))
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(registry)
	audit := NewAuditLogger(logger)

	regStore := NewRegulationStore(regulations, clock, RegulationDefaults{
		MinimumDepositAmount: decimal.NewFromInt(100000),
		MinimumTermDays:      15,
	}, audit, metrics, logger)
	require.NoError(t, regStore.Reload(ctx))

	ledger := NewAccountLedger(store, NewInterestCalculator(), clock, audit, logger)
	savings := NewSavingsService(regStore, types, ledger, NewTransactionRulesEngine(), clock, audit, metrics, logger).(*SavingsService)

	e := &engine{
		ctx:         ctx,
		clock:       clock,
		registry:    registry,
		store:       store,
		types:       types,
		regulations: regStore,
		ledger:      ledger,
		savings:     savings,
		reports:     NewReportAggregator(store, types, branchZone, metrics),
		catalogue:   NewSavingsTypeService(types, regStore, logger),
	}
	require.NoError(t, e.catalogue.SeedDefaults(ctx))
	return e
}

func newMemoryEngine(t *testing.T) *engine {
	t.Helper()
	types := memory.NewSavingsTypes()
	return newEngine(t, memory.NewLedgerStore(), types, memory.NewRegulations(types))
}

// savingsType finds a seeded type by name
func (e *engine) savingsType(t *testing.T, name string) *models.SavingsType {
	t.Helper()
	types, err := e.types.List(e.ctx, false)
	require.NoError(t, err)
	for i := range types {
		if types[i].Name == name {
			return &types[i]
		}
	}
	t.Fatalf("savings type %q not seeded", name)
	return nil
}

func (e *engine) open(t *testing.T, typeName string, amount int64) *models.Account {
	t.Helper()
	result, err := e.savings.OpenAccount(e.ctx, "CUS-0001", e.savingsType(t, typeName).ID, decimal.NewFromInt(amount), "teller-01")
	require.NoError(t, err)
	return result.Account
}

func (e *engine) balance(t *testing.T, account *models.Account) decimal.Decimal {
	t.Helper()
	current, err := e.savings.GetAccount(e.ctx, account.ID)
	require.NoError(t, err)
	return current.Balance
}

// metricValue reads an unlabelled counter or gauge from the registry
func metricValue(t *testing.T, registry *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		var total float64
		for _, m := range family.GetMetric() {
			total += m.GetCounter().GetValue() + m.GetGauge().GetValue()
		}
		return total
	}
	return 0
}

// labelledValue reads one series of a counter vector from the registry
func labelledValue(t *testing.T, registry *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, m := range family.GetMetric() {
			matched := 0
			for _, pair := range m.GetLabel() {
				if want, ok := labels[pair.GetName()]; ok && want == pair.GetValue() {
					matched++
				}
			}
			if matched == len(labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
