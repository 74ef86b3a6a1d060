package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaxa123/jaxa-tg/internal/domain"
)

func testOrder(username string, total int64) domain.Order {
	return domain.Order{
		Username: username,
		Total:    decimal.NewFromInt(total),
		Status:   domain.OrderStatusPending,
	}
}

func TestLedger_Append_SequentialNumbersFromOne(t *testing.T) {
	ledger := NewMemoryLedger()

	assert.Equal(t, 1, ledger.Append(testOrder("a", 100)))
	assert.Equal(t, 2, ledger.Append(testOrder("b", 200)))
	assert.Equal(t, 3, ledger.Append(testOrder("c", 300)))
	assert.Equal(t, 3, ledger.Len())
}

func TestLedger_NumbersSurviveQueries(t *testing.T) {
	ledger := NewMemoryLedger()
	ledger.Append(testOrder("a", 100))

	_ = ledger.Recent(5)
	_ = ledger.All()

	assert.Equal(t, 2, ledger.Append(testOrder("b", 200)))
}

func TestLedger_Recent_MostRecentFirst(t *testing.T) {
	ledger := NewMemoryLedger()
	ledger.Append(testOrder("a", 100))
	ledger.Append(testOrder("b", 200))
	ledger.Append(testOrder("c", 300))

	recent := ledger.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].Username)
	assert.Equal(t, "b", recent[1].Username)
}

func TestLedger_Recent_TruncatesToLength(t *testing.T) {
	ledger := NewMemoryLedger()
	ledger.Append(testOrder("a", 100))

	recent := ledger.Recent(10)
	assert.Len(t, recent, 1)

	assert.Empty(t, NewMemoryLedger().Recent(5))
}

func TestLedger_All_ReturnsCopy(t *testing.T) {
	ledger := NewMemoryLedger()
	ledger.Append(testOrder("a", 100))

	all := ledger.All()
	all[0].Username = "mutated"

	assert.Equal(t, "a", ledger.All()[0].Username)
}
