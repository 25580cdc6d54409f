package dispenser_test

import (
	"math"
	"sync"
	"testing"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/SscSPs/atm_backend/internal/core/dispenser"
	"github.com/SscSPs/atm_backend/internal/core/domain"
	"github.com/SscSPs/atm_backend/internal/core/withdrawal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DispenserTestSuite struct {
	suite.Suite
	catalog   *domain.Catalog
	dispenser *dispenser.Dispenser
}

func (suite *DispenserTestSuite) section(d domain.Denomination, count int64) domain.CashSection {
	s, err := domain.NewCashSection(d, count)
	suite.Require().NoError(err)
	return s
}

func (suite *DispenserTestSuite) account(balance int64) *domain.Account {
	a, err := domain.NewAccount("1", decimal.NewFromInt(balance))
	suite.Require().NoError(err)
	return a
}

func (suite *DispenserTestSuite) fiveOfEach() []domain.CashSection {
	return []domain.CashSection{
		suite.section(10, 5),
		suite.section(100, 5),
		suite.section(500, 5),
		suite.section(1000, 5),
		suite.section(5000, 5),
	}
}

func (suite *DispenserTestSuite) counts() map[domain.Denomination]int64 {
	out := make(map[domain.Denomination]int64)
	for _, s := range suite.dispenser.Sections() {
		out[s.Denomination()] = s.Count()
	}
	return out
}

func (suite *DispenserTestSuite) recomputedTotal() decimal.Decimal {
	total := decimal.Zero
	for d, n := range suite.counts() {
		total = total.Add(decimal.NewFromInt(int64(d) * n))
	}
	return total
}

func (suite *DispenserTestSuite) SetupTest() {
	suite.catalog = domain.DefaultCatalog()
	d, err := dispenser.New(suite.catalog, withdrawal.NewGreedy(), suite.fiveOfEach()...)
	suite.Require().NoError(err)
	suite.dispenser = d
}

func (suite *DispenserTestSuite) TestNew_RequiresEveryDenominationOnce() {
	greedy := withdrawal.NewGreedy()

	_, err := dispenser.New(suite.catalog, greedy)
	suite.ErrorIs(err, apperrors.ErrConfiguration)

	_, err = dispenser.New(suite.catalog, greedy, suite.section(10, 1))
	suite.ErrorIs(err, apperrors.ErrConfiguration)

	sections := append(suite.fiveOfEach(), suite.section(10, 1))
	_, err = dispenser.New(suite.catalog, greedy, sections...)
	suite.ErrorIs(err, apperrors.ErrConfiguration)

	sections = append(suite.fiveOfEach()[1:], suite.section(50, 1))
	_, err = dispenser.New(suite.catalog, greedy, sections...)
	suite.ErrorIs(err, apperrors.ErrConfiguration)

	_, err = dispenser.New(suite.catalog, nil, suite.fiveOfEach()...)
	suite.ErrorIs(err, apperrors.ErrConfiguration)

	_, err = dispenser.New(nil, greedy, suite.fiveOfEach()...)
	suite.ErrorIs(err, apperrors.ErrConfiguration)
}

func (suite *DispenserTestSuite) TestTotalBalance() {
	suite.True(decimal.NewFromInt(33050).Equal(suite.dispenser.TotalBalance()))
	suite.True(suite.recomputedTotal().Equal(suite.dispenser.TotalBalance()))
}

func (suite *DispenserTestSuite) TestTotalBalance_BeyondInt64() {
	suite.Require().NoError(suite.dispenser.InsertSections(suite.section(5000, math.MaxInt64)))

	want := decimal.NewFromInt(math.MaxInt64).Mul(decimal.NewFromInt(5000)).Add(decimal.NewFromInt(8050))
	suite.True(want.Equal(suite.dispenser.TotalBalance()), "got %s", suite.dispenser.TotalBalance())
}

func (suite *DispenserTestSuite) TestInsertSections() {
	suite.Require().NoError(suite.dispenser.InsertSections(suite.section(10, 10)))
	suite.True(decimal.NewFromInt(33100).Equal(suite.dispenser.TotalBalance()))

	suite.Require().NoError(suite.dispenser.InsertSections(suite.section(10, 10), suite.section(100, 0)))
	suite.True(decimal.NewFromInt(32600).Equal(suite.dispenser.TotalBalance()))
	suite.Len(suite.dispenser.Sections(), 5)
}

func (suite *DispenserTestSuite) TestInsertSections_UnknownDenominationAppliesNothing() {
	err := suite.dispenser.InsertSections(suite.section(10, 100), suite.section(50, 1))
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(int64(5), suite.counts()[10])
}

func (suite *DispenserTestSuite) TestSections_SnapshotOrder() {
	sections := suite.dispenser.Sections()
	suite.Require().Len(sections, 5)
	for i, want := range []domain.Denomination{5000, 1000, 500, 100, 10} {
		suite.Equal(want, sections[i].Denomination())
		suite.Equal(int64(5), sections[i].Count())
	}
}

func (suite *DispenserTestSuite) TestWithdraw_Success() {
	account := suite.account(100000)

	result, err := suite.dispenser.Withdraw(account, decimal.NewFromInt(1600))

	suite.Require().NoError(err)
	suite.Equal(domain.OutcomeDispensed, result.Outcome)
	suite.Equal(domain.Breakdown{1000: 1, 500: 1, 100: 1}, result.Breakdown)
	suite.True(decimal.NewFromInt(1600).Equal(result.Breakdown.Total()))
	suite.True(decimal.NewFromInt(98400).Equal(account.Balance()))
	suite.True(decimal.NewFromInt(31450).Equal(suite.dispenser.TotalBalance()))
	suite.Equal(map[domain.Denomination]int64{10: 5, 100: 4, 500: 4, 1000: 4, 5000: 5}, suite.counts())
}

func (suite *DispenserTestSuite) TestWithdraw_NoExactBreakdownChangesNothing() {
	suite.Require().NoError(suite.dispenser.InsertSections(
		suite.section(500, 0), suite.section(1000, 0), suite.section(5000, 0)))
	account := suite.account(1000)
	before := suite.counts()

	result, err := suite.dispenser.Withdraw(account, decimal.NewFromInt(955))

	suite.Require().NoError(err)
	suite.Equal(domain.OutcomeNoExactBreakdown, result.Outcome)
	suite.Nil(result.Breakdown)
	suite.True(decimal.NewFromInt(1000).Equal(account.Balance()))
	suite.Equal(before, suite.counts())
}

func (suite *DispenserTestSuite) TestWithdraw_AmountEqualToBalanceIsRejected() {
	account := suite.account(1000)

	_, err := suite.dispenser.Withdraw(account, decimal.NewFromInt(1000))

	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.True(decimal.NewFromInt(1000).Equal(account.Balance()))
	suite.True(decimal.NewFromInt(33050).Equal(suite.dispenser.TotalBalance()))
}

func (suite *DispenserTestSuite) TestWithdraw_AboveBalance() {
	account := suite.account(1000)

	_, err := suite.dispenser.Withdraw(account, decimal.NewFromInt(1100))

	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.True(decimal.NewFromInt(1000).Equal(account.Balance()))
	suite.True(decimal.NewFromInt(33050).Equal(suite.dispenser.TotalBalance()))
}

func (suite *DispenserTestSuite) TestWithdraw_InvalidAmount() {
	account := suite.account(1000)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10), decimal.RequireFromString("10.5")} {
		_, err := suite.dispenser.Withdraw(account, amount)
		suite.ErrorIs(err, apperrors.ErrValidation, amount.String())
	}
	_, err := suite.dispenser.Withdraw(nil, decimal.NewFromInt(10))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DispenserTestSuite) TestDeposit_Success() {
	account := suite.account(1000)

	deposited, err := suite.dispenser.Deposit(account, map[domain.Denomination]int64{10: 5, 5000: 2, 100: 0})

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(10050).Equal(deposited))
	suite.True(decimal.NewFromInt(11050).Equal(account.Balance()))
	suite.True(decimal.NewFromInt(43100).Equal(suite.dispenser.TotalBalance()))
	suite.Equal(int64(10), suite.counts()[10])
	suite.Equal(int64(7), suite.counts()[5000])
	suite.Equal(int64(5), suite.counts()[100])
}

func (suite *DispenserTestSuite) TestDeposit_OverflowAppliesNothing() {
	account := suite.account(1000)
	before := suite.counts()

	_, err := suite.dispenser.Deposit(account, map[domain.Denomination]int64{10: 3, 5000: math.MaxInt64})

	suite.ErrorIs(err, apperrors.ErrCashSectionOverflow)
	suite.True(decimal.NewFromInt(1000).Equal(account.Balance()))
	suite.Equal(before, suite.counts())
}

func (suite *DispenserTestSuite) TestDeposit_CapacityAppliesNothing() {
	limited, err := domain.NewCashSectionWithCapacity(100, 5, 6)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.dispenser.InsertSections(limited))
	account := suite.account(0)

	_, err = suite.dispenser.Deposit(account, map[domain.Denomination]int64{10: 1, 100: 2})

	suite.ErrorIs(err, apperrors.ErrCashSectionOverflow)
	suite.True(account.Balance().IsZero())
	suite.Equal(int64(5), suite.counts()[10])
	suite.Equal(int64(5), suite.counts()[100])
}

func (suite *DispenserTestSuite) TestDeposit_RejectsInvalidEntries() {
	account := suite.account(0)

	_, err := suite.dispenser.Deposit(account, map[domain.Denomination]int64{10: -1})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.dispenser.Deposit(account, map[domain.Denomination]int64{50: 1})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.True(account.Balance().IsZero())
	suite.True(decimal.NewFromInt(33050).Equal(suite.dispenser.TotalBalance()))
}

func (suite *DispenserTestSuite) TestAccountBalance() {
	account := suite.account(100)
	suite.True(decimal.NewFromInt(100).Equal(suite.dispenser.AccountBalance(account)))
}

// Concurrent withdrawals and deposits must leave inventory and balances consistent:
// every banknote that left the dispenser was debited, every one that entered was credited.
func (suite *DispenserTestSuite) TestConcurrentOperationsAreLinearizable() {
	suite.Require().NoError(suite.dispenser.InsertSections(
		suite.section(10, 1000), suite.section(100, 1000), suite.section(500, 1000),
		suite.section(1000, 1000), suite.section(5000, 1000)))
	startTotal := suite.dispenser.TotalBalance()

	accounts := []*domain.Account{suite.account(1000000), suite.account(1000000), suite.account(1000000)}
	startBalances := decimal.Zero
	for _, a := range accounts {
		startBalances = startBalances.Add(a.Balance())
	}

	const rounds = 200
	var wg sync.WaitGroup
	for i, a := range accounts {
		wg.Add(1)
		go func(i int, a *domain.Account) {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				if (r+i)%2 == 0 {
					_, err := suite.dispenser.Withdraw(a, decimal.NewFromInt(1610))
					suite.NoError(err)
				} else {
					_, err := suite.dispenser.Deposit(a, map[domain.Denomination]int64{100: 3, 10: 2})
					suite.NoError(err)
				}
			}
		}(i, a)
	}
	wg.Wait()

	endBalances := decimal.Zero
	for _, a := range accounts {
		endBalances = endBalances.Add(a.Balance())
	}
	moved := suite.dispenser.TotalBalance().Sub(startTotal)
	suite.True(moved.Equal(endBalances.Sub(startBalances)), "inventory moved %s, balances moved %s",
		moved, endBalances.Sub(startBalances))
	suite.True(suite.recomputedTotal().Equal(suite.dispenser.TotalBalance()))
}

func TestDispenser(t *testing.T) {
	suite.Run(t, new(DispenserTestSuite))
}
