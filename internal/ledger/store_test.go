package ledger

import (
	"testing"

	"fincoach/internal/models"
	"fincoach/internal/testutil"

	"github.com/shopspring/decimal"
)

func TestTotalByType(t *testing.T) {
	t.Run("zero when no rows match", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewStore(db)

		total, err := store.TotalByType(testutil.NewUserID(), models.TransactionTypeIncome)
		testutil.AssertNoError(t, err)
		if !total.IsZero() {
			t.Errorf("expected zero total, got %s", total)
		}
	})

	t.Run("sums only the requested user and type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewStore(db)
		userID := testutil.NewUserID()
		otherID := testutil.NewUserID()

		testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeIncome, testutil.Paise(60000), nil)
		testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeIncome, testutil.Paise(40000), nil)
		testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeExpense, testutil.Paise(5000), nil)
		testutil.CreateTestTransaction(t, db, otherID, models.TransactionTypeIncome, testutil.Paise(99999), nil)

		total, err := store.TotalByType(userID, models.TransactionTypeIncome)
		testutil.AssertNoError(t, err)
		if !total.Equal(decimal.NewFromInt(100000)) {
			t.Errorf("expected 100000, got %s", total)
		}
	})
}

func TestTotals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := NewStore(db)
	userID := testutil.NewUserID()

	testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeIncome, testutil.Paise(100000), nil)
	testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeExpense, testutil.Paise(40000), nil)
	testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeSavings, testutil.Paise(20000), nil)
	testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeInvestment, testutil.Paise(10000), nil)

	totals, err := store.Totals(userID)
	testutil.AssertNoError(t, err)

	if !totals.Income.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("expected income 100000, got %s", totals.Income)
	}
	if !totals.Expenses.Equal(decimal.NewFromInt(40000)) {
		t.Errorf("expected expenses 40000, got %s", totals.Expenses)
	}
	if !totals.Savings.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("expected savings 20000, got %s", totals.Savings)
	}
	if !totals.Investment.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("expected investment 10000, got %s", totals.Investment)
	}
	// net = income - (expenses + savings)
	if !totals.Net.Equal(decimal.NewFromInt(40000)) {
		t.Errorf("expected net 40000, got %s", totals.Net)
	}
}

func TestExpenseTotalsByCategory(t *testing.T) {
	t.Run("empty when no expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewStore(db)

		totals, err := store.ExpenseTotalsByCategory(testutil.NewUserID())
		testutil.AssertNoError(t, err)
		if len(totals) != 0 {
			t.Errorf("expected no category totals, got %d", len(totals))
		}
	})

	t.Run("groups by category name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewStore(db)
		userID := testutil.NewUserID()

		food := testutil.CreateTestCategory(t, db, "Food")
		rent := testutil.CreateTestCategory(t, db, "Rent")
		testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeExpense, testutil.Paise(20000), &food.ID)
		testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeExpense, testutil.Paise(10000), &food.ID)
		testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeExpense, testutil.Paise(10000), &rent.ID)
		// Income rows never count as category expenses.
		testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeIncome, testutil.Paise(100000), &food.ID)

		totals, err := store.ExpenseTotalsByCategory(userID)
		testutil.AssertNoError(t, err)
		if len(totals) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(totals))
		}

		// Aggregation order is unspecified.
		byName := make(map[string]decimal.Decimal, len(totals))
		for _, c := range totals {
			byName[c.Category] = c.Total
		}
		if !byName["Food"].Equal(decimal.NewFromInt(30000)) {
			t.Errorf("expected Food 30000, got %s", byName["Food"])
		}
		if !byName["Rent"].Equal(decimal.NewFromInt(10000)) {
			t.Errorf("expected Rent 10000, got %s", byName["Rent"])
		}
	})
}

func TestDailyExpenses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := NewStore(db)
	userID := testutil.NewUserID()

	testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeExpense, testutil.Paise(1500), nil)
	testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeExpense, testutil.Paise(500), nil)

	daily, err := store.DailyExpenses(userID, 30)
	testutil.AssertNoError(t, err)

	if len(daily) != 30 {
		t.Fatalf("expected 30 entries, got %d", len(daily))
	}

	// Gaps are zero-filled; today carries the sum.
	today := daily[len(daily)-1]
	if !today.Total.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("expected today's total 2000, got %s", today.Total)
	}
	for _, d := range daily[:len(daily)-1] {
		if !d.Total.IsZero() {
			t.Errorf("expected zero total on %s, got %s", d.Date, d.Total)
		}
	}
}

func TestGoals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := NewStore(db)
	userID := testutil.NewUserID()

	testutil.CreateTestGoal(t, db, userID, "Emergency fund", testutil.Paise(100000), testutil.Paise(25000))

	goals, err := store.Goals(userID)
	testutil.AssertNoError(t, err)
	if len(goals) != 1 || goals[0].Name != "Emergency fund" {
		t.Errorf("expected one goal named Emergency fund, got %+v", goals)
	}
}

func TestProfileStoreRiskTolerance(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewProfileStore(db)
		userID := testutil.NewUserID()
		testutil.CreateTestProfile(t, db, userID, models.RiskHigh)

		tier, err := store.RiskTolerance(userID)
		testutil.AssertNoError(t, err)
		if tier != models.RiskHigh {
			t.Errorf("expected %s, got %s", models.RiskHigh, tier)
		}
	})

	t.Run("not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewProfileStore(db)

		_, err := store.RiskTolerance(testutil.NewUserID())
		testutil.AssertAppError(t, err, "RISK_PROFILE_NOT_FOUND")
	})
}
