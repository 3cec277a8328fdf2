package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/domain/valueobject"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.UserModel{}, &model.TransactionModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestUser(t *testing.T, email string) *entity.User {
	t.Helper()
	emailVO, err := valueobject.NewEmail(email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return entity.NewUser(emailVO, "hash", nil)
}

func newStoredTransaction(t *testing.T, db *gorm.DB, userID uuid.UUID, title string, cents int64, typeLiteral string, date time.Time) *entity.Transaction {
	t.Helper()
	amount, err := valueobject.NewMoney(cents)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	transactionType, err := valueobject.NewTransactionType(typeLiteral)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	transaction := entity.NewTransaction(userID, title, amount, transactionType, "General", date)

	repo := NewTransactionRepository(db)
	if err := repo.Create(context.Background(), transaction); err != nil {
		t.Fatalf("failed to store transaction: %v", err)
	}
	return transaction
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find by id", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := newTestUser(t, "ada@example.com")

		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.Equals(user) {
			t.Error("expected the stored user")
		}
		if found.Email.String() != "ada@example.com" {
			t.Errorf("expected email to roundtrip, got %s", found.Email.String())
		}
	})

	t.Run("find by email", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := newTestUser(t, "ada@example.com")
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByEmail(ctx, "ada@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.Equals(user) {
			t.Error("expected the stored user")
		}
	})

	t.Run("missing user yields ErrUserNotFound", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))

		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
		if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("exists by email", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := newTestUser(t, "ada@example.com")
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		exists, err := repo.ExistsByEmail(ctx, "ada@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected existing email to be reported")
		}

		exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected unknown email not to be reported")
		}
	})

	t.Run("delete removes the user", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := newTestUser(t, "ada@example.com")
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := repo.Delete(ctx, user.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(ctx, user.ID); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound after delete, got %v", err)
		}
	})
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find by id", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()
		date := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
		created := newStoredTransaction(t, db, userID, "Lunch", 1500, "EXPENSE", date)

		found, err := repo.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.Equals(created) {
			t.Error("expected the stored transaction")
		}
		if found.Amount.Cents() != 1500 || !found.IsExpense() {
			t.Error("expected amount and type to roundtrip")
		}
	})

	t.Run("missing transaction yields ErrTransactionNotFound", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
		if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound on delete, got %v", err)
		}
	})

	t.Run("find by user orders newest first and isolates users", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()

		newStoredTransaction(t, db, userID, "Older", 100, "EXPENSE", time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
		newStoredTransaction(t, db, userID, "Newer", 200, "EXPENSE", time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC))
		newStoredTransaction(t, db, uuid.New(), "Other", 300, "EXPENSE", time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC))

		found, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(found))
		}
		if found[0].Title != "Newer" || found[1].Title != "Older" {
			t.Errorf("expected date-descending order, got %s, %s", found[0].Title, found[1].Title)
		}
	})

	t.Run("find by date range is inclusive", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()

		start := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC)

		newStoredTransaction(t, db, userID, "OnStart", 100, "EXPENSE", start)
		newStoredTransaction(t, db, userID, "OnEnd", 200, "EXPENSE", end)
		newStoredTransaction(t, db, userID, "Before", 300, "EXPENSE", start.AddDate(0, 0, -1))
		newStoredTransaction(t, db, userID, "After", 400, "EXPENSE", end.AddDate(0, 0, 1))

		found, err := repo.FindByDateRange(ctx, userID, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(found))
		}
		for _, transaction := range found {
			if transaction.Title == "Before" || transaction.Title == "After" {
				t.Errorf("unexpected transaction %s in range", transaction.Title)
			}
		}
	})

	t.Run("update persists changes", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()
		created := newStoredTransaction(t, db, userID, "Lunch", 1500, "EXPENSE", time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC))

		created.Title = "Dinner"
		amount, _ := valueobject.NewMoney(4200)
		created.Amount = amount

		if err := repo.Update(ctx, created); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Title != "Dinner" || found.Amount.Cents() != 4200 {
			t.Errorf("expected updated fields, got %s / %d", found.Title, found.Amount.Cents())
		}
	})

	t.Run("count with and without bounds", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()

		june := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
		may := time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC)
		newStoredTransaction(t, db, userID, "A", 100, "EXPENSE", june)
		newStoredTransaction(t, db, userID, "B", 200, "INCOME", may)

		total, err := repo.Count(ctx, userID, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 2 {
			t.Errorf("expected 2, got %d", total)
		}

		start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
		bounded, err := repo.Count(ctx, userID, &start, &end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bounded != 1 {
			t.Errorf("expected 1, got %d", bounded)
		}
	})
}

func TestTransactionRepositoryGetDashboardStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.June, 18, 12, 0, 0, 0, time.UTC)

	t.Run("aggregates current and previous month", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()

		// Current month: income 1200.00, expense 450.00, 3 transactions.
		newStoredTransaction(t, db, userID, "Salary", 120000, "INCOME", time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
		newStoredTransaction(t, db, userID, "Rent", 30000, "EXPENSE", time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC))
		newStoredTransaction(t, db, userID, "Food", 15000, "EXPENSE", time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC))

		// Previous month: income 1000.00, expense 500.00.
		newStoredTransaction(t, db, userID, "Salary", 100000, "INCOME", time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC))
		newStoredTransaction(t, db, userID, "Rent", 50000, "EXPENSE", time.Date(2026, time.May, 5, 0, 0, 0, 0, time.UTC))

		// Out of both windows and another user's data must not count.
		newStoredTransaction(t, db, userID, "Old", 999999, "INCOME", time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC))
		newStoredTransaction(t, db, uuid.New(), "Other", 777777, "INCOME", time.Date(2026, time.June, 2, 0, 0, 0, 0, time.UTC))

		stats, err := repo.GetDashboardStats(ctx, userID, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if stats.TotalIncome != 120000 {
			t.Errorf("expected total income 120000, got %d", stats.TotalIncome)
		}
		if stats.TotalExpense != 45000 {
			t.Errorf("expected total expense 45000, got %d", stats.TotalExpense)
		}
		if stats.Balance != 75000 {
			t.Errorf("expected balance 75000, got %d", stats.Balance)
		}
		if stats.TransactionCount != 3 {
			t.Errorf("expected count 3, got %d", stats.TransactionCount)
		}
		if stats.PreviousMonthIncome != 100000 || stats.PreviousMonthExpense != 50000 {
			t.Errorf("unexpected previous month totals: %d / %d", stats.PreviousMonthIncome, stats.PreviousMonthExpense)
		}
		if got := stats.IncomeChangePercent.StringFixed(2); got != "20.00" {
			t.Errorf("expected income change percent 20.00, got %s", got)
		}
		if got := stats.ExpenseChangePercent.StringFixed(2); got != "-10.00" {
			t.Errorf("expected expense change percent -10.00, got %s", got)
		}
	})

	t.Run("empty previous month yields zero percents", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()

		newStoredTransaction(t, db, userID, "Salary", 50000, "INCOME", time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))

		stats, err := repo.GetDashboardStats(ctx, userID, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if stats.IncomeChange != 50000 {
			t.Errorf("expected income change 50000, got %d", stats.IncomeChange)
		}
		if !stats.IncomeChangePercent.IsZero() || !stats.ExpenseChangePercent.IsZero() {
			t.Error("expected zero percent changes with an empty previous month")
		}
	})

	t.Run("no data yields an all-zero summary", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		stats, err := repo.GetDashboardStats(ctx, uuid.New(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalIncome != 0 || stats.TotalExpense != 0 || stats.Balance != 0 || stats.TransactionCount != 0 {
			t.Errorf("expected zeroed stats, got %+v", stats)
		}
	})
}
