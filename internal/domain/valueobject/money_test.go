package valueobject

import (
	"math"
	"testing"

	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts zero", func(t *testing.T) {
		m, err := NewMoney(0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Cents() != 0 {
			t.Errorf("expected 0 cents, got %d", m.Cents())
		}
	})

	t.Run("accepts positive amounts", func(t *testing.T) {
		m, err := NewMoney(12345)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Cents() != 12345 {
			t.Errorf("expected 12345 cents, got %d", m.Cents())
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := NewMoney(-1)
		assertValidationCode(t, err, domainerror.ErrCodeNegativeAmount)
	})
}

func TestMoneyAdd(t *testing.T) {
	t.Run("sums two amounts", func(t *testing.T) {
		a, _ := NewMoney(1000)
		b, _ := NewMoney(250)
		sum, err := a.Add(b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sum.Cents() != 1250 {
			t.Errorf("expected 1250 cents, got %d", sum.Cents())
		}
	})

	t.Run("fails on overflow", func(t *testing.T) {
		a, _ := NewMoney(math.MaxInt64)
		b, _ := NewMoney(1)
		_, err := a.Add(b)
		assertValidationCode(t, err, domainerror.ErrCodeAmountTooLarge)
	})
}

func TestMoneySub(t *testing.T) {
	t.Run("subtracts a smaller amount", func(t *testing.T) {
		a, _ := NewMoney(1000)
		b, _ := NewMoney(400)
		diff, err := a.Sub(b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff.Cents() != 600 {
			t.Errorf("expected 600 cents, got %d", diff.Cents())
		}
	})

	t.Run("fails when the result would be negative", func(t *testing.T) {
		a, _ := NewMoney(100)
		b, _ := NewMoney(200)
		_, err := a.Sub(b)
		assertValidationCode(t, err, domainerror.ErrCodeNegativeAmount)
	})
}

func TestMoneyComparisons(t *testing.T) {
	small, _ := NewMoney(100)
	large, _ := NewMoney(200)
	sameAsSmall, _ := NewMoney(100)

	if !large.GreaterThan(small) {
		t.Error("expected 200 > 100")
	}
	if !small.LessThan(large) {
		t.Error("expected 100 < 200")
	}
	if !small.Equals(sameAsSmall) {
		t.Error("expected equal amounts to compare equal")
	}
	if small.Equals(large) {
		t.Error("expected different amounts not to compare equal")
	}
}

func TestMoneyToDecimal(t *testing.T) {
	m, _ := NewMoney(123456)
	if got := m.ToDecimal().StringFixed(2); got != "1234.56" {
		t.Errorf("expected 1234.56, got %s", got)
	}

	if got := ZeroMoney().ToDecimal().StringFixed(2); got != "0.00" {
		t.Errorf("expected 0.00, got %s", got)
	}
}
