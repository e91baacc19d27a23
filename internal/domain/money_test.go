package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/bos/internal/domain"
)

func mustMoney(t *testing.T, s string) domain.Money {
	t.Helper()
	m, err := domain.MoneyFromString(s)
	if err != nil {
		t.Fatalf("parse money %q: %v", s, err)
	}
	return m
}

func TestMoneyFromString_QuantizesHalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10.005", "10.01"},
		{"10.004", "10.00"},
		{"10.015", "10.02"},
		{"10", "10.00"},
		{"0.1", "0.10"},
	}

	for _, tc := range cases {
		got := mustMoney(t, tc.in).String()
		if got != tc.want {
			t.Fatalf("MoneyFromString(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMoneyFromString_Invalid(t *testing.T) {
	if _, err := domain.MoneyFromString("not-a-number"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMoneyFromFloat_AvoidsBinaryNoise(t *testing.T) {
	if got := domain.MoneyFromFloat(10.1).String(); got != "10.10" {
		t.Fatalf("expected 10.10, got %s", got)
	}
	if got := domain.MoneyFromFloat(2.675).String(); got != "2.68" {
		t.Fatalf("expected 2.68, got %s", got)
	}
}

func TestMoney_AddCommutativeAndAssociative(t *testing.T) {
	a := mustMoney(t, "1.115")
	b := mustMoney(t, "2.225")
	c := mustMoney(t, "3.335")

	if !a.Add(b).Equal(b.Add(a)) {
		t.Fatal("addition must be commutative")
	}
	if !a.Add(b).Add(c).Equal(a.Add(b.Add(c))) {
		t.Fatal("addition must be associative under quantization")
	}
}

func TestMoney_SubAndMul(t *testing.T) {
	total := mustMoney(t, "100.00")

	if got := total.Sub(mustMoney(t, "10.00")).String(); got != "90.00" {
		t.Fatalf("expected 90.00, got %s", got)
	}
	if got := mustMoney(t, "5.00").MulInt(5).String(); got != "25.00" {
		t.Fatalf("expected 25.00, got %s", got)
	}
	// Квантование после умножения: 3.33 * 1.5 = 4.995 → 5.00.
	if got := mustMoney(t, "3.33").Mul(decimal.RequireFromString("1.5")).String(); got != "5.00" {
		t.Fatalf("expected 5.00, got %s", got)
	}
}

func TestMoney_Percent(t *testing.T) {
	cases := []struct {
		amount  string
		percent int64
		want    string
	}{
		{"100.00", 10, "10.00"},
		{"30.00", 10, "3.00"},
		// Половина цента округляется вверх: 10.01 * 50% = 5.005 → 5.01.
		{"10.01", 50, "5.01"},
		{"100.00", 3, "3.00"},
		// Третий знак отбрасывается: 0.10 * 33% = 0.033 → 0.03.
		{"0.10", 33, "0.03"},
	}

	for _, tc := range cases {
		got := mustMoney(t, tc.amount).Percent(tc.percent).String()
		if got != tc.want {
			t.Fatalf("%s.Percent(%d) = %s, want %s", tc.amount, tc.percent, got, tc.want)
		}
	}
}

func TestMoneyZero_IsSeedForAggregation(t *testing.T) {
	zero := domain.MoneyZero()
	if !zero.IsZero() {
		t.Fatal("expected zero money")
	}
	if got := zero.Add(mustMoney(t, "0.005")).String(); got != "0.01" {
		t.Fatalf("expected 0.01, got %s", got)
	}
	if zero.Cmp(mustMoney(t, "0.01")) != -1 {
		t.Fatal("expected zero to be less than one cent")
	}
}
