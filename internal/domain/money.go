package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// moneyScale — число знаков после запятой, до которого квантуется любая сумма.
const moneyScale = 2

// Money — неизменяемая денежная величина с фиксированной точностью.
// Инвариант: сумма всегда квантована до двух знаков после запятой
// по правилу half-up, поэтому любые две Money сравнимы напрямую.
type Money struct {
	amount decimal.Decimal
}

// quantize округляет до moneyScale знаков. Round у shopspring/decimal
// округляет «половину» от нуля, что для неотрицательных сумм совпадает
// с классическим half-up: 10.005 → 10.01.
func quantize(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyScale)
}

// NewMoney квантует произвольное decimal-значение до двух знаков.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: quantize(amount)}
}

// MoneyZero возвращает нулевую сумму — seed для агрегаций.
func MoneyZero() Money {
	return NewMoney(decimal.Zero)
}

// MoneyFromInt строит сумму из целого числа денежных единиц.
func MoneyFromInt(v int64) Money {
	return NewMoney(decimal.NewFromInt(v))
}

// MoneyFromFloat строит сумму из float64. NewFromFloat берёт кратчайшее
// десятичное представление числа, поэтому двоичная погрешность
// (10.1 == 10.100000000000000088...) в сумму не попадает.
func MoneyFromFloat(v float64) Money {
	return NewMoney(decimal.NewFromFloat(v))
}

// MoneyFromString разбирает десятичную строку: "10.005" → 10.01.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parse money %q: %w", s, err)
	}
	return NewMoney(d), nil
}

// Add возвращает сумму двух величин.
func (m Money) Add(other Money) Money {
	return NewMoney(m.amount.Add(other.amount))
}

// Sub возвращает разность двух величин.
func (m Money) Sub(other Money) Money {
	return NewMoney(m.amount.Sub(other.amount))
}

// MulInt умножает сумму на целый множитель.
func (m Money) MulInt(multiplier int64) Money {
	return NewMoney(m.amount.Mul(decimal.NewFromInt(multiplier)))
}

// Mul умножает сумму на произвольный десятичный множитель.
// Квантование выполняется после умножения, не до него.
func (m Money) Mul(multiplier decimal.Decimal) Money {
	return NewMoney(m.amount.Mul(multiplier))
}

// Percent возвращает p процентов от суммы: amount * p / 100,
// результат квантуется до цента.
func (m Money) Percent(p int64) Money {
	return NewMoney(m.amount.Mul(decimal.NewFromInt(p)).Div(decimal.NewFromInt(100)))
}

// Equal сравнивает квантованные суммы.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Cmp возвращает -1/0/+1 по порядку квантованных сумм.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// IsZero сообщает, равна ли сумма нулю.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Amount возвращает внутреннее decimal-значение (уже квантованное).
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// String печатает сумму ровно с двумя знаками после запятой.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
