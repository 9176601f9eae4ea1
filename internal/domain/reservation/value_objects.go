package reservation

import "errors"

var ErrNegativeAmount = errors.New("amount cannot be negative")

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromInt(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Times scales a unit price by a quantity of units.
func (m Money) Times(quantity int32) Money {
	return Money{cents: m.cents * int64(quantity)}
}
