package payment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrInvalidUTR     = errors.New("invalid transaction reference")
)

// Money is an amount in paise (1/100 rupee).
type Money struct {
	paise int64
}

func NewMoney(paise int64) (Money, error) {
	if paise < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{paise: paise}, nil
}

func MustMoney(paise int64) Money {
	m, err := NewMoney(paise)
	if err != nil {
		panic(fmt.Sprintf("payment.MustMoney(%d): %v", paise, err))
	}
	return m
}

func (m Money) Paise() int64 {
	return m.paise
}

func (m Money) Rupees() float64 {
	return float64(m.paise) / 100.0
}

func (m Money) IsZero() bool {
	return m.paise == 0
}

func (m Money) LessThanOrEqual(other Money) bool {
	return m.paise <= other.paise
}

// UTR is the user-supplied payment reference submitted as manual proof of payment.
type UTR struct {
	value string
}

var utrRegex = regexp.MustCompile(`^[A-Za-z0-9\-]{4,64}$`)

func NewUTR(s string) (UTR, error) {
	s = strings.TrimSpace(s)
	if !utrRegex.MatchString(s) {
		return UTR{}, ErrInvalidUTR
	}
	return UTR{value: s}, nil
}

func (u UTR) String() string {
	return u.value
}
