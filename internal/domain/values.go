package domain

import (
	"fmt"
	"time"
)

const DefaultCurrency = "IDR"

// Day truncates t to its UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)).Hours() / 24)
}

// DateRange is an immutable [CheckIn, CheckOut) stay window at day granularity.
type DateRange struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	in, out := Day(checkIn), Day(checkOut)
	if !out.After(in) {
		return DateRange{}, fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	}
	if in.Before(Day(time.Now())) {
		return DateRange{}, fmt.Errorf("%w: check-in date cannot be in the past", ErrValidation)
	}
	return DateRange{CheckIn: in, CheckOut: out}, nil
}

func (r DateRange) Nights() int {
	return daysBetween(r.CheckIn, r.CheckOut)
}

// Money carries an amount in minor units of its currency.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("%w: amount cannot be negative", ErrValidation)
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{Amount: amount, Currency: currency}, nil
}

type GuestCount struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

func NewGuestCount(adults, children int) (GuestCount, error) {
	if adults < 1 || adults > 10 {
		return GuestCount{}, fmt.Errorf("%w: adults must be between 1 and 10", ErrValidation)
	}
	if children < 0 || children > 10 {
		return GuestCount{}, fmt.Errorf("%w: children must be between 0 and 10", ErrValidation)
	}
	return GuestCount{Adults: adults, Children: children}, nil
}

func (g GuestCount) Total() int {
	return g.Adults + g.Children
}

// CancellationPolicy defines the refund a guest receives when cancelling
// at least DeadlineHours before check-in.
type CancellationPolicy struct {
	PolicyName       string `json:"policy_name"`
	RefundPercentage int64  `json:"refund_percentage"`
	DeadlineHours    int    `json:"deadline_hours"`
}

func NewCancellationPolicy(name string, refundPercentage int64, deadlineHours int) (CancellationPolicy, error) {
	if refundPercentage < 0 || refundPercentage > 100 {
		return CancellationPolicy{}, fmt.Errorf("%w: refund percentage must be between 0 and 100", ErrValidation)
	}
	if deadlineHours < 0 {
		return CancellationPolicy{}, fmt.Errorf("%w: deadline hours cannot be negative", ErrValidation)
	}
	return CancellationPolicy{
		PolicyName:       name,
		RefundPercentage: refundPercentage,
		DeadlineHours:    deadlineHours,
	}, nil
}

// Refund returns the refundable amount for a cancellation on cancellationDate.
// Hours to check-in are counted in whole days, matching the day granularity
// of DateRange.
func (p CancellationPolicy) Refund(total Money, cancellationDate, checkIn time.Time) Money {
	hoursUntilCheckIn := daysBetween(cancellationDate, checkIn) * 24

	var amount int64
	if hoursUntilCheckIn >= p.DeadlineHours {
		amount = total.Amount * p.RefundPercentage / 100
	}

	return Money{Amount: amount, Currency: total.Currency}
}
