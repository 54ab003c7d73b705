package domain

// PaymentEntry is one row of an amortization schedule.
type PaymentEntry struct {
	PaymentNumber int     `json:"payment_number"`
	Payment       float64 `json:"payment"`
	Principal     float64 `json:"principal"`
	Interest      float64 `json:"interest"`
	Balance       float64 `json:"balance"`
}

// Schedule is a materialized amortization schedule, ordered by payment
// number starting at 1.
type Schedule []PaymentEntry

// TotalInterest sums the interest column.
func (s Schedule) TotalInterest() float64 {
	var total float64
	for _, p := range s {
		total += p.Interest
	}
	return total
}

// TotalPrincipal sums the principal column.
func (s Schedule) TotalPrincipal() float64 {
	var total float64
	for _, p := range s {
		total += p.Principal
	}
	return total
}

// PrincipalPaidThrough returns the principal repaid within the first
// months periods.
func (s Schedule) PrincipalPaidThrough(months int) float64 {
	if months > len(s) {
		months = len(s)
	}
	var total float64
	for _, p := range s[:months] {
		total += p.Principal
	}
	return total
}

// BalanceAt returns the remaining balance after the given number of
// months. Month 0 is the balance before the first payment; months past
// the end of the schedule return 0.
func (s Schedule) BalanceAt(month int) float64 {
	if len(s) == 0 || month >= len(s) {
		return 0
	}
	if month <= 0 {
		return s[0].Balance + s[0].Principal
	}
	return s[month-1].Balance
}

// PaymentAt returns the scheduled payment due in the given month, or 0
// once the loan has retired.
func (s Schedule) PaymentAt(month int) float64 {
	if month < 1 || month > len(s) {
		return 0
	}
	return s[month-1].Payment
}

// Limit returns the first n entries, or the whole schedule when n <= 0
// or n exceeds its length.
func (s Schedule) Limit(n int) Schedule {
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[:n]
}
