package domain

import "testing"

func sampleSchedule() Schedule {
	// three-period loan of 300 at zero interest
	return Schedule{
		{PaymentNumber: 1, Payment: 100, Principal: 100, Interest: 0, Balance: 200},
		{PaymentNumber: 2, Payment: 100, Principal: 100, Interest: 0, Balance: 100},
		{PaymentNumber: 3, Payment: 100, Principal: 100, Interest: 0, Balance: 0},
	}
}

func TestScheduleBalanceAt(t *testing.T) {
	s := sampleSchedule()
	cases := []struct {
		month int
		want  float64
	}{
		{0, 300},
		{1, 200},
		{2, 100},
		{3, 0},
		{4, 0},
		{999, 0},
	}
	for _, tc := range cases {
		if got := s.BalanceAt(tc.month); got != tc.want {
			t.Errorf("BalanceAt(%d) = %v, want %v", tc.month, got, tc.want)
		}
	}
	if got := Schedule(nil).BalanceAt(0); got != 0 {
		t.Errorf("empty schedule BalanceAt(0) = %v, want 0", got)
	}
}

func TestSchedulePaymentAt(t *testing.T) {
	s := sampleSchedule()
	if got := s.PaymentAt(2); got != 100 {
		t.Errorf("PaymentAt(2) = %v, want 100", got)
	}
	if got := s.PaymentAt(4); got != 0 {
		t.Errorf("PaymentAt(4) = %v, want 0 after retirement", got)
	}
	if got := s.PaymentAt(0); got != 0 {
		t.Errorf("PaymentAt(0) = %v, want 0", got)
	}
}

func TestScheduleLimit(t *testing.T) {
	s := sampleSchedule()
	if got := len(s.Limit(2)); got != 2 {
		t.Errorf("Limit(2) length = %d, want 2", got)
	}
	if got := len(s.Limit(0)); got != 3 {
		t.Errorf("Limit(0) should return the whole schedule, got %d rows", got)
	}
	if got := len(s.Limit(10)); got != 3 {
		t.Errorf("Limit(10) should return the whole schedule, got %d rows", got)
	}
}

func TestSchedulePrincipalPaidThrough(t *testing.T) {
	s := sampleSchedule()
	if got := s.PrincipalPaidThrough(2); got != 200 {
		t.Errorf("PrincipalPaidThrough(2) = %v, want 200", got)
	}
	if got := s.PrincipalPaidThrough(99); got != 300 {
		t.Errorf("PrincipalPaidThrough past the end = %v, want 300", got)
	}
}
