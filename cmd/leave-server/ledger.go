package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownEmployee is returned for IDs missing from the ledger.
var ErrUnknownEmployee = errors.New("employee not found")

type employeeRecord struct {
	Balance int
	History []string
}

// ledger is an in-memory leave book keyed by employee ID.
type ledger struct {
	mu        sync.Mutex
	employees map[string]*employeeRecord
}

func newLedger() *ledger {
	return &ledger{employees: map[string]*employeeRecord{
		"E001": {Balance: 18, History: []string{"2024-12-25", "2025-01-01"}},
		"E002": {Balance: 20, History: []string{}},
	}}
}

func (l *ledger) record(employeeID string) (*employeeRecord, error) {
	rec, ok := l.employees[strings.TrimSpace(employeeID)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEmployee, employeeID)
	}
	return rec, nil
}

// Balance returns the remaining leave days.
func (l *ledger) Balance(employeeID string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, err := l.record(employeeID)
	if err != nil {
		return 0, err
	}
	return rec.Balance, nil
}

// Apply books one day of leave per date. Nothing is booked when the request
// exceeds the balance.
func (l *ledger) Apply(employeeID string, dates []string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, err := l.record(employeeID)
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return rec.Balance, errors.New("at least one leave date is required")
	}
	if len(dates) > rec.Balance {
		return rec.Balance, fmt.Errorf("insufficient leave balance: requested %d day(s), %d available", len(dates), rec.Balance)
	}
	for _, d := range dates {
		rec.History = append(rec.History, strings.TrimSpace(d))
	}
	sort.Strings(rec.History)
	rec.Balance -= len(dates)
	return rec.Balance, nil
}

// History returns a copy of the booked leave dates in ascending order.
func (l *ledger) History(employeeID string) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, err := l.record(employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(rec.History))
	copy(out, rec.History)
	return out, nil
}
