package main

import (
	"errors"
	"reflect"
	"testing"
)

func TestLedgerBalance(t *testing.T) {
	book := newLedger()
	balance, err := book.Balance("E001")
	if err != nil || balance != 18 {
		t.Fatalf("Balance(E001) = %d, %v", balance, err)
	}
	if _, err := book.Balance("E999"); !errors.Is(err, ErrUnknownEmployee) {
		t.Fatalf("expected ErrUnknownEmployee, got %v", err)
	}
}

func TestLedgerApply(t *testing.T) {
	book := newLedger()
	remaining, err := book.Apply("E002", []string{"2025-03-02", "2025-03-01"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if remaining != 18 {
		t.Fatalf("expected 18 remaining, got %d", remaining)
	}
	history, err := book.History("E002")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if !reflect.DeepEqual(history, []string{"2025-03-01", "2025-03-02"}) {
		t.Fatalf("unexpected history: %v", history)
	}
}

func TestLedgerApplyRejected(t *testing.T) {
	book := newLedger()
	if _, err := book.Apply("E001", nil); err == nil {
		t.Fatal("expected error for empty dates")
	}

	dates := make([]string, 19)
	for i := range dates {
		dates[i] = "2025-04-01"
	}
	if _, err := book.Apply("E001", dates); err == nil {
		t.Fatal("expected insufficient balance error")
	}
	if balance, _ := book.Balance("E001"); balance != 18 {
		t.Fatalf("rejected request changed balance to %d", balance)
	}
}

func TestLedgerHistoryIsCopy(t *testing.T) {
	book := newLedger()
	history, _ := book.History("E001")
	history[0] = "mutated"
	again, _ := book.History("E001")
	if again[0] == "mutated" {
		t.Fatal("History returned internal slice")
	}
}
