package supportbank

import (
	"errors"
	"strings"
	"testing"
)

const sampleCSV = "Date,From,To,Narrative,Amount\n" +
	"01/03/2022,Alice A,Bob B,Lunch,12.50\n" +
	"02/03/2022,Bob B,Alice A,Taxi,8.00\n"

func TestBankLoadEndToEnd(t *testing.T) {
	b := NewBank()
	if err := b.Load(strings.NewReader(sampleCSV), CSV); err != nil {
		t.Fatalf("Load: %v", err)
	}

	alice, err := b.Account("Alice A")
	if err != nil {
		t.Fatal(err)
	}
	if !alice.Balance().Equal(mustMoney("-4.50")) {
		t.Errorf("Alice A balance = %s, want -4.50", alice.Balance().DecimalString())
	}

	bob, err := b.Account("Bob B")
	if err != nil {
		t.Fatal(err)
	}
	if !bob.Balance().Equal(mustMoney("4.50")) {
		t.Errorf("Bob B balance = %s, want 4.50", bob.Balance().DecimalString())
	}

	for _, a := range []*Account{alice, bob} {
		rows := a.Statement()
		if len(rows) != 2 {
			t.Fatalf("%s statement has %d rows, want 2", a.Name(), len(rows))
		}
		if !rows[0].Date.Before(rows[1].Date) {
			t.Errorf("%s statement is not in date order", a.Name())
		}
		checkBalanceInvariant(t, a)
	}

	if got := len(b.Transactions()); got != 2 {
		t.Errorf("transaction log has %d entries, want 2", got)
	}
}

func TestBankLoadAllOrNothing(t *testing.T) {
	b := NewBank()
	if err := b.Load(strings.NewReader(sampleCSV), CSV); err != nil {
		t.Fatal(err)
	}

	// third row has a non-numeric amount: nothing from this batch may apply
	bad := "Date,From,To,Narrative,Amount\n" +
		"03/03/2022,Alice A,Bob B,Coffee,3.00\n" +
		"04/03/2022,Dave D,Alice A,Rent,oops\n"

	err := b.Load(strings.NewReader(bad), CSV)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load error = %v, want a *LoadError", err)
	}
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Load error = %v, want it to wrap ErrInvalidAmount", err)
	}

	if got := len(b.Transactions()); got != 2 {
		t.Errorf("transaction log has %d entries after failed load, want 2", got)
	}
	if b.AccountExists("Dave D") {
		t.Errorf("failed load created an account")
	}
	alice, _ := b.Account("Alice A")
	if !alice.Balance().Equal(mustMoney("-4.50")) {
		t.Errorf("failed load moved Alice A's balance to %s", alice.Balance().DecimalString())
	}
	if got := len(b.Summary()); got != 2 {
		t.Errorf("summary has %d rows after failed load, want 2", got)
	}
}

func TestBankLoadMalformedXMLDate(t *testing.T) {
	in := `<TransactionList>
  <SupportTransaction Date="soon">
    <Description>Lunch</Description>
    <Value>12.50</Value>
    <Parties><From>Alice A</From><To>Bob B</To></Parties>
  </SupportTransaction>
</TransactionList>`

	b := NewBank()
	err := b.Load(strings.NewReader(in), XML)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load error = %v, want a *LoadError", err)
	}
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Load error = %v, want it to wrap ErrInvalidDate", err)
	}
	if len(b.Summary()) != 0 || len(b.Transactions()) != 0 {
		t.Errorf("failed load mutated the bank")
	}
}

func TestBankLoadUndecodableStream(t *testing.T) {
	b := NewBank()
	err := b.Load(strings.NewReader("{not json"), JSON)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load error = %v, want a *LoadError", err)
	}
}

func TestBankCaseInsensitiveAccounts(t *testing.T) {
	b := NewBank()
	created, err := b.CreateAccount("Alice A")
	if err != nil {
		t.Fatal(err)
	}

	got, err := b.Account("alice a")
	if err != nil {
		t.Fatalf("Account with folded case: %v", err)
	}
	if got != created {
		t.Errorf("case-folded lookup returned a different account")
	}
	if got.Name() != "Alice A" {
		t.Errorf("display name = %q, want the first-seen case %q", got.Name(), "Alice A")
	}

	if _, err := b.CreateAccount("ALICE A"); !errors.Is(err, ErrAccountExists) {
		t.Errorf("CreateAccount with folded case = %v, want ErrAccountExists", err)
	}
	if !b.AccountExists("aLiCe A") {
		t.Errorf("AccountExists is case sensitive")
	}
}

func TestBankAccountNotFound(t *testing.T) {
	b := NewBank()
	_, err := b.Account("Nobody")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("Account = %v, want ErrAccountNotFound", err)
	}
	var accErr *AccountError
	if !errors.As(err, &accErr) || accErr.Name != "Nobody" {
		t.Errorf("error does not carry the name: %v", err)
	}
}

func TestBankAddSelfTransfer(t *testing.T) {
	b := NewBank()
	tx := NewTransaction(mustDate("2022-03-01"), "Carol C", "Carol C", "note to self", mustMoney("5.00"))
	if err := b.Add(tx); err != nil {
		t.Fatalf("Add: %v", err)
	}

	carol, err := b.Account("Carol C")
	if err != nil {
		t.Fatal(err)
	}
	if !carol.Balance().IsZero() {
		t.Errorf("balance = %s, want 0", carol.Balance().DecimalString())
	}
	if got := len(carol.History()); got != 2 {
		t.Errorf("history has %d entries, want 2", got)
	}
	if got := len(b.Transactions()); got != 1 {
		t.Errorf("transaction log has %d entries, want 1", got)
	}
}

func TestBankAddUnnamedEndpoint(t *testing.T) {
	b := NewBank()
	tx := NewTransaction(mustDate("2022-03-01"), "", "Bob B", "mystery", mustMoney("1"))
	err := b.Add(tx)
	var txErr *TransactionError
	if !errors.As(err, &txErr) {
		t.Fatalf("Add = %v, want a *TransactionError", err)
	}
	if b.AccountExists("Bob B") {
		t.Errorf("rejected Add created an account")
	}
}

func TestBankSummary(t *testing.T) {
	b := NewBank()
	if err := b.Load(strings.NewReader(sampleCSV), CSV); err != nil {
		t.Fatal(err)
	}

	rows := b.Summary()
	if len(rows) != 2 {
		t.Fatalf("Summary has %d rows, want 2", len(rows))
	}
	if rows[0].Name != "Alice A" || rows[1].Name != "Bob B" {
		t.Errorf("Summary order = %q, %q, want name order", rows[0].Name, rows[1].Name)
	}
	if !rows[0].Balance.Equal(mustMoney("-4.50")) || !rows[1].Balance.Equal(mustMoney("4.50")) {
		t.Errorf("Summary balances = %s, %s", rows[0].Balance.DecimalString(), rows[1].Balance.DecimalString())
	}
}
