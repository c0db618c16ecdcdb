package renderer

import (
	"strings"
	"testing"

	"github.com/supportbank/supportbank"
)

func mustMoney(t *testing.T, s string) supportbank.Money {
	t.Helper()
	m, err := supportbank.ParseMoney(s)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestBalance(t *testing.T) {
	testCases := []struct {
		amount string
		want   string
	}{
		{amount: "4.50", want: "£4.50"},
		{amount: "-4.50", want: "(£4.50)"},
		{amount: "0", want: "£0.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.amount, func(t *testing.T) {
			if got := Balance(mustMoney(t, tc.amount)); got != tc.want {
				t.Errorf("Balance(%s) = %q, want %q", tc.amount, got, tc.want)
			}
		})
	}
}

func TestSummaryMarkdown(t *testing.T) {
	rows := []supportbank.SummaryRow{
		{Name: "Alice A", Balance: mustMoney(t, "-4.50")},
		{Name: "Bob B", Balance: mustMoney(t, "4.50")},
	}

	out := SummaryMarkdown(rows)

	for _, want := range []string{"Accounts Summary", "Alice A", "(£4.50)", "Bob B", "£4.50"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary is missing %q:\n%s", want, out)
		}
	}
	// Alice sorts before Bob and must render first
	if strings.Index(out, "Alice A") > strings.Index(out, "Bob B") {
		t.Errorf("summary rows out of order:\n%s", out)
	}
}

func TestSummaryMarkdownEmpty(t *testing.T) {
	out := SummaryMarkdown(nil)
	if !strings.Contains(out, "No accounts") {
		t.Errorf("empty summary should say so:\n%s", out)
	}
}

func TestStatementMarkdown(t *testing.T) {
	bank := supportbank.NewBank()
	if err := bank.Load(strings.NewReader(
		"Date,From,To,Narrative,Amount\n"+
			"01/03/2022,Alice A,Bob B,Lunch,12.50\n"+
			"02/03/2022,Bob B,Alice A,Taxi,8.00\n"), supportbank.CSV); err != nil {
		t.Fatal(err)
	}
	alice, err := bank.Account("Alice A")
	if err != nil {
		t.Fatal(err)
	}

	out := StatementMarkdown(alice)

	for _, want := range []string{
		"Account Alice A",
		"Balance: (£4.50)",
		"2022-03-01",
		"Lunch",
		"£12.50 out",
		"Taxi",
		"£8.00 in",
		"Bob B",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("statement is missing %q:\n%s", want, out)
		}
	}
}
