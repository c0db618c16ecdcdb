package supportbank

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	testCases := []struct {
		path string
		want Format
	}{
		{path: "Transactions2014.csv", want: CSV},
		{path: "Transactions2013.json", want: JSON},
		{path: "Transactions2012.xml", want: XML},
		{path: "dir/mixed.Case.JSON", want: JSON},
		{path: "notes.txt", want: CSV},
		{path: "noextension", want: CSV},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			if got := FormatFromPath(tc.path); got != tc.want {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestDecodeCSVFormat(t *testing.T) {
	in := "Date,From,To,Narrative,Amount\n" +
		"01/03/2022,Alice A,Bob B,Lunch,12.50\n" +
		"02/03/2022,Bob B,Alice A,Taxi,8.00\n"

	txs, err := CSV.Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("Decode returned %d transactions, want 2", len(txs))
	}

	first := txs[0]
	if first.Date().String() != "2022-03-01" {
		t.Errorf("date = %s, want 2022-03-01", first.Date())
	}
	if first.From() != "Alice A" || first.To() != "Bob B" {
		t.Errorf("endpoints = %q -> %q", first.From(), first.To())
	}
	if first.Narrative() != "Lunch" {
		t.Errorf("narrative = %q", first.Narrative())
	}
	if !first.Amount().Equal(mustMoney("12.50")) {
		t.Errorf("amount = %s, want 12.50", first.Amount().DecimalString())
	}
	if first.Index() != 0 || txs[1].Index() != 1 {
		t.Errorf("indices = %d, %d, want 0, 1", first.Index(), txs[1].Index())
	}
}

func TestDecodeCSVFormatBadRow(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want error
	}{
		{
			name: "bad amount",
			in:   "Date,From,To,Narrative,Amount\n01/03/2022,Alice A,Bob B,Lunch,twelve\n",
			want: ErrInvalidAmount,
		},
		{
			name: "bad date",
			in:   "Date,From,To,Narrative,Amount\n41/03/2022,Alice A,Bob B,Lunch,12.50\n",
			want: ErrInvalidDate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CSV.Decode(strings.NewReader(tc.in))
			if !errors.Is(err, tc.want) {
				t.Fatalf("Decode error = %v, want %v", err, tc.want)
			}
			var txErr *TransactionError
			if !errors.As(err, &txErr) {
				t.Fatalf("Decode error = %v, want a *TransactionError", err)
			}
			if txErr.Index != 0 || txErr.From != "Alice A" || txErr.To != "Bob B" {
				t.Errorf("error context = %d (%s -> %s)", txErr.Index, txErr.From, txErr.To)
			}
		})
	}
}

func TestDecodeJSONFormat(t *testing.T) {
	in := `[
	  {"Date": "2022-03-01T00:00:00", "FromAccount": "Alice A", "ToAccount": "Bob B", "Narrative": "Lunch", "Amount": 12.50},
	  {"Date": "2022-03-02T09:30:00", "FromAccount": "Bob B", "ToAccount": "Alice A", "Narrative": "Taxi", "Amount": "8.00"}
	]`

	txs, err := JSON.Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("Decode returned %d transactions, want 2", len(txs))
	}
	if txs[0].Date().String() != "2022-03-01" {
		t.Errorf("date = %s, want 2022-03-01", txs[0].Date())
	}
	if !txs[0].Amount().Equal(mustMoney("12.50")) {
		t.Errorf("numeric amount = %s, want 12.50", txs[0].Amount().DecimalString())
	}
	if !txs[1].Amount().Equal(mustMoney("8.00")) {
		t.Errorf("string amount = %s, want 8.00", txs[1].Amount().DecimalString())
	}
	if txs[1].From() != "Bob B" || txs[1].To() != "Alice A" {
		t.Errorf("endpoints = %q -> %q", txs[1].From(), txs[1].To())
	}
}

func TestDecodeJSONFormatMissingField(t *testing.T) {
	in := `[{"Date": "2022-03-01T00:00:00", "FromAccount": "Alice A", "ToAccount": "Bob B", "Narrative": "Lunch"}]`

	_, err := JSON.Decode(strings.NewReader(in))
	var txErr *TransactionError
	if !errors.As(err, &txErr) {
		t.Fatalf("Decode error = %v, want a *TransactionError", err)
	}
	if !strings.Contains(txErr.Err.Error(), "Amount") {
		t.Errorf("cause = %v, want it to name the missing field", txErr.Err)
	}
}

func TestDecodeJSONFormatBadDate(t *testing.T) {
	in := `[{"Date": "01/03/2022", "FromAccount": "Alice A", "ToAccount": "Bob B", "Amount": 1}]`

	_, err := JSON.Decode(strings.NewReader(in))
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("Decode error = %v, want ErrInvalidDate", err)
	}
}

const sampleXML = `<TransactionList>
  <SupportTransaction Date="44621">
    <Description>Lunch</Description>
    <Value>12.50</Value>
    <Parties>
      <From>Alice A</From>
      <To>Bob B</To>
    </Parties>
  </SupportTransaction>
  <SupportTransaction Date="44622">
    <Description>Taxi</Description>
    <Value>8.00</Value>
    <Parties>
      <From>Bob B</From>
      <To>Alice A</To>
    </Parties>
  </SupportTransaction>
</TransactionList>`

func TestDecodeXMLFormat(t *testing.T) {
	txs, err := XML.Decode(strings.NewReader(sampleXML))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("Decode returned %d transactions, want 2", len(txs))
	}
	if txs[0].Date().String() != "2022-03-01" {
		t.Errorf("serial date = %s, want 2022-03-01", txs[0].Date())
	}
	if txs[0].From() != "Alice A" || txs[0].To() != "Bob B" {
		t.Errorf("endpoints = %q -> %q", txs[0].From(), txs[0].To())
	}
	if txs[0].Narrative() != "Lunch" {
		t.Errorf("narrative = %q", txs[0].Narrative())
	}
	if !txs[1].Amount().Equal(mustMoney("8.00")) {
		t.Errorf("amount = %s, want 8.00", txs[1].Amount().DecimalString())
	}
}

func TestDecodeXMLFormatBadDateAttribute(t *testing.T) {
	in := `<TransactionList>
  <SupportTransaction Date="not-a-number">
    <Description>Lunch</Description>
    <Value>12.50</Value>
    <Parties><From>Alice A</From><To>Bob B</To></Parties>
  </SupportTransaction>
</TransactionList>`

	_, err := XML.Decode(strings.NewReader(in))
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("Decode error = %v, want ErrInvalidDate", err)
	}
	var txErr *TransactionError
	if !errors.As(err, &txErr) {
		t.Fatalf("Decode error = %v, want a *TransactionError", err)
	}
	if txErr.From != "Alice A" || txErr.To != "Bob B" {
		t.Errorf("error context = %s -> %s", txErr.From, txErr.To)
	}
}
