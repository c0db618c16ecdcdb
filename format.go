package supportbank

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Format identifies a supported transaction file format.
type Format int

const (
	// CSV is the legacy tabular format, the only one the bank writes back.
	CSV Format = iota
	// JSON is the structured-object format (array of transaction objects).
	JSON
	// XML is the markup format (TransactionList of SupportTransaction elements).
	XML
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case JSON:
		return "json"
	case XML:
		return "xml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// FormatFromPath infers the transaction format from the file extension.
// An unrecognized or missing extension falls back to CSV with a warning,
// matching the legacy files this tool most often sees.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV
	case ".json":
		return JSON
	case ".xml":
		return XML
	default:
		log.Printf("warning: %q has an unknown extension, defaulting to csv", path)
		return CSV
	}
}

// Decode reads the format's raw records from r and adapts each one into a
// Transaction, in file order. It stops at the first record that cannot be
// adapted and returns a [*TransactionError] locating it; decoding failures
// of the byte stream itself are returned as-is.
//
// Decode builds records only. It never touches account state; applying the
// batch is [Bank.Load]'s job.
func (f Format) Decode(r io.Reader) ([]*Transaction, error) {
	switch f {
	case CSV:
		rows, err := decodeTabular(r)
		if err != nil {
			return nil, err
		}
		txs := make([]*Transaction, 0, len(rows))
		for i, row := range rows {
			tx, err := adaptTabular(row, i)
			if err != nil {
				return nil, err
			}
			txs = append(txs, tx)
		}
		return txs, nil
	case JSON:
		objs, err := decodeStructured(r)
		if err != nil {
			return nil, err
		}
		txs := make([]*Transaction, 0, len(objs))
		for i, obj := range objs {
			tx, err := adaptStructured(obj, i)
			if err != nil {
				return nil, err
			}
			txs = append(txs, tx)
		}
		return txs, nil
	case XML:
		elements, err := decodeMarkup(r)
		if err != nil {
			return nil, err
		}
		txs := make([]*Transaction, 0, len(elements))
		for i, el := range elements {
			tx, err := adaptMarkup(el, i)
			if err != nil {
				return nil, err
			}
			txs = append(txs, tx)
		}
		return txs, nil
	default:
		return nil, fmt.Errorf("unsupported transaction format %v", f)
	}
}

// adaptTabular maps one CSV row, keyed by the canonical header
// (Date, From, To, Narrative, Amount), into a Transaction.
func adaptTabular(row map[string]string, index int) (*Transaction, error) {
	fail := func(err error) error {
		return &TransactionError{Index: index, From: row["From"], To: row["To"], Err: err}
	}

	for _, field := range []string{"Date", "From", "To", "Amount"} {
		if _, ok := row[field]; !ok {
			return nil, fail(fmt.Errorf("missing required field %q", field))
		}
	}
	date, err := ParseDate(row["Date"], LayoutCSV)
	if err != nil {
		return nil, fail(err)
	}
	amount, err := ParseMoney(row["Amount"])
	if err != nil {
		return nil, fail(err)
	}
	tx := NewTransaction(date, row["From"], row["To"], row["Narrative"], amount)
	tx.index = index
	return tx, nil
}

// adaptStructured maps one decoded JSON object, with fields Date,
// FromAccount, ToAccount, Narrative and Amount, into a Transaction.
// Fields are extracted with jsonpath so nested future shapes stay cheap to
// support.
func adaptStructured(obj map[string]any, index int) (*Transaction, error) {
	from, _ := stringAt(obj, "$.FromAccount")
	to, _ := stringAt(obj, "$.ToAccount")
	fail := func(err error) error {
		return &TransactionError{Index: index, From: from, To: to, Err: err}
	}

	dateText, err := stringAt(obj, "$.Date")
	if err != nil {
		return nil, fail(fmt.Errorf("missing required field %q", "Date"))
	}
	date, err := ParseDate(dateText, LayoutJSON)
	if err != nil {
		return nil, fail(err)
	}

	amount, err := moneyAt(obj, "$.Amount")
	if err != nil {
		return nil, fail(err)
	}

	// Narrative may be absent; an empty narrative is fine.
	narrative, _ := stringAt(obj, "$.Narrative")

	tx := NewTransaction(date, from, to, narrative, amount)
	tx.index = index
	return tx, nil
}

// adaptMarkup maps one SupportTransaction element into a Transaction. The
// date travels as a day-count attribute, the parties in a substructure.
func adaptMarkup(el markupTransaction, index int) (*Transaction, error) {
	fail := func(err error) error {
		return &TransactionError{Index: index, From: el.Parties.From, To: el.Parties.To, Err: err}
	}

	date, err := ParseSerialDate(el.Date)
	if err != nil {
		return nil, fail(err)
	}
	amount, err := ParseMoney(el.Value)
	if err != nil {
		return nil, fail(err)
	}
	tx := NewTransaction(date, el.Parties.From, el.Parties.To, el.Description, amount)
	tx.index = index
	return tx, nil
}

// stringAt extracts a string field from a decoded JSON object.
func stringAt(obj map[string]any, path string) (string, error) {
	v, err := jsonpath.Get(path, obj)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %s: expected a string, got %T", path, v)
	}
	return s, nil
}

// moneyAt extracts an amount from a decoded JSON object. The wire value may
// be a JSON number or a numeric string; numbers keep their source digits
// because the decoder runs with UseNumber.
func moneyAt(obj map[string]any, path string) (Money, error) {
	v, err := jsonpath.Get(path, obj)
	if err != nil {
		return Money{}, fmt.Errorf("missing required field %q", "Amount")
	}
	switch n := v.(type) {
	case json.Number:
		return ParseMoney(n.String())
	case string:
		return ParseMoney(n)
	case float64:
		// only reachable when the object was not decoded with UseNumber
		return MoneyFromFloat(n)
	default:
		return Money{}, fmt.Errorf("field %s: %w: got %T", path, ErrInvalidAmount, v)
	}
}
