package supportbank

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
)

// This file contains the wire codecs: generic decoders turning byte
// streams into raw records for the format adapters, and the CSV encoder
// for the canonical tabular schema. The tabular schema is the only one the
// bank writes; saving then reloading the output yields the same
// transactions.

// tabularHeader is the canonical column order of the tabular format.
var tabularHeader = []string{"Date", "From", "To", "Narrative", "Amount"}

// decodeTabular reads a header-prefixed CSV stream into one map per row,
// keyed by the header cells.
func decodeTabular(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil // an empty file holds zero transactions
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read csv header: %w", err)
	}

	var rows []map[string]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read csv row: %w", err)
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			row[name] = record[i]
		}
		rows = append(rows, row)
	}
}

// decodeStructured reads a JSON array of transaction objects. Numbers are
// kept as their source digits (json.Number), not binary floats.
func decodeStructured(r io.Reader) ([]map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var objs []map[string]any
	if err := dec.Decode(&objs); err != nil {
		return nil, fmt.Errorf("cannot parse transactions json: %w", err)
	}
	return objs, nil
}

// markupTransaction mirrors one SupportTransaction element of the XML
// format: a day-count date attribute, a description, a value, and the two
// parties in a substructure.
type markupTransaction struct {
	Date        string `xml:"Date,attr"`
	Description string `xml:"Description"`
	Value       string `xml:"Value"`
	Parties     struct {
		From string `xml:"From"`
		To   string `xml:"To"`
	} `xml:"Parties"`
}

// markupTransactionList is the root element of the XML format.
type markupTransactionList struct {
	XMLName      xml.Name            `xml:"TransactionList"`
	Transactions []markupTransaction `xml:"SupportTransaction"`
}

// decodeMarkup reads the XML transaction list.
func decodeMarkup(r io.Reader) ([]markupTransaction, error) {
	var list markupTransactionList
	if err := xml.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("cannot parse transactions xml: %w", err)
	}
	return list.Transactions, nil
}

// EncodeCSV writes transactions to w in the canonical tabular schema:
// header Date,From,To,Narrative,Amount, dates as DD/MM/YYYY, amounts as
// plain decimal text.
func EncodeCSV(w io.Writer, txs []*Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tabularHeader); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	for _, tx := range txs {
		record := []string{
			tx.Date().Format(LayoutCSV),
			tx.From(),
			tx.To(),
			tx.Narrative(),
			tx.Amount().DecimalString(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
