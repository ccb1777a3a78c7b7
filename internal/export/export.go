// Package export writes budget data out as CSV or JSON.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/sbudget/internal/model"
	"github.com/theirongolddev/sbudget/internal/pipeline"
)

// Supported formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Row is one expense as exported. Index is 1-based in entry order, matching
// the numbers shown by `sbudget list`.
type Row struct {
	Index    int    `csv:"index" json:"index"`
	Time     string `csv:"time" json:"time"`
	Category string `csv:"category" json:"category"`
	Amount   string `csv:"amount" json:"amount"`
}

// Document is the JSON export: raw state plus everything derived from it.
type Document struct {
	Income          string               `json:"income"`
	TotalExpenses   string               `json:"totalExpenses"`
	Savings         string               `json:"savings"`
	Score           int                  `json:"score"`
	ScoreMessage    string               `json:"scoreMessage"`
	Recommendations []string             `json:"recommendations"`
	Expenses        []Row                `json:"expenses"`
	FIRE            fireDoc              `json:"fire"`
	Projection      model.FIREProjection `json:"projection"`
}

type fireDoc struct {
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	CurrentAge      float64 `json:"currentAge"`
	RetirementAge   float64 `json:"retirementAge"`
	LifeExpectancy  float64 `json:"lifeExpectancy"`
	Inflation       float64 `json:"inflation"`
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Rows converts expenses to export rows in entry order.
func Rows(expenses []model.ExpenseRecord) []Row {
	rows := make([]Row, 0, len(expenses))
	for i, e := range expenses {
		ts := ""
		if !e.Timestamp.IsZero() {
			ts = e.Timestamp.UTC().Format(time.RFC3339)
		}
		rows = append(rows, Row{
			Index:    i + 1,
			Time:     ts,
			Category: model.NormalizeCategory(e.Category),
			Amount:   money(e.Amount),
		})
	}
	return rows
}

// WriteCSV writes one row per expense with a header line.
func WriteCSV(w io.Writer, state model.BudgetState) error {
	rows := Rows(state.Expenses)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// NewDocument assembles the JSON export document.
func NewDocument(state model.BudgetState, fire model.FIREParameters) Document {
	s := pipeline.Summarize(state)
	return Document{
		Income:          money(s.Income),
		TotalExpenses:   money(s.TotalExpenses),
		Savings:         money(s.Savings),
		Score:           s.Score,
		ScoreMessage:    s.ScoreMessage,
		Recommendations: s.Recommendations,
		Expenses:        Rows(state.Expenses),
		FIRE: fireDoc{
			MonthlyExpenses: fire.MonthlyExpenses,
			CurrentAge:      fire.CurrentAge,
			RetirementAge:   fire.RetirementAge,
			LifeExpectancy:  fire.LifeExpectancy,
			Inflation:       fire.Inflation,
		},
		Projection: pipeline.Project(fire),
	}
}

// WriteJSON writes the indented JSON export document.
func WriteJSON(w io.Writer, state model.BudgetState, fire model.FIREParameters) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(state, fire)); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}

// Write dispatches on format.
func Write(w io.Writer, format string, state model.BudgetState, fire model.FIREParameters) error {
	switch format {
	case FormatCSV, "":
		return WriteCSV(w, state)
	case FormatJSON:
		return WriteJSON(w, state, fire)
	}
	return fmt.Errorf("unknown export format %q (want csv or json)", format)
}
