package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/sbudget/internal/model"
	"github.com/theirongolddev/sbudget/internal/pipeline"
)

func sampleState() model.BudgetState {
	return model.BudgetState{
		Income: 50000,
		Expenses: []model.ExpenseRecord{
			{Amount: 20000, Category: "Rent", Timestamp: time.UnixMilli(1_700_000_000_000)},
			{Amount: 99.5, Category: " "},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleState()))

	want := "index,time,category,amount\n" +
		"1,2023-11-14T22:13:20Z,Rent,20000.00\n" +
		"2,,Miscellaneous,99.50\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleState(), model.DefaultFIREParameters()))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "50000.00", doc.Income)
	assert.Equal(t, "20099.50", doc.TotalExpenses)
	assert.Equal(t, "29900.50", doc.Savings)
	assert.Equal(t, pipeline.HealthScore(50000, 20099.5, sampleState().Expenses), doc.Score)
	assert.Len(t, doc.Expenses, 2)
	assert.Equal(t, 16000.0, doc.FIRE.MonthlyExpenses)
	assert.Equal(t, 14.0, doc.Projection.YearsToRetire)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "xml", sampleState(), model.DefaultFIREParameters())
	assert.ErrorContains(t, err, "unknown export format")
}

func TestWriteJSON_ProjectionKeysAreCamelCase(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleState(), model.DefaultFIREParameters()))

	var raw struct {
		Projection map[string]any `json:"projection"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	for _, key := range []string{"yearsToRetire", "annualExpenses", "futureExpenses", "leanFireNumber", "fatFireNumber", "fireNumber"} {
		assert.Contains(t, raw.Projection, key)
	}
	assert.NotContains(t, raw.Projection, "YearsToRetire")
}
