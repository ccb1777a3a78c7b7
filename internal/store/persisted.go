package store

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/sbudget/internal/logging"
	"github.com/theirongolddev/sbudget/internal/model"
)

// Persisted keys.
const (
	KeyIncome   = "sb_income"
	KeyExpenses = "sb_exp"
	KeyFIRE     = "sb_fire"
)

// Backend is the key/value layer Persisted reads and writes.
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	SetMany(pairs map[string]string) error
}

// Persisted loads and saves the budget and FIRE blobs.
// Loading never fails: anything unreadable falls back to its default.
type Persisted struct {
	kv  Backend
	log logrus.FieldLogger

	// fireExtra keeps persisted FIRE keys this version doesn't know about,
	// so saving doesn't drop them.
	fireExtra map[string]json.RawMessage
}

// NewPersisted wraps kv. A nil logger discards output.
func NewPersisted(kv Backend, log logrus.FieldLogger) *Persisted {
	if log == nil {
		log = logging.Discard()
	}
	return &Persisted{kv: kv, log: log}
}

// storedExpense is the on-disk expense record.
type storedExpense struct {
	Amount float64 `json:"amount"`
	Cat    string  `json:"cat"`
	T      *int64  `json:"t,omitempty"` // epoch millis; absent when unknown
}

// looseExpense accepts whatever an older or hand-edited blob may contain.
type looseExpense struct {
	Amount json.RawMessage `json:"amount"`
	Cat    json.RawMessage `json:"cat"`
	T      json.RawMessage `json:"t"`
}

// Load reads the budget state.
func (p *Persisted) Load() model.BudgetState {
	return model.BudgetState{
		Income:   p.loadIncome(),
		Expenses: p.loadExpenses(),
	}
}

func (p *Persisted) loadIncome() float64 {
	raw, ok := p.get(KeyIncome)
	if !ok {
		return 0
	}
	v, ok := parseNumber(raw)
	if !ok || v < 0 {
		p.log.WithFields(logrus.Fields{
			logging.FieldKey:   KeyIncome,
			logging.FieldValue: raw,
		}).Debug("ignoring unreadable income")
		return 0
	}
	return v
}

func (p *Persisted) loadExpenses() []model.ExpenseRecord {
	raw, ok := p.get(KeyExpenses)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}

	var loose []looseExpense
	if err := json.Unmarshal([]byte(raw), &loose); err != nil {
		p.log.WithError(err).WithField(logging.FieldKey, KeyExpenses).Debug("ignoring unreadable expense list")
		return nil
	}

	out := make([]model.ExpenseRecord, 0, len(loose))
	for i, le := range loose {
		amount, ok := parseRawNumber(le.Amount)
		if !ok {
			p.log.WithFields(logrus.Fields{
				logging.FieldIndex:  i,
				logging.FieldReason: "unreadable amount",
			}).Debug("expense amount counted as zero")
		}
		rec := model.ExpenseRecord{
			Amount:   amount,
			Category: parseRawString(le.Cat),
		}
		// A present t of 0 is the epoch, not a missing timestamp.
		if ms, ok := parseRawNumber(le.T); ok {
			rec.Timestamp = time.UnixMilli(int64(ms))
		}
		out = append(out, rec)
	}
	return out
}

// Save writes income and expenses in one transaction.
func (p *Persisted) Save(state model.BudgetState) error {
	stored := make([]storedExpense, 0, len(state.Expenses))
	for _, e := range state.Expenses {
		se := storedExpense{Amount: finiteOrZero(e.Amount), Cat: e.Category}
		if !e.Timestamp.IsZero() {
			ms := e.Timestamp.UnixMilli()
			se.T = &ms
		}
		stored = append(stored, se)
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encoding expenses: %w", err)
	}

	err = p.kv.SetMany(map[string]string{
		KeyIncome:   strconv.FormatFloat(finiteOrZero(state.Income), 'f', -1, 64),
		KeyExpenses: string(data),
	})
	if err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}

	p.log.WithField(logging.FieldCount, len(stored)).Debug("budget saved")
	return nil
}

// LoadFIRE reads the FIRE parameters, taking each field from storage when
// it is present and readable and from the defaults otherwise.
func (p *Persisted) LoadFIRE() model.FIREParameters {
	params := model.DefaultFIREParameters()
	p.fireExtra = nil

	raw, ok := p.get(KeyFIRE)
	if !ok || strings.TrimSpace(raw) == "" {
		return params
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		p.log.WithError(err).WithField(logging.FieldKey, KeyFIRE).Debug("ignoring unreadable FIRE parameters")
		return params
	}

	known := make(map[string]bool, len(model.ParamSpecs))
	for _, spec := range model.ParamSpecs {
		key := string(spec.Key)
		known[key] = true
		rawVal, present := fields[key]
		if !present {
			continue
		}
		v, ok := parseRawNumber(rawVal)
		if !ok {
			p.log.WithField(logging.FieldParam, key).Debug("FIRE parameter unreadable, using default")
			continue
		}
		params.Set(spec.Key, v)
	}

	for k, v := range fields {
		if known[k] {
			continue
		}
		if p.fireExtra == nil {
			p.fireExtra = make(map[string]json.RawMessage)
		}
		p.fireExtra[k] = v
	}

	return params
}

// SaveFIRE writes the FIRE parameters along with any unknown keys that
// were present when they were loaded.
func (p *Persisted) SaveFIRE(params model.FIREParameters) error {
	out := make(map[string]any, len(p.fireExtra)+len(model.ParamSpecs))
	for k, v := range p.fireExtra {
		out[k] = v
	}
	for _, spec := range model.ParamSpecs {
		v, _ := params.Get(spec.Key)
		out[string(spec.Key)] = finiteOrZero(v)
	}

	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encoding FIRE parameters: %w", err)
	}
	if err := p.kv.Set(KeyFIRE, string(data)); err != nil {
		return fmt.Errorf("saving FIRE parameters: %w", err)
	}
	return nil
}

func (p *Persisted) get(key string) (string, bool) {
	v, ok, err := p.kv.Get(key)
	if err != nil {
		p.log.WithError(err).WithField(logging.FieldKey, key).Warn("reading stored value")
		return "", false
	}
	return v, ok
}

// parseNumber reads text the way a numeric form field would: surrounding
// whitespace is ignored and non-finite values are rejected.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseRawNumber accepts a JSON number or a numeric JSON string.
func parseRawNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseNumber(s)
	}
	return 0, false
}

func parseRawString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
