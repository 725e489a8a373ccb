package reward

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Reward is either a plain display string ("500 XP") or a structured
// amount+currency, optionally with a first-come-first-served pool.
type Reward struct {
	Text     string   `json:"-"`
	Amount   float64  `json:"amount,omitempty"`
	Currency string   `json:"currency,omitempty"`
	Pool     *float64 `json:"pool,omitempty"`
}

type structured struct {
	Amount   float64  `json:"amount"`
	Currency string   `json:"currency"`
	Pool     *float64 `json:"pool,omitempty"`
}

func Text(s string) *Reward {
	return &Reward{Text: s}
}

func Amount(amount float64, currency string) *Reward {
	return &Reward{Amount: amount, Currency: currency}
}

func Pooled(amount float64, currency string, pool float64) *Reward {
	return &Reward{Amount: amount, Currency: currency, Pool: &pool}
}

// IsZero reports a reward with nothing to show, such as a blank string on
// the wire.
func (r *Reward) IsZero() bool {
	return r == nil || (r.Text == "" && r.Currency == "" && r.Amount == 0 && r.Pool == nil)
}

func (r *Reward) IsText() bool {
	return r != nil && r.Currency == "" && r.Text != ""
}

// String renders the reward the way cards display it.
func (r *Reward) String() string {
	if r.IsZero() {
		return ""
	}
	if r.IsText() {
		return r.Text
	}
	return strings.TrimSpace(formatAmount(r.Amount) + " " + r.Currency)
}

// PoolLabel is empty unless the reward is structured and has a non-zero pool.
func (r *Reward) PoolLabel() string {
	if r == nil || r.IsText() || r.Pool == nil || *r.Pool == 0 {
		return ""
	}
	return fmt.Sprintf("%s %s (FCFS)", formatAmount(*r.Pool), r.Currency)
}

func (r *Reward) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode reward text: %w", err)
		}
		*r = Reward{Text: strings.TrimSpace(s)}
		return nil
	}
	var v structured
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode reward: %w", err)
	}
	*r = Reward{Amount: v.Amount, Currency: v.Currency, Pool: v.Pool}
	return nil
}

func (r Reward) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	if r.IsText() {
		return json.Marshal(r.Text)
	}
	return json.Marshal(structured{Amount: r.Amount, Currency: r.Currency, Pool: r.Pool})
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
