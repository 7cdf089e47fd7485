package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Money is a decimal amount in bolivianos. The backend serialises decimals as
// JSON strings ("1499.90") while derived endpoints emit plain numbers, so the
// decoder accepts both.
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*m = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("money: %q: %w", s, err)
		}
		*m = Money(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Money(v)
	return nil
}

func (m Money) String() string {
	return fmt.Sprintf("Bs %.2f", float64(m))
}
