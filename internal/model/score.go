package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Score is a non-negative heuristic score. Overrides carry ForcedScore.
type Score float64

// ForcedScore marks a category forced by an override.
var ForcedScore = Score(math.Inf(1))

const infLiteral = "inf"

// IsForced reports whether s is the override sentinel.
func (s Score) IsForced() bool {
	return math.IsInf(float64(s), 1)
}

// MarshalJSON writes finite scores as numbers and the override sentinel as "inf".
func (s Score) MarshalJSON() ([]byte, error) {
	if s.IsForced() {
		return []byte(strconv.Quote(infLiteral)), nil
	}
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("score %v is not representable", f)
	}
	return json.Marshal(f)
}

// UnmarshalJSON accepts numbers, "inf"/"infinity" strings, and null as the sentinel.
func (s *Score) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ForcedScore
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		switch text {
		case infLiteral, "+inf", "infinity", "Infinity", "+Infinity":
			*s = ForcedScore
			return nil
		}
		return fmt.Errorf("invalid score %q", text)
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid score: %w", err)
	}
	*s = Score(f)
	return nil
}

func (s Score) String() string {
	if s.IsForced() {
		return infLiteral
	}
	return strconv.FormatFloat(float64(s), 'f', -1, 64)
}
