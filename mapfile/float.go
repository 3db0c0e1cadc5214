package mapfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Non-finite float tokens.
const (
	TokenNaN    = "NaN"
	TokenPosInf = "Infinity"
	TokenNegInf = "-Infinity"
)

// Float is a float64 whose JSON form spells non-finite values as strings.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"` + TokenNaN + `"`), nil
	case math.IsInf(v, 1):
		return []byte(`"` + TokenPosInf + `"`), nil
	case math.IsInf(v, -1):
		return []byte(`"` + TokenNegInf + `"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler. NaN decodes to math.NaN(),
// the bit pattern the distance field uses for unreachable cells.
func (f *Float) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var tok string
		if err := json.Unmarshal(data, &tok); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		switch tok {
		case TokenNaN:
			*f = Float(math.NaN())
		case TokenPosInf:
			*f = Float(math.Inf(1))
		case TokenNegInf:
			*f = Float(math.Inf(-1))
		default:
			return fmt.Errorf("%w: %q", ErrBadToken, tok)
		}
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("%w: float %s", ErrMalformed, data)
	}
	*f = Float(v)
	return nil
}

// Floats converts a float64 slice for encoding.
func Floats(vs []float64) []Float {
	out := make([]Float, len(vs))
	for i, v := range vs {
		out[i] = Float(v)
	}
	return out
}

// Float64s converts decoded values back to float64.
func Float64s(fs []Float) []float64 {
	out := make([]float64, len(fs))
	for i, f := range fs {
		out[i] = float64(f)
	}
	return out
}
