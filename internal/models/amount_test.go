package models

import (
	"encoding/json"
	"math"
	"testing"
)

func TestCoerceAmount(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want int64
	}{
		{"nil", nil, 0},
		{"float", float64(1500), 1500},
		{"float_rounds_half_up", float64(10.5), 11},
		{"float_rounds_down", float64(10.4), 10},
		{"negative_float", float64(-25.6), -26},
		{"nan", math.NaN(), 0},
		{"positive_inf", math.Inf(1), 0},
		{"negative_inf", math.Inf(-1), 0},
		{"json_number", json.Number("42"), 42},
		{"json_number_decimal", json.Number("99.9"), 100},
		{"integer_string", "2500", 2500},
		{"decimal_string", "12.75", 13},
		{"padded_string", "  300 ", 300},
		{"empty_string", "", 0},
		{"non_numeric_string", "abc", 0},
		{"mixed_string", "12abc", 0},
		{"int", int(7), 7},
		{"int64", int64(9000000000), 9000000000},
		{"bool", true, 0},
		{"slice", []int{1}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CoerceAmount(tc.in); got != tc.want {
				t.Errorf("CoerceAmount(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}
