package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{
			name:  "Zero",
			input: "0",
			want:  0,
		},
		{
			name:  "Decimal price",
			input: "12.50",
			want:  12.50,
		},
		{
			name:  "Whole number",
			input: "8",
			want:  8,
		},
		{
			name:  "Surrounding whitespace",
			input: " 4.25 ",
			want:  4.25,
		},
		{
			name:    "Empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "Not a number",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "Negative",
			input:   "-5",
			wantErr: true,
		},
		{
			name:    "NaN",
			input:   "NaN",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := ParsePrice(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrice)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, price)
			}
		})
	}
}
