package splitmath

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEqualShares(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		n       int
		want    []string
		wantErr bool
	}{
		{
			name:   "even division",
			amount: "90",
			n:      3,
			want:   []string{"30", "30", "30"},
		},
		{
			name:   "uneven cents go to first share",
			amount: "100.01",
			n:      2,
			want:   []string{"50.00", "50.01"},
		},
		{
			name:   "repeating decimal",
			amount: "100",
			n:      3,
			want:   []string{"33.34", "33.33", "33.33"},
		},
		{
			name:   "single participant",
			amount: "42.42",
			n:      1,
			want:   []string{"42.42"},
		},
		{
			name:    "zero participants",
			amount:  "10",
			n:       0,
			wantErr: true,
		},
		{
			name:    "negative amount",
			amount:  "-5",
			n:       2,
			wantErr: true,
		},
		{
			name:    "zero amount",
			amount:  "0",
			n:       2,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := EqualShares(d(tt.amount), tt.n)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, shares, len(tt.want))

			sum := decimal.Zero
			for i, share := range shares {
				assert.True(t, share.Equal(d(tt.want[i])),
					"share %d = %s, want %s", i, share, tt.want[i])
				sum = sum.Add(share)
			}
			assert.True(t, sum.Equal(d(tt.amount)), "shares sum to %s, want %s", sum, tt.amount)
		})
	}
}

func TestEqualSharesAlwaysSumExactly(t *testing.T) {
	amounts := []string{"0.01", "1", "7.77", "19.99", "100.01", "1234.56"}
	for _, amount := range amounts {
		for n := 1; n <= 9; n++ {
			shares, err := EqualShares(d(amount), n)
			require.NoError(t, err, "amount %s n %d", amount, n)
			sum := decimal.Zero
			for _, share := range shares {
				assert.False(t, share.IsNegative(), "amount %s n %d produced negative share", amount, n)
				sum = sum.Add(share)
			}
			assert.True(t, sum.Equal(d(amount)), "amount %s n %d: shares sum to %s", amount, n, sum)
		}
	}
}
