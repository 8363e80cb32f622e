package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewFromCoins(t *testing.T) {
	type args struct {
		amount decimal.Decimal
	}
	tests := []struct {
		name    string
		args    args
		want    Money
		wantErr bool
	}{
		{
			name: "NewFromCoins - Pass",
			args: args{
				amount: decimal.NewFromInt(1),
			},
			want:    100000000,
			wantErr: false,
		},
		{
			name: "NewFromCoins - Fractional",
			args: args{
				amount: decimal.NewFromFloat(0.015),
			},
			want:    1500000,
			wantErr: false,
		},
		{
			name: "NewFromCoins - Fail Negative Amount",
			args: args{
				amount: decimal.NewFromInt(-1),
			},
			want:    0,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFromCoins(tt.args.amount)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFromCoins() error = %v, wantErr %v", err, tt.wantErr)

				return
			}
			if got != tt.want {
				t.Errorf("NewFromCoins() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoney_ToCoins(t *testing.T) {
	tests := []struct {
		name string
		m    Money
		want decimal.Decimal
	}{
		{
			name: "To coins - Pass",
			m:    100000000,
			want: decimal.NewFromInt(1),
		},
		{
			name: "To coins - Sub-coin amount",
			m:    5000,
			want: decimal.NewFromFloat(0.00005),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.ToCoins(); got.Cmp(tt.want) != 0 {
				t.Errorf("Money.ToCoins() = %v, want %v", got, tt.want)
			}
		})
	}
}
