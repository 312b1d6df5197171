package ident_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/ident"
)

func TestNext(t *testing.T) {
	type args struct {
		kind     ident.Kind
		previous string
	}

	type testCase struct {
		name    string
		args    args
		want    string
		wantErr error
	}

	tests := []testCase{
		{name: "FirstClient", args: args{kind: ident.KindClient}, want: "CLT00001"},
		{name: "SecondClient", args: args{kind: ident.KindClient, previous: "CLT00001"}, want: "CLT00002"},
		{name: "DriverCarry", args: args{kind: ident.KindDriver, previous: "DRV00099"}, want: "DRV00100"},
		{name: "FirstManager", args: args{kind: ident.KindManager}, want: "MGR00001"},
		{name: "Agent", args: args{kind: ident.KindAgent, previous: "AGT00041"}, want: "AGT00042"},
		{name: "FirstTour", args: args{kind: ident.KindTour}, want: "TOUR000001"},
		{name: "Tour", args: args{kind: ident.KindTour, previous: "TOUR000009"}, want: "TOUR000010"},
		{name: "FirstIncident", args: args{kind: ident.KindIncident}, want: "INC000001"},
		{name: "Claim", args: args{kind: ident.KindClaim, previous: "REC000123"}, want: "REC000124"},
		{name: "FirstInvoice", args: args{kind: ident.KindInvoice}, want: "FAC0000001"},
		{name: "Payment", args: args{kind: ident.KindPayment, previous: "PAY0000999"}, want: "PAY0001000"},
		{name: "OverflowWidens", args: args{kind: ident.KindClient, previous: "CLT99999"}, want: "CLT100000"},
		{name: "WrongPrefix", args: args{kind: ident.KindClient, previous: "DRV00001"}, wantErr: apperr.ErrValidation},
		{name: "NonNumericSuffix", args: args{kind: ident.KindInvoice, previous: "FAC00A0001"}, wantErr: apperr.ErrValidation},
		{name: "PrefixOnly", args: args{kind: ident.KindPayment, previous: "PAY"}, wantErr: apperr.ErrValidation},
		{name: "UnknownKind", args: args{kind: ident.Kind("vehicle")}, wantErr: apperr.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ident.Next(tt.args.kind, tt.args.previous)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNext_Shipment(t *testing.T) {
	first, err := ident.Next(ident.KindShipment, "")
	require.NoError(t, err)

	second, err := ident.Next(ident.KindShipment, first)
	require.NoError(t, err)

	assert.True(t, ident.IsShipmentNumber(first), first)
	assert.True(t, ident.IsShipmentNumber(second), second)
	assert.NotEqual(t, first, second)
}

func TestNewShipmentNumber(t *testing.T) {
	seen := make(map[string]struct{}, 1000)

	for range 1000 {
		n := ident.NewShipmentNumber()
		require.Len(t, n, 15)
		require.True(t, ident.IsShipmentNumber(n), n)

		_, dup := seen[n]
		require.False(t, dup, "duplicate shipment number %s", n)
		seen[n] = struct{}{}
	}
}

func TestIsShipmentNumber(t *testing.T) {
	assert.True(t, ident.IsShipmentNumber("EXP0123456789AB"))
	assert.False(t, ident.IsShipmentNumber("EXP0123456789ab"))
	assert.False(t, ident.IsShipmentNumber("EXP0123"))
	assert.False(t, ident.IsShipmentNumber("CLT0123456789AB"))
}

func TestSequential(t *testing.T) {
	assert.True(t, ident.Sequential(ident.KindInvoice))
	assert.False(t, ident.Sequential(ident.KindShipment))
}
