package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAccountRequestValidate(t *testing.T) {
	cases := []struct {
		name string
		req  OpenAccountRequest
		want string
	}{
		{name: "valid", req: OpenAccountRequest{Owner: "Andres", InitialBalance: "1000.12345"}},
		{name: "valid without balance", req: OpenAccountRequest{Owner: "Andres"}},
		{name: "zero balance", req: OpenAccountRequest{Owner: "Andres", InitialBalance: "0"}},
		{name: "missing owner", req: OpenAccountRequest{Owner: "  "}, want: "owner is required"},
		{name: "negative", req: OpenAccountRequest{Owner: "Andres", InitialBalance: "-1"}, want: "initialBalance cannot be negative"},
		{
			name: "all problems",
			req:  OpenAccountRequest{InitialBalance: "abc"},
			want: "owner is required; initialBalance must be numeric",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.want)
		})
	}
}

func TestAmountRequestValidate(t *testing.T) {
	assert.NoError(t, AmountRequest{Owner: "Andres", Amount: "100"}.Validate())
	assert.EqualError(t, AmountRequest{Owner: "Andres"}.Validate(), "amount is required")
	assert.EqualError(t, AmountRequest{Owner: "Andres", Amount: "0"}.Validate(), "amount must be greater than zero")
	assert.EqualError(t, AmountRequest{Owner: "Andres", Amount: "-5"}.Validate(), "amount must be greater than zero")
	assert.EqualError(t, AmountRequest{Amount: "1e"}.Validate(), "owner is required; amount must be numeric")
}

func TestTransferRequestValidate(t *testing.T) {
	assert.NoError(t, TransferRequest{SourceOwner: "Andres", DestinationOwner: "Jhon Doe", Amount: "500"}.Validate())

	err := TransferRequest{SourceOwner: "Andres", DestinationOwner: " Andres ", Amount: "500"}.Validate()
	assert.EqualError(t, err, "sourceOwner and destinationOwner cannot be the same")

	err = TransferRequest{}.Validate()
	assert.EqualError(t, err, "sourceOwner is required; destinationOwner is required; amount is required")
}

func TestParsedAmount(t *testing.T) {
	amount, err := AmountRequest{Owner: "Andres", Amount: " 0.50 "}.ParsedAmount()
	require.NoError(t, err)
	assert.Equal(t, "0.5", amount.String())
	assert.Equal(t, int32(-2), amount.Exponent())

	amount, err = TransferRequest{SourceOwner: "Andres", DestinationOwner: "Jhon Doe", Amount: "500"}.ParsedAmount()
	require.NoError(t, err)
	assert.Equal(t, int64(500), amount.IntPart())

	_, err = AmountRequest{Owner: "Andres", Amount: "abc"}.ParsedAmount()
	assert.EqualError(t, err, "amount must be numeric")

	_, err = TransferRequest{Amount: "0"}.ParsedAmount()
	assert.EqualError(t, err, "amount must be greater than zero")

	_, err = AmountRequest{}.ParsedAmount()
	assert.EqualError(t, err, "amount is required")
}
