package ofx

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20260201120000[0:GMT]
<DTEND>20260228120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260210120000[0:GMT]
<TRNAMT>-62.40
<FITID>2026021001
<NAME>GROCERY OUTLET #42
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20260213120000[0:GMT]
<TRNAMT>2500.00
<FITID>2026021301
<NAME>ACME CORP PAYROLL
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260220120000[0:GMT]
<TRNAMT>-1200.00
<FITID>2026022001
<NAME>SUNNYVALE APARTMENTS
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1237.60
<DTASOF>20260228120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>USD
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20260201120000[0:GMT]
<DTEND>20260228120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260205120000[0:GMT]
<TRNAMT>-15.99
<FITID>CC2026020501
<NAME>STREAMFLIX.COM
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260212120000[0:GMT]
<TRNAMT>-89.10
<FITID>CC2026021201
<NAME>POS PURCHASE HARDWARE BARN
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-105.09
<DTASOF>20260228120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParseFile(t *testing.T) {
	tests := []struct {
		name          string
		ofxData       string
		expectedCount int
		expectedError bool
	}{
		{
			name:          "valid bank statement",
			ofxData:       sampleBankOFX,
			expectedCount: 3,
		},
		{
			name:          "valid credit card statement",
			ofxData:       sampleCreditCardOFX,
			expectedCount: 2,
		},
		{
			name:          "invalid OFX data",
			ofxData:       "not valid OFX",
			expectedError: true,
		},
		{
			name:          "empty file",
			ofxData:       "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser()

			transactions, err := parser.ParseFile(context.Background(), strings.NewReader(tt.ofxData))

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, transactions, tt.expectedCount)
			}
		})
	}
}

func TestParseBankTransactions(t *testing.T) {
	parser := NewParser()

	transactions, err := parser.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	// Debits keep their negative sign so they can be summed into a balance.
	grocery := transactions[0]
	assert.Equal(t, "2026021001", grocery.ID)
	assert.Equal(t, "GROCERY OUTLET #42", grocery.Name)
	assert.InDelta(t, -62.40, grocery.Amount, 0.001)
	assert.Equal(t, "1234567890", grocery.AccountID)
	assert.True(t, grocery.IsExpense())
	assert.NotEmpty(t, grocery.Hash)
	assert.Equal(t, 2026, grocery.Date.Year())
	assert.Equal(t, time.February, grocery.Date.Month())
	assert.Equal(t, 10, grocery.Date.Day())

	payroll := transactions[1]
	assert.InDelta(t, 2500.00, payroll.Amount, 0.001)
	assert.False(t, payroll.IsExpense())

	rent := transactions[2]
	assert.InDelta(t, -1200.00, rent.Amount, 0.001)
}

func TestParseCreditCardTransactions(t *testing.T) {
	parser := NewParser()

	transactions, err := parser.ParseFile(context.Background(), strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	streaming := transactions[0]
	assert.Equal(t, "CC2026020501", streaming.ID)
	assert.InDelta(t, -15.99, streaming.Amount, 0.001)
	assert.Equal(t, "4111111111111111", streaming.AccountID)

	// The bank's POS prefix is stripped from the merchant name but the raw
	// statement description is kept.
	hardware := transactions[1]
	assert.Equal(t, "POS PURCHASE HARDWARE BARN", hardware.Name)
	assert.Equal(t, "HARDWARE BARN", hardware.MerchantName)
}

func TestPreprocess_UppercasesSeverity(t *testing.T) {
	parser := NewParser()

	got := parser.preprocess("  \r\n<SEVERITY>Info</SEVERITY><SEVERITY>warn</SEVERITY>")
	assert.Equal(t, "<SEVERITY>INFO</SEVERITY><SEVERITY>WARN</SEVERITY>", got)
}

func TestMerchantName(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "remove POS prefix",
			input:    "POS PURCHASE COFFEE HOUSE",
			expected: "COFFEE HOUSE",
		},
		{
			name:     "remove debit card prefix",
			input:    "DEBIT CARD PURCHASE GROCERY OUTLET",
			expected: "GROCERY OUTLET",
		},
		{
			name:     "prefix match is case insensitive",
			input:    "Visa Purchase Bookshop",
			expected: "Bookshop",
		},
		{
			name:     "keep clean name",
			input:    "STREAMFLIX.COM",
			expected: "STREAMFLIX.COM",
		},
		{
			name:     "trim whitespace",
			input:    "  ACME CORP  ",
			expected: "ACME CORP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := ofxgo.Transaction{
				Name: ofxgo.String(tt.input),
			}
			assert.Equal(t, tt.expected, parser.merchantName(txn))
		})
	}
}

func TestMerchantName_PrefersPayee(t *testing.T) {
	parser := NewParser()

	txn := ofxgo.Transaction{
		Name:  ofxgo.String("POS PURCHASE RAW DESCRIPTION"),
		Payee: &ofxgo.Payee{Name: ofxgo.String("Clean Merchant")},
	}
	assert.Equal(t, "Clean Merchant", parser.merchantName(txn))
}

func TestMerchantName_FallsBackToMemo(t *testing.T) {
	parser := NewParser()

	txn := ofxgo.Transaction{
		Memo: ofxgo.String("TRANSFER TO SAVINGS"),
	}
	assert.Equal(t, "TRANSFER TO SAVINGS", parser.merchantName(txn))
}
