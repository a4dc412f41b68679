// Package ofx parses OFX/QFX bank statements into transactions.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/kestrelworks/glidepath/internal/model"
)

// Parser reads OFX/QFX statement files.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

var severityPattern = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)

// preprocess fixes formatting quirks banks commonly ship in OFX exports.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// SEVERITY values must be upper case; some banks export mixed case.
	content = severityPattern.ReplaceAllStringFunc(content, strings.ToUpper)

	return content
}

// ParseFile parses an OFX/QFX file and returns its transactions. Expenses
// keep their negative sign so the stored amounts can be summed directly into
// a balance.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		accountID := string(stmt.BankAcctFrom.AcctID)
		for _, ofxTxn := range stmt.BankTranList.Transactions {
			transactions = append(transactions, p.convert(ofxTxn, accountID))
		}
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		accountID := string(stmt.CCAcctFrom.AcctID)
		for _, ofxTxn := range stmt.BankTranList.Transactions {
			transactions = append(transactions, p.convert(ofxTxn, accountID))
		}
	}

	slog.Info("Parsed OFX file", "transactions", len(transactions))

	return transactions, nil
}

// convert maps one OFX transaction into our model, keeping the OFX sign
// convention (negative for debits).
func (p *Parser) convert(ofxTxn ofxgo.Transaction, accountID string) model.Transaction {
	amount, _ := ofxTxn.TrnAmt.Float64()

	txn := model.Transaction{
		ID:           string(ofxTxn.FiTID),
		Date:         ofxTxn.DtPosted.Time,
		Name:         string(ofxTxn.Name),
		MerchantName: p.merchantName(ofxTxn),
		Amount:       amount,
		AccountID:    accountID,
	}
	txn.Hash = txn.GenerateHash()
	return txn
}

// Prefixes banks prepend to card purchase descriptions.
var merchantPrefixes = []string{
	"POS PURCHASE ",
	"PURCHASE AUTHORIZED ON ",
	"DEBIT CARD PURCHASE ",
	"ACH DEBIT ",
	"CHECK CARD ",
	"VISA PURCHASE ",
	"DEBIT PURCHASE ",
}

// merchantName extracts the cleanest merchant name available.
func (p *Parser) merchantName(txn ofxgo.Transaction) string {
	if txn.Payee != nil && txn.Payee.Name != "" {
		return string(txn.Payee.Name)
	}

	name := strings.TrimSpace(string(txn.Name))
	if name == "" && txn.Memo != "" {
		name = strings.TrimSpace(string(txn.Memo))
	}

	upper := strings.ToUpper(name)
	for _, prefix := range merchantPrefixes {
		if strings.HasPrefix(upper, prefix) {
			name = strings.TrimSpace(name[len(prefix):])
			break
		}
	}

	return name
}
