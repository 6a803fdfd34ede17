package domain

// TransactionTypeDebit is the only transaction type the statement endpoint emits.
const TransactionTypeDebit = "DR"

// TransactionRecord represents one synthesized debit on a statement.
// All fields are strings on the wire; dates use the DDMMYYYY layout.
type TransactionRecord struct {
	AccountNumber   string `json:"Account_Number,omitempty"`
	ValidDate       string `json:"Valid_Date"`
	PostDate        string `json:"Post_Date"`
	TransactionType string `json:"Transaction_Type"`
	Narration       string `json:"Narration"`
	Amount          string `json:"Amount"` // fixed-point, two fractional digits
}
