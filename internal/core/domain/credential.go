package domain

// Credential links a card to its account. The PIN is only ever held as a bcrypt hash.
type Credential struct {
	CardNumber string `json:"cardNumber"`
	AccountID  string `json:"accountID"`
	PinHash    string `json:"-"`
}
