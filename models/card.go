package models

import "time"

// Card type values accepted by the API.
const (
	CardTypeCredit = "credit"
	CardTypeDebit  = "debit"
	CardTypeBoth   = "both"
)

// Card is a stored payment card. Password and CVV are kept encrypted at rest
// and decrypted by the service layer before the record leaves the server.
type Card struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	Nickname       string    `json:"nickname"`
	PrintedName    string    `json:"printedName"`
	Number         string    `json:"number"`
	CVV            string    `json:"cvv"`
	ExpirationDate string    `json:"expirationDate"`
	Password       string    `json:"password"`
	Virtual        bool      `json:"virtual"`
	Type           string    `json:"type"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Card model.
func (c Card) TableName() string {
	return "cards"
}
