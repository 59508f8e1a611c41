package models

import "time"

// WifiNetwork is a stored wireless network secret. Password is kept encrypted
// at rest and decrypted by the service layer before the record leaves the
// server.
type WifiNetwork struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	WifiName  string    `json:"wifiName"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the WifiNetwork model.
func (w WifiNetwork) TableName() string {
	return "wifi_networks"
}
