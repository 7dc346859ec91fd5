package model

import "time"

type UserID string // e.g. 3GFQNuSg3dPqDD1emxv5bqX42oxq

type CreateUserParams struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Status    string  `json:"status"`
}

type User struct {
	ID           UserID    `db:"ID" json:"-"`
	Name         string    `db:"Name" json:"name"`
	Email        string    `db:"Email" json:"email"`
	Password     string    `db:"Password" json:"-"`
	Address      string    `db:"Address" json:"address"`
	Latitude     float64   `db:"Latitude" json:"latitude"`
	Longitude    float64   `db:"Longitude" json:"longitude"`
	Status       string    `db:"Status" json:"status"`
	RegisteredAt time.Time `db:"RegisteredAt" json:"register_at"`
	// Token holds the most recently issued credential. It is stored for
	// reference only and is never consulted during verification.
	Token string `db:"Token" json:"token"`
}
