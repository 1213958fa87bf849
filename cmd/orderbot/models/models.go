package models

import (
	"regexp"
	"strings"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsDecision reports whether s is a status an administrator may assign.
// Submission is the only path that produces StatusPending.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderData is the snapshot of the submitted form kept next to the
// lifecycle status.
type OrderData struct {
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Passport   string      `json:"passport"`
	Phone      string      `json:"phone"`
	Discord    string      `json:"discord"`
	Additional string      `json:"additional,omitempty"`
	Amount     float64     `json:"amount"`
	Items      []OrderItem `json:"items"`
}

type Order struct {
	Status Status     `json:"status"`
	Data   *OrderData `json:"data,omitempty"`
}

// OrderRequest is the POST /order body.
type OrderRequest struct {
	ID         string      `json:"id"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Passport   string      `json:"passport"`
	Phone      string      `json:"phone"`
	Discord    string      `json:"discord"`
	Additional string      `json:"additional,omitempty"`
	Amount     float64     `json:"amount"`
	Items      []OrderItem `json:"items"`
	Photo      string      `json:"photo,omitempty"` // data-URI string
}

func (r *OrderRequest) Snapshot() *OrderData {
	return &OrderData{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Passport:   r.Passport,
		Phone:      r.Phone,
		Discord:    r.Discord,
		Additional: r.Additional,
		Amount:     r.Amount,
		Items:      r.Items,
	}
}

// Canonical order ID: '#' followed by exactly four alphanumerics. The
// same rule applies on the submission, update and bot command paths.
var orderIDRe = regexp.MustCompile(`^#[0-9A-Za-z]{4}$`)

func IsValidOrderID(id string) bool {
	return orderIDRe.MatchString(id)
}

// NormalizeOrderID brings a user-supplied token to canonical form by
// prepending the '#' prefix when it is missing. The result still has to
// pass IsValidOrderID.
func NormalizeOrderID(token string) string {
	if token == "" || strings.HasPrefix(token, "#") {
		return token
	}
	return "#" + token
}
