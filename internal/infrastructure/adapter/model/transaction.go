package model

import (
	"time"
)

// Transaction represents the database model for transactions.
// The foreign key is one-way: a transaction stores its owner's id and the
// user model carries no back-reference collection.
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index"`
	Kind        string    `gorm:"not null;size:10"`
	Category    string    `gorm:"not null;size:100"`
	AmountCents int64     `gorm:"not null"`
	Date        string    `gorm:"not null;size:10"`
	Account     string    `gorm:"size:100"`
	CreatedAt   time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
