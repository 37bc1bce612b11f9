package model

import "time"

// Gender is the closed set of profile gender values.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// AddressType is the closed set of address kinds.
type AddressType string

const (
	AddressShipping AddressType = "shipping"
	AddressBilling  AddressType = "billing"
	AddressOther    AddressType = "other"
)

func (t AddressType) Valid() bool {
	switch t {
	case AddressShipping, AddressBilling, AddressOther:
		return true
	}
	return false
}

type Customer struct {
	ID           uint    `gorm:"primaryKey"`
	Email        string  `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string  `gorm:"size:255;not null"`
	Name         string  `gorm:"size:100;not null"`
	Phone        *string `gorm:"size:32"`
	CreatedAt    time.Time
}

// CustomerProfile shares its primary key with the owning customer,
// so a customer can never have more than one profile row.
type CustomerProfile struct {
	CustomerID uint `gorm:"primaryKey"`
	BirthDate  *time.Time
	Gender     *Gender `gorm:"size:16"`
	Newsletter bool    `gorm:"not null;default:false"`
	Bio        *string `gorm:"type:text"`
}

type Address struct {
	ID         uint        `gorm:"primaryKey"`
	CustomerID uint        `gorm:"index;not null"`
	Type       AddressType `gorm:"size:16;not null"`
	Line1      string      `gorm:"size:255;not null"`
	Line2      *string     `gorm:"size:255"`
	City       string      `gorm:"size:100;not null"`
	State      *string     `gorm:"size:100"`
	PostalCode string      `gorm:"size:20;not null"`
	Country    string      `gorm:"size:100;not null"`
}
