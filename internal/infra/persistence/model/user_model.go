// Package model holds the GORM persistence models. They mirror the tables created by the SQL migrations.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(150)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BusinessProfileModel mirrors the 'business_profiles' table. UserID references users.id.
type BusinessProfileModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID `gorm:"type:uuid;unique;not null"`
	BusinessName       string    `gorm:"type:varchar(200);not null"`
	BusinessType       string    `gorm:"type:varchar(20);not null"`
	RegistrationNumber string    `gorm:"type:varchar(50);unique;not null"`
	Address            string    `gorm:"type:text"`
	ContactPerson      string    `gorm:"type:varchar(100)"`
	ContactNumber      string    `gorm:"type:varchar(15)"`
	Email              string    `gorm:"type:varchar(255)"`
	DateEstablished    time.Time `gorm:"type:date"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}
