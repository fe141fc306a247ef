package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a clinic patient record. PatientCode is a human-readable
// display label (PASI-<year>-<suffix>), not a key: the uuid primary key
// is the only identifier other records reference.
type Patient struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientCode string     `gorm:"type:varchar(20);index;not null" json:"patient_code"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Phone       string     `gorm:"type:varchar(20);not null" json:"phone"`
	Email       string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	Address     string     `gorm:"type:text" json:"address,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender      string     `gorm:"type:char(1)" json:"gender,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
