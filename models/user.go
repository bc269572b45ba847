package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleCommercial UserRole = "COMMERCIAL"
	RoleAuditor    UserRole = "AUDITOR"
	RoleTechnician UserRole = "TECHNICIAN"
)

// User is a field-service operator. The PIN is a 6-digit capability token
// shared with the device, not a credential: it is stored verbatim so the
// admin screen can read it back for editing.
type User struct {
	Id               string                           `json:"id" gorm:"primaryKey"`
	Name             string                           `json:"name" gorm:"not null"`
	Role             UserRole                         `json:"role" gorm:"not null"`
	Pin              string                           `json:"pin" gorm:"size:6;not null"`
	Avatar           string                           `json:"avatar"`
	AllowedTemplates datatypes.JSONSlice[TemplateKey] `json:"allowed_templates"`
}

func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if user.Id == "" {
		user.Id = uuid.NewString()
	}
	return
}

// MayCreate reports whether the user may open a report of the given type.
func (user *User) MayCreate(key TemplateKey) bool {
	for _, k := range user.AllowedTemplates {
		if k == key {
			return true
		}
	}
	return false
}
