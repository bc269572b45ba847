package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientStatus string

const (
	ClientActive   ClientStatus = "Ativo"
	ClientInactive ClientStatus = "Inativo"
)

type Client struct {
	Id            string       `json:"id" gorm:"primaryKey"`
	Name          string       `json:"name" gorm:"not null"`
	TaxId         string       `json:"tax_id"`
	ContactPerson string       `json:"contact_person"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	Address       string       `json:"address"`
	PostalCode    string       `json:"postal_code"`
	Locality      string       `json:"locality"`
	County        string       `json:"county"`
	ShopName      string       `json:"shop_name"`
	Status        ClientStatus `json:"status"`
	LastVisit     string       `json:"last_visit"`

	// Days between scheduled visits; 0 = unscheduled.
	VisitFrequencyDays int `json:"visit_frequency_days"`

	// Weak reference to the owning COMMERCIAL user. The role constraint is
	// enforced by the admin UI, not by storage.
	AccountManagerId string `json:"account_manager_id"`
}

func (client *Client) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if client.Id == "" {
		client.Id = uuid.NewString()
	}
	return
}
