package models

// CompanySettings is a singleton row: the issuing company identity printed
// on every report header. LogoData holds a base64 data URI, same encoding
// the signature pads produce.
type CompanySettings struct {
	Id         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"not null"`
	TaxId      string `json:"tax_id"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	Locality   string `json:"locality"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Website    string `json:"website"`
	LogoData   string `json:"logo_data" gorm:"type:text"`
}
