package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CriteriaStatus string

const (
	StatusPass  CriteriaStatus = "pass"
	StatusFail  CriteriaStatus = "fail"
	StatusNA    CriteriaStatus = "na"
	StatusUnset CriteriaStatus = ""
)

// AuditCriteria is one checklist row. The label is copied from the template
// when the report is created and never re-synced afterwards.
type AuditCriteria struct {
	Id     string         `json:"id"`
	Label  string         `json:"label"`
	Status CriteriaStatus `json:"status"`
	Notes  string         `json:"notes"`
}

type ReportStatus string

const (
	ReportDraft     ReportStatus = "Rascunho"
	ReportFinalized ReportStatus = "Finalizado"
)

// GeoPoint is an opaque coordinate pair captured best-effort at finalize.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Report is a finalized (or, in principle, draft) visit record. Client and
// auditor display names are denormalized snapshots taken at creation time;
// later renames of the referenced entities do not propagate. The criteria
// list and the optional order travel as embedded JSON blobs, matching the
// wire shape the persistence API exchanges.
type Report struct {
	Id string `json:"id" gorm:"primaryKey"`

	ClientID       string `json:"client_id" gorm:"index;not null"`
	ClientName     string `json:"client_name"`
	ClientShopName string `json:"client_shop_name"`
	AuditorID      string `json:"auditor_id" gorm:"index;not null"`
	AuditorName    string `json:"auditor_name"`

	Date           string `json:"date" gorm:"index"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	ContractNumber string `json:"contract_number"`
	RouteNumber    string `json:"route_number"`

	TypeKey  TemplateKey `json:"type_key" gorm:"not null"`
	TypeName string      `json:"type_name"`

	Criteria           datatypes.JSONSlice[AuditCriteria] `json:"criteria"`
	Summary            string                             `json:"summary" gorm:"type:text"`
	ClientObservations string                             `json:"client_observations" gorm:"type:text"`

	Order *datatypes.JSONType[Order] `json:"order,omitempty"`

	AuditorSignerName string `json:"auditor_signer_name"`
	AuditorSignature  string `json:"auditor_signature" gorm:"type:text"`
	ClientSignerName  string `json:"client_signer_name"`
	ClientSignature   string `json:"client_signature" gorm:"type:text"`

	GpsLat *float64 `json:"gps_lat,omitempty"`
	GpsLng *float64 `json:"gps_lng,omitempty"`

	Status ReportStatus `json:"status"`
}

func (report *Report) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if report.Id == "" {
		report.Id = uuid.NewString()
	}
	return
}

// SalesOrder unwraps the embedded order blob; nil when absent.
func (report *Report) SalesOrder() *Order {
	if report.Order == nil {
		return nil
	}
	o := report.Order.Data()
	return &o
}

// SetSalesOrder stores a copy of o as the embedded blob, or clears it.
func (report *Report) SetSalesOrder(o *Order) {
	if o == nil {
		report.Order = nil
		return
	}
	v := datatypes.NewJSONType(*o)
	report.Order = &v
}

// Location returns the GPS stamp, nil when the capture never succeeded.
func (report *Report) Location() *GeoPoint {
	if report.GpsLat == nil || report.GpsLng == nil {
		return nil
	}
	return &GeoPoint{Lat: *report.GpsLat, Lng: *report.GpsLng}
}

// SetLocation stamps the coordinate pair; a nil point leaves both columns NULL.
func (report *Report) SetLocation(p *GeoPoint) {
	if p == nil {
		report.GpsLat, report.GpsLng = nil, nil
		return
	}
	lat, lng := p.Lat, p.Lng
	report.GpsLat, report.GpsLng = &lat, &lng
}
