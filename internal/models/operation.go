package models

import "time"

// OperationType is the kind of billable service performed for a teacher
type OperationType string

const (
	OperationTypePrinting     OperationType = "printing"
	OperationTypePhotocopying OperationType = "photocopying"
	OperationTypeLamination   OperationType = "lamination"
	OperationTypeBinding      OperationType = "binding"
	OperationTypeDesign       OperationType = "design"
	OperationTypeScanning     OperationType = "scanning"
	OperationTypeCutting      OperationType = "cutting"
	OperationTypeOther        OperationType = "other"
)

// OperationTypes is the canonical ordering used by breakdowns and reports
var OperationTypes = []OperationType{
	OperationTypePrinting,
	OperationTypePhotocopying,
	OperationTypeLamination,
	OperationTypeBinding,
	OperationTypeDesign,
	OperationTypeScanning,
	OperationTypeCutting,
	OperationTypeOther,
}

// Operation represents one billable unit of work for a teacher.
// Amount is the authoritative billed value; it is not required to equal
// Quantity * UnitPrice. Cost is the internal cost used for profit; it is
// admin only and handlers nil it out before serving other roles.
type Operation struct {
	ID            int           `json:"id"`
	TeacherID     int           `json:"teacher_id"`
	Type          OperationType `json:"type"`
	Description   string        `json:"description"`
	Quantity      float64       `json:"quantity"`
	UnitPrice     float64       `json:"unit_price"`
	Amount        float64       `json:"amount"`
	Cost          *float64      `json:"cost,omitempty"`
	OperationDate time.Time     `json:"operation_date"`
	Notes         string        `json:"notes"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type CreateOperationRequest struct {
	TeacherID     int           `json:"teacher_id"`
	Type          OperationType `json:"type"`
	Description   string        `json:"description"`
	Quantity      float64       `json:"quantity"`
	UnitPrice     float64       `json:"unit_price"`
	Amount        float64       `json:"amount"`
	Cost          float64       `json:"cost"`
	OperationDate string        `json:"operation_date"` // YYYY-MM-DD
	Notes         string        `json:"notes"`
}

type UpdateOperationRequest struct {
	Type          OperationType `json:"type"`
	Description   string        `json:"description"`
	Quantity      float64       `json:"quantity"`
	UnitPrice     float64       `json:"unit_price"`
	Amount        float64       `json:"amount"`
	Cost          float64       `json:"cost"`
	OperationDate string        `json:"operation_date"`
	Notes         string        `json:"notes"`
}
