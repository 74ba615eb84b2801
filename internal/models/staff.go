package models

// StaffStatus is the duty state of an employee.
type StaffStatus string

const (
	StaffActive  StaffStatus = "ACTIVE"
	StaffOnLeave StaffStatus = "ON_LEAVE"
	StaffOffDuty StaffStatus = "OFF_DUTY"
)

// StaffMember represents an employee shown on the admin roster
type StaffMember struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Role   string      `json:"role"`
	Status StaffStatus `json:"status"`
	Shift  string      `json:"shift"`
}

// ReportDefinition describes a report an administrator can generate.
type ReportDefinition struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// ReportCatalog lists the generatable reports.
var ReportCatalog = []ReportDefinition{
	{ID: "rev", Title: "Monthly Revenue Report", Description: "Room revenue, food and beverage, and amenities.", Type: "Financial"},
	{ID: "occ", Title: "Occupancy Analysis", Description: "Stay duration and room utilization.", Type: "Operations"},
	{ID: "inv", Title: "Inventory Audit", Description: "Stock levels for housekeeping and maintenance.", Type: "Logistics"},
	{ID: "pay", Title: "Payroll Summary", Description: "Staff shifts and duty status.", Type: "HR"},
	{ID: "tax", Title: "Tax Compliance", Description: "Collected taxes for regulatory submission.", Type: "Legal"},
}

// FindReport looks up a report definition by id.
func FindReport(id string) (ReportDefinition, bool) {
	for _, r := range ReportCatalog {
		if r.ID == id {
			return r, true
		}
	}
	return ReportDefinition{}, false
}
