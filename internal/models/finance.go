package models

// InvoiceStatus is the payment state of a vendor invoice.
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "PAID"
	InvoicePending InvoiceStatus = "PENDING"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
)

// VendorInvoice is a bill issued by a vendor. Invoices are read-only.
type VendorInvoice struct {
	ID          string        `json:"id"`
	VendorName  string        `json:"vendorName"`
	Amount      float64       `json:"amount"`
	Date        string        `json:"date"`
	Status      InvoiceStatus `json:"status"`
	ServiceType string        `json:"serviceType"`
}

// ChartPoint is one labelled value of a dashboard series.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// TaxRate applies to every quoted stay.
const TaxRate = 0.12

// AddOn is an optional extra offered during booking.
type AddOn struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// AddOnCatalog lists the extras a guest can attach to a stay.
var AddOnCatalog = []AddOn{
	{ID: "bfast", Name: "Continental Breakfast", Price: 25, Description: "Daily buffet breakfast per guest"},
	{ID: "spa", Name: "Spa Access", Price: 45, Description: "Full day access to thermal pools"},
	{ID: "pickup", Name: "Airport Transfer", Price: 60, Description: "Luxury sedan pickup (one way)"},
	{ID: "late", Name: "Late Check-out", Price: 30, Description: "Keep room until 2 PM"},
}

// FindAddOn looks up a catalog entry by id.
func FindAddOn(id string) (AddOn, bool) {
	for _, a := range AddOnCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}
