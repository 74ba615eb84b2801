package hotel

import (
	"fmt"
	"time"

	"grandstay/internal/models"
)

// Report is the output of a generated administrative report.
type Report struct {
	models.ReportDefinition
	GeneratedAt time.Time          `json:"generatedAt"`
	Figures     map[string]float64 `json:"figures"`
	Message     string             `json:"message"`
}

// GenerateReport computes the figures of the report with the given id.
func (s *Store) GenerateReport(id string) (Report, error) {
	def, ok := models.FindReport(id)
	if !ok {
		return Report{}, fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	figures := make(map[string]float64)
	var bookingTotal float64
	for _, b := range s.bookings {
		if b.Status != models.BookingCancelled {
			bookingTotal += b.TotalAmount
		}
	}

	switch def.ID {
	case "rev":
		var weekly float64
		for _, p := range s.revenue {
			weekly += p.Value
		}
		figures["weekly_revenue"] = weekly
		figures["booked_revenue"] = bookingTotal
	case "occ":
		figures["occupancy_percent"] = float64(s.occupancyLocked())
		for _, r := range s.rooms {
			figures["rooms_"+string(r.Status)]++
		}
	case "inv":
		for _, o := range s.orders {
			figures["orders_"+string(o.Status)]++
			figures["spend_"+string(o.Type)] += o.Amount
		}
	case "pay":
		for _, m := range s.staff {
			figures["staff_"+string(m.Status)]++
		}
		figures["headcount"] = float64(len(s.staff))
	case "tax":
		figures["taxable_revenue"] = bookingTotal
		figures["tax_collected"] = cents(bookingTotal * models.TaxRate)
	}

	return Report{
		ReportDefinition: def,
		GeneratedAt:      s.now(),
		Figures:          figures,
		Message:          fmt.Sprintf("%s generated successfully!", def.Title),
	}, nil
}
