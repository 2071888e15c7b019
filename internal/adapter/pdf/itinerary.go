// Package pdf renders printable itineraries for scored offers.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// Itinerary is the data printed on one itinerary page.
type Itinerary struct {
	Offer domain.FlightOffer

	// Trip supplies the route and dates. It may be nil for offers whose trip is gone.
	Trip *domain.TripRequest

	BudgetUsagePercent *float64
	GeneratedAt        time.Time
}

// Filename is the suggested download name for the itinerary.
func (it Itinerary) Filename() string {
	return fmt.Sprintf("trippulse-%s-%s.pdf", it.Offer.Airline.Code, it.Offer.FlightNumber)
}

// Render draws the itinerary as a single A4 page and returns the PDF bytes.
func Render(it Itinerary) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.SetCreationDate(it.GeneratedAt)
	doc.SetTitle("TripPulse itinerary", false)
	doc.AddPage()

	doc.SetFillColor(16, 42, 67)
	doc.Rect(0, 0, 210, 28, "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 18)
	doc.SetXY(20, 8)
	doc.CellFormat(120, 10, "TripPulse", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetXY(20, 18)
	doc.CellFormat(170, 6, "Trip itinerary estimate", "", 1, "L", false, 0, "")
	doc.SetY(36)
	doc.SetTextColor(0, 0, 0)

	section := func(title string) {
		doc.SetFillColor(16, 42, 67)
		doc.SetTextColor(255, 255, 255)
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		doc.SetTextColor(0, 0, 0)
		doc.Ln(2)
	}
	row := func(label, value string) {
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(100, 100, 100)
		doc.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		doc.SetTextColor(20, 20, 20)
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	o := it.Offer
	if it.Trip != nil {
		section("Trip")
		row("Route", fmt.Sprintf("%s - %s", place(it.Trip.Origin, it.Trip.OriginCity), place(it.Trip.Destination, it.Trip.DestinationCity)))
		row("Departure", readableDate(it.Trip.DepartureDate))
		row("Return", readableDate(it.Trip.ReturnDate))
		row("Travelers", fmt.Sprintf("%d", it.Trip.Travelers))
		doc.Ln(4)
	}

	section("Flight")
	row("Airline", fmt.Sprintf("%s (%s)", o.Airline.Name, o.Airline.Code))
	row("Flight number", o.FlightNumber)
	row("Outbound", legSummary(o.Outbound))
	row("Return", legSummary(o.Return))
	row("Deal score", fmt.Sprintf("%.1f / 10", o.DealScore))
	doc.Ln(4)

	section("Cost estimate")
	row("Flights", money(o.FlightPrice, o.Currency))
	row("Hotel", money(o.HotelEstimate, o.Currency))
	row("Activities", money(o.ActivityEstimate, o.Currency))
	if it.BudgetUsagePercent != nil {
		row("Budget used", fmt.Sprintf("%.0f%%", *it.BudgetUsagePercent))
	}
	doc.SetFillColor(240, 180, 60)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(55, 9, "TOTAL ESTIMATE", "", 0, "L", true, 0, "")
	doc.CellFormat(115, 9, money(o.TotalEstimate, o.Currency), "", 1, "L", true, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(60, 60, 60)
	doc.MultiCell(170, 5, "Book at: "+o.BookingURL, "", "L", false)

	doc.SetY(-22)
	doc.SetFont("Helvetica", "I", 8)
	doc.SetTextColor(150, 150, 150)
	doc.CellFormat(0, 8,
		fmt.Sprintf("Generated %s UTC. Estimated prices, not a booking confirmation.", it.GeneratedAt.UTC().Format("02 Jan 2006 15:04")),
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render itinerary: %w", err)
	}
	return buf.Bytes(), nil
}

func legSummary(l domain.Leg) string {
	stops := "nonstop"
	switch {
	case l.Stops == 1:
		stops = "1 stop"
	case l.Stops > 1:
		stops = fmt.Sprintf("%d stops", l.Stops)
	}
	return fmt.Sprintf("%s - %s, %s, %s", l.DepartureTime, l.ArrivalTime, l.Duration.Formatted, stops)
}

func place(code, city string) string {
	if city == "" {
		return code
	}
	return fmt.Sprintf("%s (%s)", city, code)
}

func money(amount float64, currency string) string {
	return fmt.Sprintf("%.0f %s", amount, currency)
}

func readableDate(iso string) string {
	t, err := time.Parse(domain.DateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("Mon 02 Jan 2006")
}
