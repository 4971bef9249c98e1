package services

import "field-schedule-service/internal/domain"

// Johannesburg CBD, the default depot for demo schedules.
var DemoStart = domain.Coordinates{Lat: -26.2041, Lng: 28.0473}

func ptr(v float64) *float64 { return &v }

// DemoJobs returns a small fixed job list around Johannesburg.
func DemoJobs() []domain.Job {
	return []domain.Job{
		{
			ID:              "J1",
			Name:            "Retail Rooftop - Sandton",
			Lat:             -26.1076,
			Lng:             28.0567,
			DurationMinutes: 120,
			PreferredWindow: &domain.TimeWindow{Start: "09:00", End: "13:00"},
			SLAPriority:     5,
			RainProbability: ptr(0.2),
			Irradiance:      ptr(650),
		},
		{
			ID:              "J2",
			Name:            "Office Park - Rosebank",
			Lat:             -26.1457,
			Lng:             28.0410,
			DurationMinutes: 90,
			PreferredWindow: &domain.TimeWindow{Start: "10:00", End: "16:00"},
			SLAPriority:     3,
			RainProbability: ptr(0.1),
			Irradiance:      ptr(700),
		},
		{
			ID:              "J3",
			Name:            "Warehouse - Midrand",
			Lat:             -25.9995,
			Lng:             28.1283,
			DurationMinutes: 150,
			PreferredWindow: &domain.TimeWindow{Start: "08:00", End: "12:00"},
			SLAPriority:     4,
			RainProbability: ptr(0.35),
			Irradiance:      ptr(520),
		},
	}
}
