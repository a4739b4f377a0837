package response

import (
	"beauty-booking/internal/usecase/queries"
)

type MonthlyRevenueResponse struct {
	Month          string `json:"month"`
	Revenue        string `json:"revenue"`
	RevenueCents   int64  `json:"revenueCents"`
	CompletedCount int64  `json:"completedCount"`
}

type RevenueReportResponse struct {
	Months            []MonthlyRevenueResponse `json:"months"`
	TotalRevenue      string                   `json:"totalRevenue"`
	TotalRevenueCents int64                    `json:"totalRevenueCents"`
	TotalCompleted    int64                    `json:"totalCompleted"`
}

func FromRevenueReport(r *queries.RevenueReport) (*RevenueReportResponse, error) {
	months := make([]MonthlyRevenueResponse, 0, len(r.Months))
	for _, m := range r.Months {
		revenue, err := formatPrice(m.RevenueCents)
		if err != nil {
			return nil, err
		}
		months = append(months, MonthlyRevenueResponse{
			Month:          m.Month,
			Revenue:        revenue,
			RevenueCents:   m.RevenueCents,
			CompletedCount: m.CompletedCount,
		})
	}

	total, err := formatPrice(r.TotalRevenueCents)
	if err != nil {
		return nil, err
	}
	return &RevenueReportResponse{
		Months:            months,
		TotalRevenue:      total,
		TotalRevenueCents: r.TotalRevenueCents,
		TotalCompleted:    r.TotalCompleted,
	}, nil
}
