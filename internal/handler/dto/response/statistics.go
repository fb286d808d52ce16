package response

import (
	"rental-inventory/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type UtilizationResponse struct {
	DesignCode       string `json:"design_code"`
	Size             string `json:"size"`
	TotalQuantity    int    `json:"total_quantity"`
	ReservedQuantity int    `json:"reserved_quantity"`
	UtilizationRate  int    `json:"utilization_rate"`
}

type SalesRankResponse struct {
	DesignCode string          `json:"design_code"`
	Size       string          `json:"size"`
	Quantity   int             `json:"quantity"`
	Revenue    decimal.Decimal `json:"revenue"`
}

type WeeklyStatisticsResponse struct {
	WeekStart        string                 `json:"week_start"`
	WeekEnd          string                 `json:"week_end"`
	ProjectedRevenue decimal.Decimal        `json:"projected_revenue"`
	SalesRevenue     decimal.Decimal        `json:"sales_revenue"`
	TopUtilization   []*UtilizationResponse `json:"top_utilization"`
	TopSales         []*SalesRankResponse   `json:"top_sales"`
}

func FromStatisticsView(v *queries.StatisticsView) (*WeeklyStatisticsResponse, error) {
	res := &WeeklyStatisticsResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	if res.TopUtilization == nil {
		res.TopUtilization = []*UtilizationResponse{}
	}
	if res.TopSales == nil {
		res.TopSales = []*SalesRankResponse{}
	}
	return res, nil
}
