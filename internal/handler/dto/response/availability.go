package response

import (
	"rental-inventory/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AvailabilityItemResponse struct {
	DesignCode        string `json:"design_code"`
	Size              string `json:"size"`
	TotalQuantity     int    `json:"total_quantity"`
	ReservedQuantity  int    `json:"reserved_quantity"`
	RemainingQuantity int    `json:"remaining_quantity"`
	UtilizationRate   int    `json:"utilization_rate"`
	SoldOut           bool   `json:"sold_out"`
}

type WeeklyAvailabilityResponse struct {
	WeekStart string                      `json:"week_start"`
	WeekEnd   string                      `json:"week_end"`
	Items     []*AvailabilityItemResponse `json:"items"`
}

type CandidatesResponse struct {
	WeekStart string                      `json:"week_start,omitempty"`
	WeekEnd   string                      `json:"week_end,omitempty"`
	Items     []*AvailabilityItemResponse `json:"items"`
}

func FromWeeklyAvailabilityView(v *queries.WeeklyAvailabilityView) (*WeeklyAvailabilityResponse, error) {
	res := &WeeklyAvailabilityResponse{Items: []*AvailabilityItemResponse{}}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []*AvailabilityItemResponse{}
	}
	return res, nil
}

func FromCandidateView(v *queries.CandidateView) (*CandidatesResponse, error) {
	res := &CandidatesResponse{Items: []*AvailabilityItemResponse{}}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []*AvailabilityItemResponse{}
	}
	return res, nil
}
