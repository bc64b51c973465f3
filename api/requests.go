package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type selectionRequest struct {
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	NumberOfGuests  int     `json:"number_of_guests"`
	SpecialRequests *string `json:"special_requests"`
}

func (r selectionRequest) toSelection() (domain.Selection, error) {
	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return domain.Selection{}, err
	}
	end, err := parseDate("end_date", r.EndDate)
	if err != nil {
		return domain.Selection{}, err
	}
	return domain.Selection{
		StartDate:       start,
		EndDate:         end,
		NumberOfGuests:  r.NumberOfGuests,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// parseDate accepts YYYY-MM-DD. An empty value yields the zero time so that
// the domain rules report the missing field.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", domain.ErrValidation, field)
	}
	return t, nil
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
