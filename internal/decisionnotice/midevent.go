// internal/decisionnotice/midevent.go
package decisionnotice

import (
	"time"

	"tribunal-workers/internal/decisionnotice/activity"
)

const (
	noActivitySelected = "At least one activity must be selected."
	endBeforeStart     = "Decision notice end date must be after decision notice start date"
	invalidStartDate   = "Decision notice start date is not a valid date"
	invalidEndDate     = "Decision notice end date is not a valid date"

	dateLayout = "2006-01-02"
)

// MidEventResult drives page flow while the adjudicator is still answering.
type MidEventResult struct {
	PointsTotal        int      `json:"pointsTotal"`
	ShowRegulationPage bool     `json:"showRegulationPage"`
	Errors             []string `json:"validationErrors"`
}

func (r *MidEventResult) Valid() bool { return len(r.Errors) == 0 }

// MidEvent totals the points, decides whether the first regulation page is
// shown and runs the page-level checks. It never consults the catalogs.
func (e *Engine) MidEvent(c *CaseAnswers) (*MidEventResult, error) {
	cat, err := e.Catalog(c.Benefit)
	if err != nil {
		return nil, err
	}
	total, err := cat.Points(c)
	if err != nil {
		return nil, err
	}

	res := &MidEventResult{
		PointsTotal:        total,
		ShowRegulationPage: total < activity.Threshold,
		Errors:             []string{},
	}

	activitiesShown := c.PhysicalDisabilities != nil || c.MentalAssessment != nil
	if c.WcaAppeal && activitiesShown && len(c.PhysicalDisabilities) == 0 && len(c.MentalAssessment) == 0 {
		res.Errors = append(res.Errors, noActivitySelected)
	}
	res.Errors = append(res.Errors, checkDates(c.StartDate, c.EndDate)...)
	return res, nil
}

func checkDates(start, end string) []string {
	var errs []string
	var startDate, endDate time.Time
	var err error

	if start != "" {
		if startDate, err = time.Parse(dateLayout, start); err != nil {
			errs = append(errs, invalidStartDate)
		}
	}
	if end != "" {
		if endDate, err = time.Parse(dateLayout, end); err != nil {
			errs = append(errs, invalidEndDate)
		}
	}
	if len(errs) > 0 || start == "" || end == "" {
		return errs
	}
	if !startDate.Before(endDate) {
		errs = append(errs, endBeforeStart)
	}
	return errs
}
