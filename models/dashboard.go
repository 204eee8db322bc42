package models

// DashboardOverview is the headline block of the manager dashboard.
type DashboardOverview struct {
	OpenJobs           int     `json:"open_jobs"`
	ActiveCandidates   int     `json:"active_candidates"`
	ApplicationsTotal  int     `json:"applications_total"`
	InterviewsUpcoming int     `json:"interviews_upcoming"`
	OffersPending      int     `json:"offers_pending"`
	HiresThisPeriod    int     `json:"hires_this_period"`
	AvgTimeToHireDays  float64 `json:"avg_time_to_hire_days"`
}

// PipelineStage is one bar of the application funnel.
type PipelineStage struct {
	Stage ApplicationStatus `json:"stage"`
	Count int               `json:"count"`
	// ConversionRate is the share of the previous stage that reached this one.
	ConversionRate float64 `json:"conversion_rate"`
}

// TimeToHirePoint is one sample of the time-to-hire series.
type TimeToHirePoint struct {
	Period  string  `json:"period"`
	AvgDays float64 `json:"avg_days"`
	Hires   int     `json:"hires"`
}

// SourceBreakdown counts candidates by acquisition source.
type SourceBreakdown struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
	Hired  int    `json:"hired"`
}
