package models

import (
	"net/url"
	"strconv"
	"time"
)

// Query parameter names recognised by the backend list endpoints. Filters
// only ever emit these keys.
const (
	QueryPage         = "page"
	QueryPageSize     = "page_size"
	QuerySearch       = "search"
	QueryStatus       = "status"
	QueryDepartmentID = "department_id"
	QueryCategoryID   = "category_id"
	QueryJobID        = "job_id"
	QueryCandidateID  = "candidate_id"
	QuerySkill        = "skill"
	QueryApplication  = "application_id"
	QueryFrom         = "from"
	QueryTo           = "to"
	QueryActorID      = "actor_id"
	QueryEntity       = "entity"
	QueryAction       = "action"
	QueryType         = "type"
)

// Paging selects a page of a list endpoint. Zero values are omitted so the
// backend applies its defaults.
type Paging struct {
	Page     int
	PageSize int
}

func (p Paging) apply(v url.Values) {
	if p.Page > 0 {
		v.Set(QueryPage, strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		v.Set(QueryPageSize, strconv.Itoa(p.PageSize))
	}
}

func setNonEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setTime(v url.Values, key string, t time.Time) {
	if !t.IsZero() {
		v.Set(key, t.UTC().Format(time.DateOnly))
	}
}

// JobFilter narrows GET /jobs.
type JobFilter struct {
	Paging
	Status       JobStatus
	DepartmentID string
	CategoryID   string
	Search       string
}

// Values encodes the filter as query parameters.
func (f JobFilter) Values() url.Values {
	v := url.Values{}
	f.Paging.apply(v)
	setNonEmpty(v, QueryStatus, string(f.Status))
	setNonEmpty(v, QueryDepartmentID, f.DepartmentID)
	setNonEmpty(v, QueryCategoryID, f.CategoryID)
	setNonEmpty(v, QuerySearch, f.Search)
	return v
}

// CandidateFilter narrows GET /candidates.
type CandidateFilter struct {
	Paging
	Search string
	Skill  string
}

// Values encodes the filter as query parameters.
func (f CandidateFilter) Values() url.Values {
	v := url.Values{}
	f.Paging.apply(v)
	setNonEmpty(v, QuerySearch, f.Search)
	setNonEmpty(v, QuerySkill, f.Skill)
	return v
}

// ApplicationFilter narrows GET /applications.
type ApplicationFilter struct {
	Paging
	JobID       string
	CandidateID string
	Status      ApplicationStatus
}

// Values encodes the filter as query parameters.
func (f ApplicationFilter) Values() url.Values {
	v := url.Values{}
	f.Paging.apply(v)
	setNonEmpty(v, QueryJobID, f.JobID)
	setNonEmpty(v, QueryCandidateID, f.CandidateID)
	setNonEmpty(v, QueryStatus, string(f.Status))
	return v
}

// InterviewFilter narrows GET /interviews.
type InterviewFilter struct {
	Paging
	ApplicationID string
	Status        InterviewStatus
	From          time.Time
	To            time.Time
}

// Values encodes the filter as query parameters.
func (f InterviewFilter) Values() url.Values {
	v := url.Values{}
	f.Paging.apply(v)
	setNonEmpty(v, QueryApplication, f.ApplicationID)
	setNonEmpty(v, QueryStatus, string(f.Status))
	setTime(v, QueryFrom, f.From)
	setTime(v, QueryTo, f.To)
	return v
}

// AuditLogFilter narrows GET /audit-logs.
type AuditLogFilter struct {
	Paging
	ActorID string
	Entity  string
	Action  string
	From    time.Time
	To      time.Time
}

// Values encodes the filter as query parameters.
func (f AuditLogFilter) Values() url.Values {
	v := url.Values{}
	f.Paging.apply(v)
	setNonEmpty(v, QueryActorID, f.ActorID)
	setNonEmpty(v, QueryEntity, f.Entity)
	setNonEmpty(v, QueryAction, f.Action)
	setTime(v, QueryFrom, f.From)
	setTime(v, QueryTo, f.To)
	return v
}

// TemplateFilter narrows GET /email-templates.
type TemplateFilter struct {
	Paging
	Type string
}

// Values encodes the filter as query parameters.
func (f TemplateFilter) Values() url.Values {
	v := url.Values{}
	f.Paging.apply(v)
	setNonEmpty(v, QueryType, f.Type)
	return v
}

// DashboardFilter scopes every manager dashboard query.
type DashboardFilter struct {
	From         time.Time
	To           time.Time
	DepartmentID string
	JobID        string
}

// Values encodes the filter as query parameters.
func (f DashboardFilter) Values() url.Values {
	v := url.Values{}
	setTime(v, QueryFrom, f.From)
	setTime(v, QueryTo, f.To)
	setNonEmpty(v, QueryDepartmentID, f.DepartmentID)
	setNonEmpty(v, QueryJobID, f.JobID)
	return v
}
