package records

import "time"

type Education struct {
	RecordMeta
	Degree      string `json:"degree"`
	Subject     string `json:"subject,omitempty"`
	Year        *int   `json:"year,omitempty"`
	Institution string `json:"institution,omitempty"`
}

type Posting struct {
	RecordMeta
	CollegeName     string     `json:"collegeName,omitempty"`
	PayLevel        string     `json:"payLevel,omitempty"`
	Designation     string     `json:"designation,omitempty"`
	FromDate        *time.Time `json:"fromDate,omitempty"`
	ToDate          *time.Time `json:"toDate,omitempty"`
	TillDate        bool       `json:"tillDate"`
	OfficeOrderNo   string     `json:"officeOrderNo,omitempty"`
	OfficeOrderDate *time.Time `json:"officeOrderDate,omitempty"`
	Place           string     `json:"place,omitempty"`
}

type Deputation struct {
	RecordMeta
	CollegeName     string     `json:"collegeName,omitempty"`
	PayLevel        string     `json:"payLevel,omitempty"`
	Designation     string     `json:"designation,omitempty"`
	FromDate        *time.Time `json:"fromDate,omitempty"`
	ToDate          *time.Time `json:"toDate,omitempty"`
	TillDate        bool       `json:"tillDate"`
	OfficeOrderNo   string     `json:"officeOrderNo,omitempty"`
	OfficeOrderDate *time.Time `json:"officeOrderDate,omitempty"`
	Place           string     `json:"place,omitempty"`
}

// Apar is one year's annual performance appraisal report entry.
type Apar struct {
	RecordMeta
	Year          int        `json:"year"`
	SubmittedDate *time.Time `json:"submittedDate,omitempty"`
	Submitted     bool       `json:"submitted"`
}

type PropertyReturn struct {
	RecordMeta
	Year          int        `json:"year"`
	SubmittedDate *time.Time `json:"submittedDate,omitempty"`
	Submitted     bool       `json:"submitted"`
}

type Training struct {
	RecordMeta
	AllModulesDone        bool       `json:"allModulesDone"`
	OverallCompletionDate *time.Time `json:"overallCompletionDate,omitempty"`
	CertificateNo         string     `json:"certificateNo,omitempty"`
	Area                  string     `json:"area,omitempty"`
	Institute             string     `json:"institute,omitempty"`
	DurationWeeks         *float64   `json:"durationWeeks,omitempty"`
	CompletionDate        *time.Time `json:"completionDate,omitempty"`
	CertificateNoDetail   string     `json:"certificateNoDetail,omitempty"`
}

type Award struct {
	RecordMeta
	Name    string     `json:"name"`
	Year    *int       `json:"year,omitempty"`
	Date    *time.Time `json:"date,omitempty"`
	Remarks string     `json:"remarks,omitempty"`
}

type PayScaleChange struct {
	RecordMeta
	PayLevel  string     `json:"payLevel"`
	NotifNo   string     `json:"notifNo,omitempty"`
	NotifDate *time.Time `json:"notifDate,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	TillDate  bool       `json:"tillDate"`
}

type AdvanceIncrement struct {
	RecordMeta
	Qualification string     `json:"qualification"`
	PassingYear   *int       `json:"passingYear,omitempty"`
	NotifNo       string     `json:"notifNo,omitempty"`
	NotifDate     *time.Time `json:"notifDate,omitempty"`
	Count         int        `json:"count"`
	PayLevel      string     `json:"payLevel,omitempty"`
	EffectiveFrom *time.Time `json:"effectiveFrom,omitempty"`
}

type LeaveRecord struct {
	RecordMeta
	LeaveType       string     `json:"leaveType"`
	PeriodFrom      *time.Time `json:"periodFrom"`
	PeriodTo        *time.Time `json:"periodTo"`
	OfficeOrderNo   string     `json:"officeOrderNo,omitempty"`
	OfficeOrderDate *time.Time `json:"officeOrderDate,omitempty"`
}

type Allegation struct {
	RecordMeta
	HasAllegation bool   `json:"hasAllegation"`
	Details       string `json:"details,omitempty"`
}
