package date

// Period is a calendar period.
type Period int

const (
	Daily Period = iota
	Monthly
	Quarterly
	Yearly
)
