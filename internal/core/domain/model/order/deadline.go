package order

import "time"

// DeadlineLayout is the date layout the intake flow prompts administrators to
// use. Deadlines are stored verbatim and only interpreted against this layout
// when rendering the order list.
const DeadlineLayout = "2006-01-02"

// IsOverdue reports whether a deadline lies strictly before today.
// A deadline that does not parse as a date is never overdue; the text is
// accepted at intake without validation, so unparseable values are expected.
func IsOverdue(deadline string, today time.Time) bool {
	d, err := time.Parse(DeadlineLayout, deadline)
	if err != nil {
		return false
	}

	y, m, day := today.Date()
	return d.Before(time.Date(y, m, day, 0, 0, 0, 0, time.UTC))
}
