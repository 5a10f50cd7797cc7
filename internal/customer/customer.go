package customer

import (
	"fmt"
	"strconv"
)

// Null is stored in place of empty text fields
const Null = "null"

// JobType is the job category of a customer
type JobType int

const (
	BackendDeveloper JobType = iota
	FrontendDeveloper
	FullstackDeveloper
	MobileDeveloper
	EmbeddedSoftwareEngineer
	GameDeveloper
	DevopsEngineer
	TestEngineer

	jobTypeCount
)

var jobTypeNames = [jobTypeCount]string{
	"BACKEND_DEVELOPER",
	"FRONTEND_DEVELOPER",
	"FULLSTACK_DEVELOPER",
	"MOBILE_DEVELOPER",
	"EMBEDDED_SOFTWARE_ENGINEER",
	"GAME_DEVELOPER",
	"DEVOPS_ENGINEER",
	"TEST_ENGINEER",
}

// JobTypeFromInt maps an ordinal to a JobType. Anything outside the
// known range becomes BackendDeveloper.
func JobTypeFromInt(n int) JobType {
	if n >= int(BackendDeveloper) && n < int(jobTypeCount) {
		return JobType(n)
	}
	return BackendDeveloper
}

func (j JobType) String() string {
	if j >= BackendDeveloper && j < jobTypeCount {
		return jobTypeNames[j]
	}
	return "UNKNOWN_JOB_TYPE"
}

// Date is a day/month/year triple. The zero value means unknown.
type Date struct {
	Day   int
	Month int
	Year  int
}

func (d Date) String() string {
	return fmt.Sprintf("%02d.%02d.%04d", d.Day, d.Month, d.Year)
}

// IsZero reports whether d is the unknown date
func (d Date) IsZero() bool {
	return d == Date{}
}

// Customer is a row of the customer table
type Customer struct {
	ID            int
	Name          string
	Mail          string
	JobType       JobType
	EmailVerified bool
	DateOfBirth   Date
}

// FromFields builds a customer (without an id) from positional text fields
// in the order name, mail, job type, email verified, date. Missing or empty
// fields take their defaults.
func FromFields(fields []string) Customer {
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	c := Customer{
		Name: TextOrNull(field(0)),
		Mail: TextOrNull(field(1)),
	}

	if f := field(2); f != "" {
		c.JobType = JobTypeFromInt(ParseInt(f))
	}
	if f := field(3); f != "" {
		c.EmailVerified = ParseVerified(f)
	}
	c.DateOfBirth = ParseDate(field(4))

	return c
}

// TextOrNull returns Null for empty text
func TextOrNull(text string) string {
	if text == "" {
		return Null
	}
	return text
}

// ParseVerified accepts the literals true and false, anything else is
// treated as a number where non-zero means verified.
func ParseVerified(text string) bool {
	switch text {
	case "true":
		return true
	case "false":
		return false
	}
	return ParseInt(text) != 0
}

// ParseInt reads the leading integer of text the way atoi does: leading
// white space and a sign are allowed, trailing text is ignored and input
// without digits is 0.
func ParseInt(text string) int {
	n, _, ok := scanInt(text, 0)
	if !ok {
		return 0
	}
	return n
}

// ParseDate reads a D.M.Y date. Empty input, "0.0.0" and anything that
// does not scan yield the zero Date.
func ParseDate(text string) Date {
	if text == "" || text == "0.0.0" {
		return Date{}
	}

	var parts [3]int
	pos := 0
	for i := range parts {
		if i > 0 {
			if pos >= len(text) || text[pos] != '.' {
				return Date{}
			}
			pos++
		}

		n, next, ok := scanInt(text, pos)
		if !ok {
			return Date{}
		}
		parts[i] = n
		pos = next
	}

	return Date{Day: parts[0], Month: parts[1], Year: parts[2]}
}

// scanInt scans an optionally signed decimal integer starting at pos,
// skipping leading white space. It returns the value and the position
// after the last digit.
func scanInt(text string, pos int) (int, int, bool) {
	for pos < len(text) && isSpace(text[pos]) {
		pos++
	}

	start := pos
	if pos < len(text) && (text[pos] == '+' || text[pos] == '-') {
		pos++
	}

	digits := pos
	for pos < len(text) && text[pos] >= '0' && text[pos] <= '9' {
		pos++
	}
	if pos == digits {
		return 0, start, false
	}

	n, err := strconv.Atoi(text[start:pos])
	if err != nil {
		return 0, start, false
	}

	return n, pos, true
}

// ScanInt reads a leading integer like ParseInt but also reports whether
// one was present.
func ScanInt(text string) (int, bool) {
	n, _, ok := scanInt(text, 0)
	return n, ok
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
