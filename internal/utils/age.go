package utils

import "time"

// DateLayout is the wire format for dates of birth.
const DateLayout = "2006-01-02"

// AgeFromDOB returns whole years elapsed since dob, or 0 when dob does not
// parse. Matches how the profile summaries report age.
func AgeFromDOB(dob string, now time.Time) int {
	born, err := time.Parse(DateLayout, dob)
	if err != nil {
		return 0
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
