package calendar

// Error messages shown next to the start/end time fields.
const (
	StartTimeErrorMessage = "시작 시간은 종료 시간보다 빨라야 합니다."
	EndTimeErrorMessage   = "종료 시간은 시작 시간보다 늦어야 합니다."
)

// TimeValidation carries the per-field error messages for a start/end time
// pair. Empty strings mean the field is fine.
type TimeValidation struct {
	StartTimeError string
	EndTimeError   string
}

// OK reports whether neither field carries an error.
func (v TimeValidation) OK() bool {
	return v.StartTimeError == "" && v.EndTimeError == ""
}

// ValidateEventTimes checks that startTime comes strictly before endTime.
// Both messages are set together when the order is wrong or the times are
// equal; an empty field on either side yields no error, since an incomplete
// form is not yet wrong. "HH:MM" strings compare correctly lexicographically.
func ValidateEventTimes(startTime, endTime string) TimeValidation {
	if startTime == "" || endTime == "" {
		return TimeValidation{}
	}
	if startTime >= endTime {
		return TimeValidation{
			StartTimeError: StartTimeErrorMessage,
			EndTimeError:   EndTimeErrorMessage,
		}
	}
	return TimeValidation{}
}
