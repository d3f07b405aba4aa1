package services

import (
	"math"
	"time"

	"github.com/Dosada05/club-manager/models"
)

// percentage округляет 100*part/total; при total == 0 возвращает 0,
// а не падает на делении.
func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

func parseEventDate(e *models.Event) (time.Time, bool) {
	d, err := time.Parse(models.DateLayout, e.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// inWindow — полуоткрытое окно [from, to).
func inWindow(d, from, to time.Time) bool {
	return !d.Before(from) && d.Before(to)
}

func validAttendanceStatus(s models.AttendanceStatus) bool {
	switch s {
	case models.AttendancePresent, models.AttendanceLate, models.AttendanceAbsent,
		models.AttendancePending, models.AttendanceExcused:
		return true
	}
	return false
}
