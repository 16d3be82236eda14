package http

import (
	"time"

	"calendar-scheduler/internal/calendar"
	"calendar-scheduler/pkg/dategrid"
)

type viewReq struct {
	Date      string `form:"date"      binding:"omitempty,datetime=2006-01-02"`
	WeekStart string `form:"weekStart" binding:"omitempty,oneof=sunday monday"`
}

func (r viewReq) reference() time.Time {
	if r.Date == "" {
		return time.Now()
	}
	return calendar.ParseDate(r.Date)
}

type holidaysResp struct {
	Holidays map[string]string `json:"holidays"`
}

type monthResp struct {
	Label    string            `json:"label"`
	Weeks    [][]int           `json:"weeks"`
	Holidays map[string]string `json:"holidays"`
}

func (h *handler) newMonthResp(ref time.Time) monthResp {
	return monthResp{
		Label:    dategrid.FormatMonth(ref),
		Weeks:    dategrid.MonthWeeks(ref),
		Holidays: h.holidays.ForMonth(ref),
	}
}

type weekResp struct {
	Label    string            `json:"label"`
	Dates    []string          `json:"dates"`
	Holidays map[string]string `json:"holidays"`
}

func (h *handler) newWeekResp(ref time.Time, startMonday bool) weekResp {
	week := dategrid.WeekDates(ref, startMonday)
	dates := make([]string, len(week))
	for i, d := range week {
		dates[i] = dategrid.FormatDate(d)
	}
	return weekResp{
		Label:    dategrid.FormatWeek(ref),
		Dates:    dates,
		Holidays: h.holidays.ForMonth(ref),
	}
}
