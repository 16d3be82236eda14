package http

import (
	"github.com/gin-gonic/gin"

	"calendar-scheduler/pkg/response"
)

// Month godoc
// @Summary     Month view grid
// @Description Returns the month grid around a reference date: week rows of
// @Description day numbers (0 marks cells outside the month), the view label
// @Description and the month's holidays.
// @Tags        Calendar
// @Produce     json
// @Param       date query string false "Reference date (YYYY-MM-DD, default: today)"
// @Success     200 {object} monthResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar/month [GET]
func (h *handler) Month(c *gin.Context) {
	req, err := h.processViewReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newMonthResp(req.reference()))
}

// Week godoc
// @Summary     Week view dates
// @Description Returns the seven dates of the week containing a reference
// @Description date, plus the view label and the holidays of the month.
// @Tags        Calendar
// @Produce     json
// @Param       date      query string false "Reference date (YYYY-MM-DD, default: today)"
// @Param       weekStart query string false "First day of the week (sunday/monday, default: configured week_start)"
// @Success     200 {object} weekResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar/week [GET]
func (h *handler) Week(c *gin.Context) {
	req, err := h.processViewReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	weekStart := req.WeekStart
	if weekStart == "" {
		weekStart = h.weekStart
	}
	response.OK(c, h.newWeekResp(req.reference(), weekStart == "monday"))
}

// Holidays godoc
// @Summary     Holidays of a month
// @Description Returns the public holidays of the month containing the
// @Description reference date, keyed by ISO date.
// @Tags        Calendar
// @Produce     json
// @Param       date query string false "Reference date (YYYY-MM-DD, default: today)"
// @Success     200 {object} holidaysResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/holidays [GET]
func (h *handler) Holidays(c *gin.Context) {
	req, err := h.processViewReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, holidaysResp{Holidays: h.holidays.ForMonth(req.reference())})
}

func (h *handler) processViewReq(c *gin.Context) (viewReq, error) {
	var req viewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
