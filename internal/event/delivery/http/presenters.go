package http

import (
	"time"

	"calendar-scheduler/internal/calendar"
	"calendar-scheduler/internal/event"
	"calendar-scheduler/internal/model"
)

// --- Request DTOs ---

type repeatReq struct {
	Type     string `json:"type"     binding:"omitempty,oneof=none daily weekly monthly yearly"`
	Interval int    `json:"interval" binding:"omitempty,min=0"`
	EndDate  string `json:"endDate"  binding:"omitempty,datetime=2006-01-02"`
}

func (r repeatReq) toModel() model.RepeatInfo {
	t := model.RepeatType(r.Type)
	if t == "" {
		t = model.RepeatNone
	}
	return model.RepeatInfo{
		Type:     t,
		Interval: r.Interval,
		EndDate:  r.EndDate,
	}
}

type createReq struct {
	Title            string    `json:"title"            binding:"required,min=1,max=255"`
	Date             string    `json:"date"             binding:"required,datetime=2006-01-02"`
	StartTime        string    `json:"startTime"        binding:"required,datetime=15:04"`
	EndTime          string    `json:"endTime"          binding:"required,datetime=15:04"`
	Description      string    `json:"description"      binding:"max=1000"`
	Location         string    `json:"location"         binding:"max=255"`
	Category         string    `json:"category"         binding:"max=100"`
	Repeat           repeatReq `json:"repeat"`
	NotificationTime int       `json:"notificationTime" binding:"omitempty,min=0"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() event.CreateEventInput {
	return event.CreateEventInput{
		Title:            r.Title,
		Date:             r.Date,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		Description:      r.Description,
		Location:         r.Location,
		Category:         r.Category,
		Repeat:           r.Repeat.toModel(),
		NotificationTime: r.NotificationTime,
	}
}

// ---

type updateReq struct {
	ID               string    `json:"-"` // populated from URI param
	Title            string    `json:"title"            binding:"required,min=1,max=255"`
	Date             string    `json:"date"             binding:"required,datetime=2006-01-02"`
	StartTime        string    `json:"startTime"        binding:"required,datetime=15:04"`
	EndTime          string    `json:"endTime"          binding:"required,datetime=15:04"`
	Description      string    `json:"description"      binding:"max=1000"`
	Location         string    `json:"location"         binding:"max=255"`
	Category         string    `json:"category"         binding:"max=100"`
	Repeat           repeatReq `json:"repeat"`
	NotificationTime int       `json:"notificationTime" binding:"omitempty,min=0"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() event.UpdateEventInput {
	return event.UpdateEventInput{
		ID:               r.ID,
		Title:            r.Title,
		Date:             r.Date,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		Description:      r.Description,
		Location:         r.Location,
		Category:         r.Category,
		Repeat:           r.Repeat.toModel(),
		NotificationTime: r.NotificationTime,
	}
}

// ---

type searchReq struct {
	Term string `form:"term"`
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	View string `form:"view" binding:"omitempty,oneof=week month"`
}

func (r searchReq) validate() error { return nil }

func (r searchReq) toInput() event.SearchEventsInput {
	ref := time.Now()
	if r.Date != "" {
		ref = calendar.ParseDate(r.Date)
	}
	view := model.ViewMode(r.View)
	if view == "" {
		view = model.ViewMonth
	}
	return event.SearchEventsInput{
		Term:          r.Term,
		ReferenceDate: ref,
		View:          view,
	}
}

// --- Response DTOs ---

type repeatResp struct {
	Type     string `json:"type"`
	Interval int    `json:"interval"`
	EndDate  string `json:"endDate,omitempty"`
}

type eventResp struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Date             string     `json:"date"`
	StartTime        string     `json:"startTime"`
	EndTime          string     `json:"endTime"`
	Description      string     `json:"description"`
	Location         string     `json:"location"`
	Category         string     `json:"category"`
	Repeat           repeatResp `json:"repeat"`
	NotificationTime int        `json:"notificationTime"`
}

func newEventResp(e model.Event) eventResp {
	return eventResp{
		ID:               e.ID,
		Title:            e.Title,
		Date:             e.Date,
		StartTime:        e.StartTime,
		EndTime:          e.EndTime,
		Description:      e.Description,
		Location:         e.Location,
		Category:         e.Category,
		Repeat:           repeatResp{Type: string(e.Repeat.Type), Interval: e.Repeat.Interval, EndDate: e.Repeat.EndDate},
		NotificationTime: e.NotificationTime,
	}
}

func newEventResps(events []model.Event) []eventResp {
	out := make([]eventResp, len(events))
	for i, e := range events {
		out[i] = newEventResp(e)
	}
	return out
}

type createResp struct {
	Event    eventResp   `json:"event"`
	Overlaps []eventResp `json:"overlaps"`
}

func (h *handler) newCreateResp(out event.CreateEventOutput) createResp {
	return createResp{
		Event:    newEventResp(out.Event),
		Overlaps: newEventResps(out.Overlaps),
	}
}

type listResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newListResp(out event.ListEventsOutput) listResp {
	return listResp{Events: newEventResps(out.Events)}
}

func (h *handler) newSearchResp(out event.SearchEventsOutput) listResp {
	return listResp{Events: newEventResps(out.Events)}
}

type detailResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newDetailResp(out event.DetailEventOutput) detailResp {
	return detailResp{Event: newEventResp(out.Event)}
}

type updateResp struct {
	Event    eventResp   `json:"event"`
	Overlaps []eventResp `json:"overlaps"`
}

func (h *handler) newUpdateResp(out event.UpdateEventOutput) updateResp {
	return updateResp{
		Event:    newEventResp(out.Event),
		Overlaps: newEventResps(out.Overlaps),
	}
}
