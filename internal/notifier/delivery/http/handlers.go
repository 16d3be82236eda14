package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-scheduler/internal/model"
	"calendar-scheduler/pkg/response"
)

type notificationResp struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type listResp struct {
	Notifications []notificationResp `json:"notifications"`
}

func newListResp(notifications []model.Notification) listResp {
	out := make([]notificationResp, len(notifications))
	for i, n := range notifications {
		out[i] = notificationResp{ID: n.ID, Message: n.Message}
	}
	return listResp{Notifications: out}
}

// List godoc
// @Summary     List pending notifications
// @Description Returns the alert backlog, oldest first. Entries stay until
// @Description dismissed or pushed out by newer alerts.
// @Tags        Notifications
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/notifications [GET]
func (h *handler) List(c *gin.Context) {
	response.OK(c, newListResp(h.n.Recent()))
}

// Dismiss godoc
// @Summary     Dismiss a notification
// @Description Removes a notification from the backlog. The source event
// @Description will not alert again.
// @Tags        Notifications
// @Produce     json
// @Param       id path string true "Notification ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/notifications/{id} [DELETE]
func (h *handler) Dismiss(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	h.n.Dismiss(id)
	response.OK(c, nil)
}
