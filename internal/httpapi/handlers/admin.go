package handlers

import (
	"net/http"

	"github.com/axiomai/axiom-server/internal/common"
	"github.com/gin-gonic/gin"
)

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.AdminSvc.Dashboard(c.Request.Context())
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}
	common.OK(c, http.StatusOK, "", stats)
}
