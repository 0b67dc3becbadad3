package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"admin-panel-server/helper"
	"admin-panel-server/models"
	"admin-panel-server/repositories"
	"admin-panel-server/services"
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
	Helper           *helper.HTTPHelper
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService, h *helper.HTTPHelper) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, Helper: h}
}

func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	report, err := h.analyticsService.Dashboard()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) GetArticleAnalytics(c *gin.Context) {
	window, err := parseWindow(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	report, err := h.analyticsService.ArticleAnalytics(window)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func parseWindow(startDate, endDate string) (repositories.TimeWindow, error) {
	var window repositories.TimeWindow

	if startDate != "" {
		t, err := parseDate(startDate)
		if err != nil {
			return window, models.ValidationError{Message: "Invalid startDate"}
		}
		window.Start = &t
	}

	if endDate != "" {
		t, err := parseDate(endDate)
		if err != nil {
			return window, models.ValidationError{Message: "Invalid endDate"}
		}
		window.End = &t
	}

	return window, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
