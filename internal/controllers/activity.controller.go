package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"moodlog/internal/models"
	"moodlog/internal/service"
	"moodlog/internal/store"
	"moodlog/internal/utils"
)

type ActivityController struct {
	service *service.ActivityService
}

func NewActivityController(svc *service.ActivityService) *ActivityController {
	return &ActivityController{service: svc}
}

// CreateActivity handles POST /activity
func (ac *ActivityController) CreateActivity(c *gin.Context) {
	var input models.CreateActivityInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	activity, err := ac.service.CreateActivity(input)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "Activity already exists",
				"error":   "An activity with the provided ID already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create activity",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Activity created successfully",
		"data":    activity,
	})
}

// GetActivities handles GET /activity?start_date=&end_date=&limit=
func (ac *ActivityController) GetActivities(c *gin.Context) {
	var startDate, endDate *time.Time

	if raw := c.Query("start_date"); raw != "" {
		parsed, err := utils.ParseDate(raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid start_date",
				"error":   "start_date must be formatted as YYYY-MM-DD",
			})
			return
		}
		startDate = &parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := utils.ParseDate(raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid end_date",
				"error":   "end_date must be formatted as YYYY-MM-DD",
			})
			return
		}
		endDate = &parsed
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid limit",
				"error":   "limit must be a non-negative integer",
			})
			return
		}
		limit = parsed
	}

	activities, err := ac.service.GetActivities(startDate, endDate, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve activities",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activities retrieved successfully",
		"data":    activities,
	})
}

// GetRecentActivities handles GET /activity/recent?days=
func (ac *ActivityController) GetRecentActivities(c *gin.Context) {
	days, ok := ac.parseDays(c)
	if !ok {
		return
	}

	activities, err := ac.service.GetActivitiesForLastDays(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve activities",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activities retrieved successfully",
		"data":    activities,
	})
}

// GetDailyMoodData handles GET /activity/mood?days=
func (ac *ActivityController) GetDailyMoodData(c *gin.Context) {
	days, ok := ac.parseDays(c)
	if !ok {
		return
	}

	moodData, err := ac.service.GetDailyMoodData(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve mood data",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Mood data retrieved successfully",
		"data":    moodData,
	})
}

// GetActivityStats handles GET /activity/stats
func (ac *ActivityController) GetActivityStats(c *gin.Context) {
	activityStats, err := ac.service.GetActivityStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve stats",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Stats retrieved successfully",
		"data":    activityStats,
	})
}

// GetAchievements handles GET /activity/achievements
func (ac *ActivityController) GetAchievements(c *gin.Context) {
	achievements, err := ac.service.GetAchievements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve achievements",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Achievements retrieved successfully",
		"data":    achievements,
	})
}

// GetActivityByID handles GET /activity/:id
func (ac *ActivityController) GetActivityByID(c *gin.Context) {
	activity, err := ac.service.GetActivity(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Activity not found",
				"error":   "No activity exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve activity",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity retrieved successfully",
		"data":    activity,
	})
}

// UpdateActivity handles PUT /activity/:id with a partial body
func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	var update models.ActivityUpdate

	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	activity, err := ac.service.UpdateActivity(c.Param("id"), update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Activity not found",
				"error":   "No activity exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update activity",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity updated successfully",
		"data":    activity,
	})
}

// DeleteActivity handles DELETE /activity/:id
func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	if err := ac.service.DeleteActivity(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete activity",
			"error":   err.Error(),
		})
		return
	}

	// Deleting an id that never existed still succeeds.
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity deleted successfully",
		"data":    nil,
	})
}

func (ac *ActivityController) parseDays(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("days", strconv.Itoa(service.DefaultWindowDays))
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid days",
			"error":   "days must be a positive integer",
		})
		return 0, false
	}
	return days, true
}
