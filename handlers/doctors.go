package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	doctorRepo "dermacare/database/repository/doctor"
	"dermacare/models"
	"dermacare/services/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const doctorsCacheKey = "doctors:all"

// DoctorHandler serves the doctor catalog and slot resolution endpoints.
type DoctorHandler struct {
	Doctors  doctorRepo.Repository
	Resolver scheduling.SlotResolver
	Cache    *redis.Client
	CacheTTL time.Duration
	Log      *zap.Logger
}

func NewDoctorHandler(doctors doctorRepo.Repository, resolver scheduling.SlotResolver, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{Doctors: doctors, Resolver: resolver, Cache: cache, CacheTTL: ttl, Log: logger}
}

// ListDoctorsHandler returns all dermatologist profiles. The list is
// served from a short-lived cache; staleness here only affects profile
// display, never booking correctness.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	ctx := c.Request.Context()

	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, doctorsCacheKey).Result(); err == nil {
			var doctors []models.Doctor
			if err := json.Unmarshal([]byte(cached), &doctors); err == nil {
				c.JSON(http.StatusOK, doctors)
				return
			}
		}
	}

	doctors, err := h.Doctors.GetAll(ctx)
	if err != nil {
		writeServiceError(c, scheduling.ErrUnavailable("could not load doctors"))
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}

	if h.Cache != nil {
		if data, err := json.Marshal(doctors); err == nil {
			if err := h.Cache.Set(context.Background(), doctorsCacheKey, data, h.CacheTTL).Err(); err != nil {
				h.Log.Warn("failed to cache doctor list", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, doctors)
}

// GetDoctorSlotsHandler resolves the free/busy breakdown for one doctor
// and date.
func (h *DoctorHandler) GetDoctorSlotsHandler(c *gin.Context) {
	doctorID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		writeServiceError(c, scheduling.ErrInvalidRequest("date is required"))
		return
	}

	view, err := h.Resolver.ResolveSlots(c.Request.Context(), doctorID, date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
