package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mortgage-agent/domain"
	"mortgage-agent/service"
)

// CompareHandler exposes the scenario comparison engine over JSON.
type CompareHandler struct {
	Service *service.ComparisonService
	Logger  *zap.Logger
}

func (h *CompareHandler) Register(r *gin.Engine) {
	r.POST("/api/calculate", h.calculate)
}

func (h *CompareHandler) calculate(c *gin.Context) {
	var req domain.ComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.Service.Compare(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			Error(c, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("comparison failed", zap.Error(err))
		Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	Ok(c, result)
}
