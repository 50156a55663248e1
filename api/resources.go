package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/service/resources"
)

type ResourceHandler struct {
	service resources.ResourceUseCase
}

type resourceResponse struct {
	ResourceKey    string `json:"resource_key"`
	Name           string `json:"name"`
	TotalUnits     int    `json:"total_units"`
	AvailableUnits int    `json:"available_units"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

func NewResourceHandler(service resources.ResourceUseCase) *ResourceHandler {
	return &ResourceHandler{service: service}
}

func (h *ResourceHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
}

func (h *ResourceHandler) list(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]resourceResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, resourceResponse{
			ResourceKey:    rec.ResourceKey,
			Name:           rec.Name,
			TotalUnits:     rec.TotalUnits,
			AvailableUnits: rec.AvailableUnits,
			UnitPriceCents: rec.UnitPriceCents,
		})
	}
	c.JSON(http.StatusOK, out)
}
