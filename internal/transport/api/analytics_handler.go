package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	svs AnalyticsServicer
}

func NewAnalyticsHandler(svs AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{
		svs: svs,
	}
}

// Overview GET RouteGroup + AnalyticsOverviewRoute.
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	q, ok := bindAnalyticsQuery(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	overview, err := h.svs.Overview(reqCtx, q.filter, q.period, q.limit)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newOverviewResponse(overview))
}

// Revenue GET RouteGroup + AnalyticsRevenueRoute.
func (h *AnalyticsHandler) Revenue(c *gin.Context) {
	q, ok := bindAnalyticsQuery(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.svs.Revenue(reqCtx, q.filter, q.period)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, RevenueResponse{
		Totals:  newTotalsResponse(report.Totals),
		Period:  string(report.Period),
		Buckets: newBucketsResponse(report.Buckets),
	})
}

// Businesses GET RouteGroup + AnalyticsBusinessesRoute.
func (h *AnalyticsHandler) Businesses(c *gin.Context) {
	q, ok := bindAnalyticsQuery(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.svs.Businesses(reqCtx, q.filter, q.limit)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newBusinessesResponse(report))
}

// Products GET RouteGroup + AnalyticsProductsRoute.
func (h *AnalyticsHandler) Products(c *gin.Context) {
	q, ok := bindAnalyticsQuery(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.svs.Products(reqCtx, q.filter, q.limit)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newProductsResponse(report))
}

// Profile GET RouteGroup + ProfileAnalyticsRoute. Профиль может смотреть только свою аналитику.
func (h *AnalyticsHandler) Profile(c *gin.Context) {
	profileID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if profileID != getProfileIDFromContext(c) {
		_ = c.AbortWithError(http.StatusForbidden, domain.ErrOwnerConflict).SetType(gin.ErrorTypePublic)
		return
	}

	q, ok := bindAnalyticsQuery(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	overview, err := h.svs.ProfileOverview(reqCtx, profileID, q.filter, q.period, q.limit)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, ProfileOverviewResponse{
		OverviewResponse:     newOverviewResponse(&overview.Overview),
		BusinessCount:        overview.BusinessCount,
		AssignedProductCount: overview.AssignedProductCount,
	})
}

// bindAnalyticsQuery разбирает параметры запроса. Для неверных параметров отвечает 400 и возвращает false.
func bindAnalyticsQuery(c *gin.Context) (*analyticsQuery, bool) {
	var params AnalyticsParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return nil, false
	}

	q, err := params.query()
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPeriod) {
			_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePublic)
			return nil, false
		}
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		return nil, false
	}
	return q, true
}
