package handlers

import (
	"net/http"

	"adsense_backend/internal/middleware"
	"adsense_backend/internal/models"
	"adsense_backend/internal/services"
	"adsense_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdHandler struct {
	*BaseHandler
	adService services.AdService
}

func NewAdHandler(base *BaseHandler, adService services.AdService) *AdHandler {
	return &AdHandler{
		BaseHandler: base,
		adService:   adService,
	}
}

// RegisterRoutes регистрирует маршруты объявлений.
// Роли разведены жестко: компании создают и удаляют,
// инфлюенсеры просматривают и реагируют.
func (h *AdHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ads := rg.Group("/ads")
	ads.Use(middleware.AuthMiddleware())
	{
		company := ads.Group("")
		company.Use(middleware.RequireRoles(models.UserRoleCompany))
		{
			company.POST("", h.Create)
			company.GET("/my-ads", h.ListForCompany)
			company.DELETE("/:adId", h.Delete)
		}

		influencer := ads.Group("")
		influencer.Use(middleware.RequireRoles(models.UserRoleInfluencer))
		{
			influencer.GET("", h.ListForInfluencer)
			influencer.GET("/accepted", h.ListAccepted)
			influencer.POST("/:adId/accept", h.Accept)
			influencer.POST("/:adId/reject", h.Reject)
			influencer.POST("/:adId/submit-proof", h.SubmitProof)
		}
	}
}

func (h *AdHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAdRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	ad, err := h.adService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ad)
}

func (h *AdHandler) ListForInfluencer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	ads, err := h.adService.ListForInfluencer(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ads)
}

func (h *AdHandler) ListForCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	ads, err := h.adService.ListForCompany(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ads)
}

func (h *AdHandler) ListAccepted(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	ads, err := h.adService.ListAccepted(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ads)
}

func (h *AdHandler) Accept(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.adService.Accept(db, userID, c.Param("adId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ad accepted successfully"})
}

func (h *AdHandler) Reject(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.adService.Reject(db, userID, c.Param("adId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ad rejected successfully"})
}

func (h *AdHandler) SubmitProof(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitProofRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.adService.SubmitProof(db, userID, c.Param("adId"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Proof submitted successfully"})
}

func (h *AdHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.adService.Delete(db, userID, c.Param("adId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ad deleted successfully"})
}
