package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"menulink/internal/models/request_models"
	"menulink/internal/services"
	"menulink/pkg/utils"
)

type RestaurantController struct {
	restaurantService services.RestaurantServiceInterface
}

func NewRestaurantController(restaurantService services.RestaurantServiceInterface) *RestaurantController {
	return &RestaurantController{
		restaurantService: restaurantService,
	}
}

// CreateRestaurant godoc
// @Summary Create a restaurant with a fresh trial membership
// @Tags Restaurants
// @Accept json
// @Produce json
// @Param request body request_models.CreateRestaurantRequest true "Restaurant payload"
// @Security BearerAuth
// @Router /restaurants/create-one [post]
func (r *RestaurantController) CreateRestaurant(c *gin.Context) {

	var request request_models.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	email := c.GetString("email")
	if email == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	restaurant, err := r.restaurantService.CreateRestaurant(c.Request.Context(), email, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"restaurant": restaurant}, "Restaurant created successfully")
}

// CheckSlug godoc
// @Summary Look up a restaurant by slug
// @Tags Restaurants
// @Produce json
// @Param slug path string true "Restaurant slug"
// @Router /restaurants/check-slug/{slug} [get]
func (r *RestaurantController) CheckSlug(c *gin.Context) {

	slug := c.Param("slug")

	restaurant, err := r.restaurantService.CheckSlug(c.Request.Context(), slug)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if restaurant == nil {
		utils.RespondSuccess(c, gin.H{"exists": false}, "")
		return
	}

	utils.RespondSuccess(c, gin.H{"exists": true, "restaurant": restaurant}, "")
}

// PublicData godoc
// @Summary Public data for a restaurant's menu page, membership gate applied
// @Tags Restaurants
// @Produce json
// @Param slug path string true "Restaurant slug"
// @Router /restaurants/public-data/{slug} [get]
func (r *RestaurantController) PublicData(c *gin.Context) {

	slug := c.Param("slug")

	restaurant, err := r.restaurantService.PublicData(c.Request.Context(), slug)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"restaurant": restaurant}, "")
}

// MembershipStatus godoc
// @Summary Membership classification for dashboard badges and pricing
// @Tags Restaurants
// @Produce json
// @Param slug path string true "Restaurant slug"
// @Router /restaurants/membership/{slug} [get]
func (r *RestaurantController) MembershipStatus(c *gin.Context) {

	slug := c.Param("slug")

	status, err := r.restaurantService.MembershipStatus(c.Request.Context(), slug)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "")
}

// ListRestaurants godoc
// @Summary List every restaurant with its owner and membership state
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Router /admin/all-restaurants [get]
func (r *RestaurantController) ListRestaurants(c *gin.Context) {

	rows, err := r.restaurantService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rows, "")
}

// OverrideMembership godoc
// @Summary Admin override of a restaurant's membership type and expiry
// @Tags Admin
// @Accept json
// @Produce json
// @Param restaurantId path int true "Restaurant id"
// @Param request body request_models.MembershipOverrideRequest true "Membership override"
// @Security BearerAuth
// @Router /admin/restaurants/{restaurantId}/membership [put]
func (r *RestaurantController) OverrideMembership(c *gin.Context) {

	restaurantID, err := strconv.ParseUint(c.Param("restaurantId"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Restaurant ID is required")
		return
	}

	var request request_models.MembershipOverrideRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := r.restaurantService.OverrideMembership(c.Request.Context(), uint(restaurantID), request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Membership updated successfully")
}
