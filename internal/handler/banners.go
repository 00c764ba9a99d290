package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Banner is a storefront promo slide.
type Banner struct {
	Title string `json:"title"`
	Src   string `json:"src"`
	Text  string `json:"text"`
}

// TODO: move banners to the database once the admin can manage them.
var banners = []Banner{
	{Title: "Burger", Src: "/static/burger.jpg", Text: "Tasty Burger at your door step"},
	{Title: "Spices", Src: "/static/food.jpg", Text: "All Cuisines"},
	{Title: "New York", Src: "/static/tasty.jpg", Text: "Food is incomplete without a tasty dessert"},
}

// Banners handles GET /api/banners requests.
//
//	@Summary	Storefront banners
//	@Produce	json
//	@Success	200	{array}	handler.Banner
//	@Router		/api/banners [get]
func Banners(c *gin.Context) {
	c.JSON(http.StatusOK, banners)
}
