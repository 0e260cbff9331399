package controllers

import (
	"github.com/imeshiperera12/FoodOrdering-sub000/clients"
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/resp"
	"github.com/imeshiperera12/FoodOrdering-sub000/utils"

	"github.com/gin-gonic/gin"
)

// FavoritesController ร้านโปรดเก็บอยู่ฝั่ง auth service เราส่งต่ออย่างเดียว
type FavoritesController struct{ Auth *clients.AuthClient }

func NewFavoritesController(ac *clients.AuthClient) *FavoritesController {
	return &FavoritesController{Auth: ac}
}

// GET /favorites
func (ctl *FavoritesController) List(c *gin.Context) {
	ids, err := ctl.Auth.Favorites(c.Request.Context(), utils.BearerToken(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"favoriteRestaurants": ids})
}

// POST /favorites/:id
func (ctl *FavoritesController) Add(c *gin.Context) {
	ids, err := ctl.Auth.AddFavorite(c.Request.Context(), utils.BearerToken(c), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"favoriteRestaurants": ids})
}

// DELETE /favorites/:id
func (ctl *FavoritesController) Remove(c *gin.Context) {
	ids, err := ctl.Auth.RemoveFavorite(c.Request.Context(), utils.BearerToken(c), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"favoriteRestaurants": ids})
}
