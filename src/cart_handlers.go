package main

import (
	"errors"
	"log"
	"net/http"
	"tbs/src/cart"
	"tbs/src/db"
	"tbs/src/models"
	"tbs/src/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func sessionCart(ctx *gin.Context, carts *cart.Manager) *cart.Cart {
	return carts.Get(ctx.GetString("session_id"))
}

func cartResponse(c *cart.Cart) gin.H {
	items := c.Items()
	return gin.H{
		"data":        items,
		"count":       len(items),
		"total_items": c.TotalItemCount(),
		"total_price": c.TotalPrice(),
	}
}

func cartHandlers(g *gin.RouterGroup, carts *cart.Manager) *gin.RouterGroup {
	g.
		GET("/cart", func(ctx *gin.Context) {
			c := sessionCart(ctx, carts)
			ctx.JSON(http.StatusOK, cartResponse(c))
		}).
		POST("/cart/items", func(ctx *gin.Context) {
			var body types.AddCartItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var ticket models.TicketCategory
			db := db.GetDb()
			if err := db.
				Model(&models.TicketCategory{}).
				Where(&models.TicketCategory{ID: body.TicketID}).
				Preload("Event").
				First(&ticket).
				Error; err != nil {
				log.Printf("Error finding ticket category %s: %s\n", body.TicketID, err.Error())
				if errors.Is(err, gorm.ErrRecordNotFound) {
					err := errors.New("Ticket category does not exist")
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			c := sessionCart(ctx, carts)
			c.Add(cart.LineItem{
				TicketID:          ticket.ID,
				EventID:           ticket.EventID,
				City:              ticket.Event.City,
				Venue:             ticket.Event.Venue,
				Date:              ticket.Event.Date,
				CategoryName:      ticket.CategoryName,
				Price:             ticket.Price,
				Quantity:          body.Quantity,
				AvailableQuantity: ticket.AvailableQuantity,
			})
			ctx.JSON(http.StatusCreated, cartResponse(c))
		}).
		PUT("/cart/items/:id", func(ctx *gin.Context) {
			var params types.TicketURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			ticketID, err := uuid.Parse(params.TicketID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateCartItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c := sessionCart(ctx, carts)
			c.SetQuantity(ticketID, *body.Quantity)
			ctx.JSON(http.StatusOK, cartResponse(c))
		}).
		DELETE("/cart/items/:id", func(ctx *gin.Context) {
			var params types.TicketURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			ticketID, err := uuid.Parse(params.TicketID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c := sessionCart(ctx, carts)
			c.Remove(ticketID)
			ctx.JSON(http.StatusOK, cartResponse(c))
		})
	return g
}
