package main

import (
	"errors"
	"log"
	"net/http"
	"tbs/src/cart"
	"tbs/src/common"
	"tbs/src/types"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// checkoutFieldErrors maps binding failures to the inline messages the payment
// form shows next to each field.
func checkoutFieldErrors(verrs validator.ValidationErrors) map[string]string {
	fieldErrors := make(map[string]string)
	for _, verr := range verrs {
		switch verr.Field() {
		case "Name":
			fieldErrors["name"] = "name is required"
		case "Email":
			if verr.Tag() == "required" {
				fieldErrors["email"] = "email is required"
			} else {
				fieldErrors["email"] = "invalid email"
			}
		}
	}
	return fieldErrors
}

func checkoutHandlers(g *gin.RouterGroup, carts *cart.Manager) *gin.RouterGroup {
	g.
		POST("/checkout", func(ctx *gin.Context) {
			var body types.CheckoutRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				var verrs validator.ValidationErrors
				if errors.As(err, &verrs) {
					ctx.JSON(http.StatusBadRequest, gin.H{"errors": checkoutFieldErrors(verrs)})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c := sessionCart(ctx, carts)
			items := c.Items()
			if len(items) == 0 {
				// Nothing to order; send the shopper back to the cart view.
				ctx.Redirect(http.StatusSeeOther, apiPrefix+"/cart")
				return
			}
			orderNumber, err := common.SubmitOrder(&body, items)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not create your order. Please try again."})
				return
			}
			c.Clear()
			ctx.JSON(http.StatusCreated, gin.H{"order_number": orderNumber})
		}).
		GET("/orders/:number", func(ctx *gin.Context) {
			var params types.OrderNumberURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			order, err := common.GetOrderByNumber(params.Number)
			if err != nil {
				log.Printf("Error finding order %s: %s\n", params.Number, err.Error())
				if errors.Is(err, gorm.ErrRecordNotFound) {
					err := errors.New("Order not found")
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": order})
		})
	return g
}
