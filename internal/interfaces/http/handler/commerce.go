package handler

import (
	commerceapp "github.com/erp/bizhub/internal/application/commerce"
	"github.com/gin-gonic/gin"
)

// CartHandler serves the caller's shopping cart
type CartHandler struct {
	BaseHandler
	cartService *commerceapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *commerceapp.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get returns the cart with its items and total
func (h *CartHandler) Get(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	cart, err := h.cartService.Get(c.Request.Context(), scope.UserID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// Add puts a product in the cart, merging with an existing line
func (h *CartHandler) Add(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var req commerceapp.AddToCartRequest
	if !h.bindJSON(c, &req) {
		return
	}
	item, err := h.cartService.Add(c.Request.Context(), scope.UserID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// UpdateQuantity sets the quantity of a cart line
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req commerceapp.UpdateCartItemRequest
	if !h.bindJSON(c, &req) {
		return
	}
	item, err := h.cartService.UpdateQuantity(c.Request.Context(), scope.UserID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Remove deletes a cart line
func (h *CartHandler) Remove(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cartService.Remove(c.Request.Context(), scope.UserID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// OrderHandler serves checkout and storefront orders
type OrderHandler struct {
	BaseHandler
	orderService *commerceapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *commerceapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Checkout places an order from the caller's cart
func (h *OrderHandler) Checkout(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var req commerceapp.CheckoutRequest
	if !h.bindJSON(c, &req) {
		return
	}
	order, err := h.orderService.Checkout(c.Request.Context(), scope, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// List lists the orders visible to the caller
func (h *OrderHandler) List(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	page, err := h.orderService.List(c.Request.Context(), scope, ParseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Get returns one order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	byID(&h.BaseHandler, c, h.orderService.GetByID)
}

// ChangeStatus updates an order's status and payment status
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	byIDWithBody(&h.BaseHandler, c, h.orderService.ChangeStatus)
}

// SellerProductHandler serves /seller-products
type SellerProductHandler struct {
	*ResourceHandler[commerceapp.SellerProductRequest, commerceapp.SellerProductResponse]
	service *commerceapp.SellerProductService
}

// NewSellerProductHandler creates a SellerProductHandler
func NewSellerProductHandler(service *commerceapp.SellerProductService) *SellerProductHandler {
	return &SellerProductHandler{
		ResourceHandler: NewResourceHandler[commerceapp.SellerProductRequest, commerceapp.SellerProductResponse](service),
		service:         service,
	}
}

// Approve approves a seller listing (admin only)
func (h *SellerProductHandler) Approve(c *gin.Context) {
	byID(&h.BaseHandler, c, h.service.Approve)
}
