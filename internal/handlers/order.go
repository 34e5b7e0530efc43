package handlers

import (
	"errors"
	"log"
	"net/http"

	"printshop/internal/auth"
	dom "printshop/internal/domain"
	"printshop/internal/dto"
	"printshop/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles checkout and order management.
type OrderHandler struct {
	svc     *service.OrderService
	userSvc *service.UserService
}

// NewOrderHandler returns a new OrderHandler.
func NewOrderHandler(svc *service.OrderService, userSvc *service.UserService) *OrderHandler {
	return &OrderHandler{svc: svc, userSvc: userSvc}
}

// List godoc
// @Summary      List orders
// @Description  Admins see every order, other users only their own.
// @Tags         orders
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   dto.OrderResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	user, err := h.userSvc.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	var list []dom.Order
	if user.IsAdmin {
		list, err = h.svc.ListAll(c.Request.Context())
	} else {
		list, err = h.svc.ListForUser(c.Request.Context(), userID)
	}
	if err != nil {
		log.Printf("list orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, ordersToResponses(list))
}

// Create godoc
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateOrderRequest  true  "Order body"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	o, err := h.svc.Place(c.Request.Context(), auth.UserIDFromContext(c), orderFromRequest(req))
	if err != nil {
		log.Printf("place order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		return
	}
	c.JSON(http.StatusCreated, orderToResponse(o))
}

// UpdateStatus godoc
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Order ID"
// @Param        body  body      dto.UpdateOrderStatusRequest  true  "New status"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	o, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		log.Printf("update order %d status: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
		return
	}
	c.JSON(http.StatusOK, orderToResponse(o))
}

func orderFromRequest(req dto.CreateOrderRequest) dom.Order {
	items := make([]dom.OrderItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = dom.OrderItem{
			Product: dom.Product{
				ID:          it.Product.ID,
				Name:        it.Product.Name,
				Description: it.Product.Description,
				Price:       it.Product.Price,
				Image:       it.Product.Image,
				Category:    it.Product.Category,
			},
			Quantity: it.Quantity,
		}
	}
	return dom.Order{
		Items:         items,
		Total:         req.Total,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		PinCode:       req.PinCode,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
}

func orderToResponse(o dom.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = dto.OrderItemResponse{
			Product:  productToResponse(it.Product),
			Quantity: it.Quantity,
		}
	}
	return dto.OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		Items:         items,
		Total:         o.Total,
		Status:        o.Status,
		Name:          o.Name,
		Email:         o.Email,
		Phone:         o.Phone,
		Address:       o.Address,
		City:          o.City,
		State:         o.State,
		PinCode:       o.PinCode,
		PaymentMethod: o.PaymentMethod,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
	}
}

func ordersToResponses(list []dom.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, len(list))
	for i := range list {
		out[i] = orderToResponse(list[i])
	}
	return out
}
