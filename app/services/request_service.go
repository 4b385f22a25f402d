package services

import (
	"fmt"
	"math"
	"time"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/app/repositories"
	"github.com/jackmarxreacher-creator/rby-sub000/config"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/collection"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/event"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/logger"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/mail"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/metrics"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/orm"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/validate"
)

// RecentOrdersCacheKey caches the dashboard's recent-order listing; every
// order mutation invalidates it.
const RecentOrdersCacheKey = "orders:recent"

// Actor identifies the authenticated staff member behind a mutation. A nil
// *Actor means the caller is a guest.
type Actor struct {
	ID   uint
	Role string
}

// RequestPayload is the typed submission contract for creating or fully
// editing an order. Malformed shapes are rejected before any business logic
// runs.
type RequestPayload struct {
	CustomerName string        `json:"customerName" validate:"required"`
	BusinessName string        `json:"businessName"`
	Email        string        `json:"email" validate:"required,email"`
	Phone        string        `json:"phone" validate:"required"`
	Location     string        `json:"location"`
	Address      string        `json:"address"`
	BusinessType string        `json:"businessType"`
	TotalAmount  float64       `json:"totalAmount"`
	Status       string        `json:"status"` // edits only
	Items        []PayloadItem `json:"items"`
}

// PayloadItem is one submitted line item. Name/size are UI-only and not part
// of the server contract.
type PayloadItem struct {
	ProductID uint    `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Amount    float64 `json:"amount"`
}

// RequestService owns the order mutation workflow: create, full edit,
// delete, status transitions. Every public method returns a Result and never
// lets an error escape.
type RequestService struct {
	orders   *repositories.OrderRepository
	activity *ActivityService
}

func NewRequestService() *RequestService {
	return &RequestService{
		orders:   repositories.NewOrderRepository(),
		activity: NewActivityService(),
	}
}

const amountTolerance = 0.005

// validatePayload checks shape and the arithmetic invariants: each amount is
// price×quantity and the total is the sum of the amounts.
func validatePayload(p RequestPayload) string {
	if errs := validate.Struct(&p); validate.HasErrors(errs) {
		for _, msg := range errs {
			return msg
		}
	}
	if len(p.Items) == 0 {
		return "an order needs at least one line item"
	}

	var sum float64
	for i, item := range p.Items {
		if item.ProductID == 0 {
			return fmt.Sprintf("item %d: missing product", i+1)
		}
		if item.Quantity <= 0 {
			return fmt.Sprintf("item %d: quantity must be positive", i+1)
		}
		if math.Abs(item.Amount-item.Price*float64(item.Quantity)) > amountTolerance {
			return fmt.Sprintf("item %d: amount does not match price × quantity", i+1)
		}
		sum += item.Amount
	}
	if math.Abs(sum-p.TotalAmount) > amountTolerance {
		return "totalAmount does not match the sum of item amounts"
	}
	return ""
}

func toCustomer(p RequestPayload) models.Customer {
	return models.Customer{
		Name:         p.CustomerName,
		Email:        p.Email,
		Phone:        p.Phone,
		BusinessName: p.BusinessName,
		Location:     p.Location,
		Address:      p.Address,
		BusinessType: models.NormalizeBusinessType(p.BusinessType),
	}
}

func toItems(items []PayloadItem) []models.OrderItem {
	return collection.Map(items, func(it PayloadItem) models.OrderItem {
		return models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Amount:    it.Amount,
		}
	})
}

// CreateRequest stores a new order. actor is nil for guest submissions:
// guests skip the auth check entirely and the order keeps a null
// attribution. Staff attribution is part of the same insert as the order.
func (s *RequestService) CreateRequest(payload RequestPayload, actor *Actor) Result {
	if msg := validatePayload(payload); msg != "" {
		return fail(msg)
	}

	order := models.Order{
		Status:      models.StatusReceived,
		TotalAmount: payload.TotalAmount,
	}
	var actorID *uint
	if actor != nil {
		actorID = &actor.ID
		order.CreatedByID = &actor.ID
	}

	if err := s.orders.CreateWithItems(toCustomer(payload), &order, toItems(payload.Items)); err != nil {
		logger.Error("request: create failed", "email", payload.Email, "error", err)
		return fail("could not save the order, please try again")
	}

	channel := "guest"
	if actor != nil {
		channel = "staff"
	}
	metrics.OrdersCreated.WithLabelValues(channel).Inc()
	orm.ForgetCache(RecentOrdersCacheKey)

	s.activity.Record(actorID, "request.create",
		fmt.Sprintf("Order #%d created for %s", order.ID, payload.CustomerName),
		map[string]interface{}{"orderId": order.ID, "total": order.TotalAmount})

	event.FireAsync("order.created", orderEvent(order.ID, payload.CustomerName, order.Status, order.TotalAmount))
	s.sendConfirmation(payload, order.ID)

	return ok(fmt.Sprintf("Order received for %s", payload.CustomerName))
}

// UpdateRequest replaces the order's line items with the payload's set and
// rewrites the order row, all inside one transaction. Staff only.
func (s *RequestService) UpdateRequest(id uint, payload RequestPayload, actor *Actor) Result {
	if actor == nil {
		return fail("Unauthorized: sign in to edit orders")
	}
	if msg := validatePayload(payload); msg != "" {
		return fail(msg)
	}
	if payload.Status != "" && !models.IsValidStatus(payload.Status) {
		return fail("Invalid status: " + payload.Status)
	}

	order, err := s.orders.FindByID(id)
	if err != nil {
		return fail("order not found")
	}

	status := order.Status
	if payload.Status != "" {
		status = payload.Status
	}

	order.TotalAmount = payload.TotalAmount
	order.Status = status
	order.EditedByID = &actor.ID

	if err := s.orders.ReplaceItems(&order, toItems(payload.Items)); err != nil {
		logger.Error("request: update failed", "order", id, "error", err)
		return fail("could not update the order, please try again")
	}

	orm.ForgetCache(RecentOrdersCacheKey)
	s.activity.Record(&actor.ID, "request.update",
		fmt.Sprintf("Order #%d updated", id),
		map[string]interface{}{"orderId": id, "total": payload.TotalAmount})
	event.FireAsync("order.updated", orderEvent(id, payload.CustomerName, status, payload.TotalAmount))

	return ok(fmt.Sprintf("Order #%d updated", id))
}

// DeleteRequest removes the order and its items in one transaction. Staff
// only.
func (s *RequestService) DeleteRequest(id uint, actor *Actor) Result {
	if actor == nil {
		return fail("Unauthorized: sign in to delete orders")
	}

	order, err := s.orders.FindByID(id)
	if err != nil {
		return fail("order not found")
	}
	customerName := order.Customer.Name

	if err := s.orders.DeleteWithItems(id); err != nil {
		logger.Error("request: delete failed", "order", id, "error", err)
		return fail("could not delete the order, please try again")
	}

	orm.ForgetCache(RecentOrdersCacheKey)
	s.activity.Record(&actor.ID, "request.delete",
		fmt.Sprintf("Order #%d for %s deleted", id, customerName),
		map[string]interface{}{"orderId": id})

	return ok(fmt.Sprintf("Order for %s deleted", customerName))
}

// UpdateRequestStatus moves an order through its lifecycle. The caller's
// role must be on the configured allow-list; the new status must be one of
// the five known values. Any current→next move between known values is
// accepted.
func (s *RequestService) UpdateRequestStatus(id uint, status string, actor *Actor) Result {
	if actor == nil {
		return fail("Unauthorized: sign in to change order status")
	}
	if !collection.Contains(config.StatusUpdateRoles(), actor.Role) {
		return fail("Forbidden: your role cannot change order status")
	}
	if !models.IsValidStatus(status) {
		return fail("Invalid status: " + status)
	}

	order, err := s.orders.FindByID(id)
	if err != nil {
		return fail("order not found")
	}

	if err := s.orders.UpdateStatus(id, status, &actor.ID); err != nil {
		logger.Error("request: status update failed", "order", id, "status", status, "error", err)
		return fail("could not update the order status, please try again")
	}

	metrics.StatusTransitions.WithLabelValues(status).Inc()
	orm.ForgetCache(RecentOrdersCacheKey)
	s.activity.Record(&actor.ID, "request.status",
		fmt.Sprintf("Order #%d moved to %s", id, status),
		map[string]interface{}{"orderId": id, "from": order.Status, "to": status})
	event.FireAsync("order.status", orderEvent(id, order.Customer.Name, status, order.TotalAmount))

	return ok(fmt.Sprintf("Order #%d is now %s", id, status))
}

// Get loads one order with items and customer.
func (s *RequestService) Get(id uint) (models.Order, error) {
	return s.orders.FindByID(id)
}

// List returns one page of orders.
func (s *RequestService) List(page, limit int) ([]models.Order, orm.Pagination, error) {
	return s.orders.All(page, limit)
}

// Recent returns the newest orders for the dashboard, cached briefly.
// Order mutations invalidate the cache so the feed never goes stale.
func (s *RequestService) Recent() ([]models.Order, error) {
	return s.orders.Recent(RecentOrdersCacheKey, 10, time.Minute)
}

// sendConfirmation emails the customer in the background. Failures are
// logged and forgotten.
func (s *RequestService) sendConfirmation(p RequestPayload, orderID uint) {
	err := backgroundPool().Submit(func() {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>We received your order #%d (total %.2f). We'll be in touch when it ships.</p>",
			p.CustomerName, orderID, p.TotalAmount)
		if err := mail.To(p.Email).Subject("We received your order").Body(body).Send(); err != nil {
			logger.Warn("request: confirmation email failed", "order", orderID, "error", err)
		}
	})
	if err != nil {
		logger.Warn("request: confirmation email skipped", "order", orderID, "error", err)
	}
}
