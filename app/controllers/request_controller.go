package controllers

import (
	"net/http"
	"strings"

	"github.com/jackmarxreacher-creator/rby-sub000/app/services"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/bind"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/response"
)

// RequestController exposes the order workflow over HTTP. Create sits on a
// public route (guests submit orders); everything else requires staff auth.
type RequestController struct {
	service *services.RequestService
}

func NewRequestController() *RequestController {
	return &RequestController{service: services.NewRequestService()}
}

// resultStatus maps a failed Result's message onto the HTTP status class the
// body's message implies. The body always carries {ok,message}; the status
// code is a transport courtesy.
func resultStatus(res services.Result) int {
	switch {
	case res.OK:
		return http.StatusOK
	case strings.HasPrefix(res.Message, "Unauthorized"):
		return http.StatusUnauthorized
	case strings.HasPrefix(res.Message, "Forbidden"):
		return http.StatusForbidden
	default:
		return http.StatusUnprocessableEntity
	}
}

func writeResult(w http.ResponseWriter, res services.Result) {
	response.Result(w, resultStatus(res), res.OK, res.Message, nil)
}

// Create accepts an order submission from a guest or a staff member.
func (c *RequestController) Create(w http.ResponseWriter, r *http.Request) {
	var payload services.RequestPayload
	if _, err := bind.JSON(r, &payload); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// Field-level validation happens in the service so guests get the same
	// {ok,message} shape for every failure class.
	writeResult(w, c.service.CreateRequest(payload, actorFrom(r)))
}

// List returns one page of orders.
func (c *RequestController) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	orders, pagination, err := c.service.List(page, limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load orders")
		return
	}
	response.Paginated(w, orders, pagination)
}

// Recent returns the cached dashboard feed of newest orders.
func (c *RequestController) Recent(w http.ResponseWriter, r *http.Request) {
	orders, err := c.service.Recent()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load orders")
		return
	}
	response.Success(w, orders)
}

// Get returns one order with items and customer.
func (c *RequestController) Get(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	order, err := c.service.Get(id)
	if err != nil {
		response.NotFound(w)
		return
	}
	response.Success(w, order)
}

// Update replaces an order's items and totals.
func (c *RequestController) Update(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	var payload services.RequestPayload
	if _, err := bind.JSON(r, &payload); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeResult(w, c.service.UpdateRequest(id, payload, actorFrom(r)))
}

// Delete removes an order and its items.
func (c *RequestController) Delete(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	writeResult(w, c.service.DeleteRequest(id, actorFrom(r)))
}

type statusInput struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus moves an order through its lifecycle.
func (c *RequestController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	var in statusInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeResult(w, c.service.UpdateRequestStatus(id, in.Status, actorFrom(r)))
}

// Export streams the order as a CSV download.
func (c *RequestController) Export(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	data, filename, err := c.service.ExportCSV(id)
	if err != nil {
		response.NotFound(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write(data)
}
