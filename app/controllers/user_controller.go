package controllers

import (
	"net/http"

	"github.com/jackmarxreacher-creator/rby-sub000/app/services"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/bind"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/response"
)

type UserController struct {
	service  *services.UserService
	activity *services.ActivityService
}

func NewUserController() *UserController {
	return &UserController{
		service:  services.NewUserService(),
		activity: services.NewActivityService(),
	}
}

// List returns one page of staff users.
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	users, pagination, err := c.service.List(page, limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load users")
		return
	}
	response.Paginated(w, users, pagination)
}

// Get returns one staff user.
func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	user, err := c.service.Get(id)
	if err != nil {
		response.NotFound(w)
		return
	}
	response.Success(w, user)
}

// Create stores a new staff user.
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.UserInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeResult(w, c.service.Create(in, actorFrom(r)))
}

// Update edits a staff user.
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	var in services.UserInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeResult(w, c.service.Update(id, in, actorFrom(r)))
}

// Delete removes a staff user.
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	writeResult(w, c.service.Delete(id, actorFrom(r)))
}

// Activity returns one page of audit-log rows.
func (c *UserController) Activity(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	rows, pagination, err := c.activity.List(page, limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load the audit log")
		return
	}
	response.Paginated(w, rows, pagination)
}
