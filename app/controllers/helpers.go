package controllers

import (
	"net/http"
	"strconv"

	"github.com/jackmarxreacher-creator/rby-sub000/app/services"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/middleware"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/router"
)

// actorFrom reads the authenticated staff member from the request context.
// Returns nil for guests.
func actorFrom(r *http.Request) *services.Actor {
	id, idOK := middleware.UserIDFromCtx(r)
	if !idOK {
		return nil
	}
	role, _ := middleware.RoleFromCtx(r)
	return &services.Actor{ID: id, Role: role}
}

// idParam parses the {id} URL parameter.
func idParam(r *http.Request) (uint, bool) {
	n, err := strconv.ParseUint(router.Param(r, "id"), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// pageParams reads ?page= and ?limit= with zero values left for the ORM to
// normalise.
func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}
