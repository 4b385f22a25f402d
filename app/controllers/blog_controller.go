package controllers

import (
	"net/http"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/app/services"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/bind"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/response"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/validate"
)

type BlogController struct {
	service *services.BlogService
}

func NewBlogController() *BlogController {
	return &BlogController{service: services.NewBlogService()}
}

// List returns one page of posts.
func (c *BlogController) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	blogs, pagination, err := c.service.List(page, limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load posts")
		return
	}
	response.Paginated(w, blogs, pagination)
}

// Get returns one post.
func (c *BlogController) Get(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	blog, err := c.service.Get(id)
	if err != nil {
		response.NotFound(w)
		return
	}
	response.Success(w, blog)
}

type blogInput struct {
	Title   string `json:"title" validate:"required"`
	Slug    string `json:"slug" validate:"nullable,alpha_dash"`
	Excerpt string `json:"excerpt"`
	Body    string `json:"body" validate:"required"`
	Image   string `json:"image"`
}

// Create publishes a post.
func (c *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	var in blogInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	blog := models.Blog{Title: in.Title, Slug: in.Slug, Excerpt: in.Excerpt, Body: in.Body, Image: in.Image}
	writeResult(w, c.service.Create(&blog, actorFrom(r)))
}

// Update edits a post.
func (c *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	var in blogInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	blog, err := c.service.Get(id)
	if err != nil {
		response.NotFound(w)
		return
	}
	blog.Title = in.Title
	blog.Excerpt = in.Excerpt
	blog.Body = in.Body
	blog.Image = in.Image
	if in.Slug != "" {
		blog.Slug = in.Slug
	}

	writeResult(w, c.service.Update(&blog, actorFrom(r)))
}

// Delete removes a post.
func (c *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	writeResult(w, c.service.Delete(id, actorFrom(r)))
}
