package controllers

import (
	"net/http"

	"github.com/jackmarxreacher-creator/rby-sub000/app/services"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/bind"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/response"
)

const maxUploadBytes = 10 << 20 // 10 MiB per gallery upload

type GalleryController struct {
	service *services.GalleryService
}

func NewGalleryController() *GalleryController {
	return &GalleryController{service: services.NewGalleryService()}
}

// List returns one page of gallery items.
func (c *GalleryController) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	items, pagination, err := c.service.List(page, limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load the gallery")
		return
	}
	response.Paginated(w, items, pagination)
}

// Upload accepts a multipart form with "file", "title" and "caption" fields.
func (c *GalleryController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	res := c.service.Upload(
		r.FormValue("title"),
		r.FormValue("caption"),
		header.Filename,
		file,
		actorFrom(r),
	)
	writeResult(w, res)
}

type galleryInput struct {
	Title   string `json:"title" validate:"required"`
	Caption string `json:"caption"`
}

// Update edits a gallery item's title and caption.
func (c *GalleryController) Update(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	var in galleryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	item, err := c.service.Get(id)
	if err != nil {
		response.NotFound(w)
		return
	}
	item.Title = in.Title
	item.Caption = in.Caption

	writeResult(w, c.service.Update(&item, actorFrom(r)))
}

// Delete removes a gallery item and its stored file.
func (c *GalleryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	writeResult(w, c.service.Delete(id, actorFrom(r)))
}
