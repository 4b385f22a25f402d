package controllers

import (
	"net/http"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/app/services"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/bind"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/response"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/validate"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{service: services.NewProductService()}
}

// Catalog returns the public product-picker listing.
func (c *ProductController) Catalog(w http.ResponseWriter, r *http.Request) {
	entries, err := c.service.Catalog()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load the catalogue")
		return
	}
	response.Success(w, entries)
}

// List returns one page of products for the admin screens.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	products, pagination, err := c.service.List(page, limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load products")
		return
	}
	response.Paginated(w, products, pagination)
}

// Get returns one product.
func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	product, err := c.service.Get(id)
	if err != nil {
		response.NotFound(w)
		return
	}
	response.Success(w, product)
}

type productInput struct {
	Name           string  `json:"name" validate:"required"`
	Size           string  `json:"size"`
	Image          string  `json:"image"`
	WholesalePrice float64 `json:"wholesalePrice" validate:"numeric,gte=0"`
	RetailPrice    float64 `json:"retailPrice" validate:"numeric,gte=0"`
}

// Create stores a new product.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var in productInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	product := models.Product{
		Name:           in.Name,
		Size:           in.Size,
		Image:          in.Image,
		WholesalePrice: in.WholesalePrice,
		RetailPrice:    in.RetailPrice,
	}
	writeResult(w, c.service.Create(&product, actorFrom(r)))
}

// Update edits a product.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	var in productInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Get(id)
	if err != nil {
		response.NotFound(w)
		return
	}
	product.Name = in.Name
	product.Size = in.Size
	product.Image = in.Image
	product.WholesalePrice = in.WholesalePrice
	product.RetailPrice = in.RetailPrice

	writeResult(w, c.service.Update(&product, actorFrom(r)))
}

// Delete removes a product.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, idOK := idParam(r)
	if !idOK {
		response.NotFound(w)
		return
	}
	writeResult(w, c.service.Delete(id, actorFrom(r)))
}
