package controllers

import (
	"net/http"

	"github.com/jackmarxreacher-creator/rby-sub000/app/services"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/bind"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/response"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/validate"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies staff credentials and returns a JWT pair.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	login, res := c.service.Login(in.Email, in.Password)
	if !res.OK {
		response.Result(w, http.StatusUnauthorized, false, res.Message, nil)
		return
	}
	response.Result(w, http.StatusOK, true, res.Message, login)
}
