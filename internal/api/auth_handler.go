package api

import (
	"net/http"

	"rentacar/internal/service"

	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	Service *service.AuthService
	Log     *logrus.Logger
}

func NewAuthHandler(svc *service.AuthService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{Service: svc, Log: log}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err)
		return
	}

	user, err := h.Service.Signup(service.SignupParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeData(w, http.StatusCreated, "user registered successfully", toUserResponse(user))
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err)
		return
	}

	token, user, err := h.Service.Signin(req.Email, req.Password)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeData(w, http.StatusOK, "login successful", SigninResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}
