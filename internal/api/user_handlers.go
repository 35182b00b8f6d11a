package api

import (
	"net/http"
	"strconv"

	"rentacar/internal/apperr"
	"rentacar/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	Service *service.UserService
	Log     *logrus.Logger
}

func NewUserHandler(svc *service.UserService, log *logrus.Logger) *UserHandler {
	return &UserHandler{Service: svc, Log: log}
}

func pathInt(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, apperr.New(apperr.KindInvalidArgument, "invalid "+name)
	}
	return id, nil
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ident, err := identity(r)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	users, err := h.Service.List(ident)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	writeData(w, http.StatusOK, "", resp)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident, err := identity(r)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	var req UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err)
		return
	}

	user, err := h.Service.Update(ident, id, service.UpdateUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeData(w, http.StatusOK, "user updated successfully", toUserResponse(user))
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident, err := identity(r)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	if err := h.Service.Delete(ident, id); err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeData(w, http.StatusOK, "user deleted successfully", nil)
}
