// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workload

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/canonical/workload-service/internal/db"
	httptypes "github.com/canonical/workload-service/internal/http/types"
	"github.com/canonical/workload-service/internal/logging"
	"github.com/canonical/workload-service/internal/types"
	"github.com/canonical/workload-service/pkg/account"
)

const (
	defaultPage = 1
	defaultSize = 100
)

type API struct {
	service  ServiceInterface
	db       db.DBClientInterface
	validate *validator.Validate

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Group(func(r chi.Router) {
		if a.db != nil {
			r.Use(db.TransactionMiddleware(a.db, a.logger))
		}

		r.Get("/users/", a.listUsers)
		r.Post("/tasks/", a.createTask)
		r.Get("/tasks/", a.listTasks)
		r.Get("/orgmembers/", a.listOrgMembers)
		r.Get("/orgmember/byuser/", a.getOrgMemberByUser)
	})
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuidParam(r, "orgId", false)
	if err != nil {
		a.badRequest(w, err)
		return
	}

	page, size, err := pagination(r)
	if err != nil {
		a.badRequest(w, err)
		return
	}

	users, err := a.service.ListUsers(r.Context(), orgID, page, size)
	if err != nil {
		a.writeError(w, err)
		return
	}

	data := make([]*account.UserResponse, 0, len(users))
	for _, u := range users {
		data = append(data, account.NewUserResponse(u))
	}

	httptypes.WriteJSON(w, http.StatusOK, ListResponse[*account.UserResponse]{Data: data, Page: page, Size: size})
}

func (a *API) createTask(w http.ResponseWriter, r *http.Request) {
	req := new(CreateTaskRequest)
	if err := httptypes.DecodeJSON(r, req, a.validate); err != nil {
		a.badRequest(w, err)
		return
	}

	task, err := req.Task()
	if err != nil {
		a.badRequest(w, err)
		return
	}

	created, err := a.service.CreateTask(r.Context(), task)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, NewTaskResponse(created))
}

func (a *API) listTasks(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuidParam(r, "orgId", false)
	if err != nil {
		a.badRequest(w, err)
		return
	}

	page, size, err := pagination(r)
	if err != nil {
		a.badRequest(w, err)
		return
	}

	tasks, err := a.service.ListTasks(r.Context(), orgID, page, size)
	if err != nil {
		a.writeError(w, err)
		return
	}

	data := make([]*TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		data = append(data, NewTaskResponse(t))
	}

	httptypes.WriteJSON(w, http.StatusOK, ListResponse[*TaskResponse]{Data: data, Page: page, Size: size})
}

func (a *API) listOrgMembers(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuidParam(r, "orgId", true)
	if err != nil {
		a.badRequest(w, err)
		return
	}

	page, size, err := pagination(r)
	if err != nil {
		a.badRequest(w, err)
		return
	}

	members, err := a.service.ListOrgMembers(r.Context(), orgID, page, size)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, ListResponse[*OrgMemberResponse]{Data: orgMemberResponses(members), Page: page, Size: size})
}

func (a *API) getOrgMemberByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userId", true)
	if err != nil {
		a.badRequest(w, err)
		return
	}

	member, err := a.service.GetOrgMemberByUser(r.Context(), userID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, NewOrgMemberResponse(member))
}

func (a *API) badRequest(w http.ResponseWriter, err error) {
	httptypes.WriteError(w, http.StatusBadRequest, httptypes.ErrorKindInvalidRequest, err.Error())
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrOrgMemberNotFound):
		httptypes.WriteError(w, http.StatusNotFound, "org_member_not_found", err.Error())
	case errors.Is(err, ErrInvalidTask):
		httptypes.WriteError(w, http.StatusBadRequest, httptypes.ErrorKindInvalidRequest, err.Error())
	default:
		a.logger.Errorf("workload request failed: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, httptypes.ErrorKindInternal, "Internal server error")
	}
}

func orgMemberResponses(members []*types.OrgMember) []*OrgMemberResponse {
	data := make([]*OrgMemberResponse, 0, len(members))
	for _, m := range members {
		data = append(data, NewOrgMemberResponse(m))
	}

	return data
}

// uuidParam reads an identifier from the query string, an absent optional
// parameter yields an empty string.
func uuidParam(r *http.Request, name string, required bool) (string, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		if required {
			return "", fmt.Errorf("query parameter %s is required", name)
		}
		return "", nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return "", fmt.Errorf("query parameter %s is not a valid id", name)
	}

	return id.String(), nil
}

// pagination reads page and size, size is capped the same way storage caps it.
func pagination(r *http.Request) (int64, int64, error) {
	page, err := intParam(r, "page", defaultPage)
	if err != nil {
		return 0, 0, err
	}

	if page > db.MaxPage {
		return 0, 0, fmt.Errorf("query parameter page must not exceed %d", db.MaxPage)
	}

	size, err := intParam(r, "size", defaultSize)
	if err != nil {
		return 0, 0, err
	}

	return page, int64(db.PageSize(size)), nil
}

func intParam(r *http.Request, name string, fallback int64) (int64, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return fallback, nil
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("query parameter %s must be a positive integer", name)
	}

	return n, nil
}

func NewAPI(service ServiceInterface, dbClient db.DBClientInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.db = dbClient
	a.validate = validator.New(validator.WithRequiredStructEnabled())

	a.logger = logger

	return a
}
