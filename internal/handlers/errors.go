package handlers

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/flow-server/internal/service"
	"github.com/carson-networks/flow-server/internal/storage"
)

// ServiceError maps a service failure onto the HTTP error the client sees.
// Store failures carry the store's message; anything unrecognised is a 500 with fallback.
func ServiceError(err error, fallback string) error {
	var storeErr *storage.StoreError
	switch {
	case errors.As(err, &storeErr):
		return huma.NewError(http.StatusBadGateway, storeErr.Message, err)
	case errors.Is(err, service.ErrOutsideWriteWindow):
		return huma.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidTransaction), errors.Is(err, service.ErrInvalidDate):
		return huma.NewError(http.StatusBadRequest, err.Error())
	}
	return huma.NewError(http.StatusInternalServerError, fallback, err)
}
