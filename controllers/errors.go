package controllers

import (
	"errors"
	"net/http"

	"hvacpro-backend/sheets"
	"hvacpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondGatewayError translates the gateway's error taxonomy into HTTP.
// The remote's own message is surfaced verbatim; transport failures get a
// stable summary so callers are not shown raw dial errors.
func respondGatewayError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, sheets.ErrNotConnected):
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Spreadsheet endpoint is not configured")
	case sheets.IsRequestError(err):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(c, http.StatusBadGateway, fallback)
	}
}

// respondLookupError is respondGatewayError for get-by-id paths, where a
// remote rejection means the record does not exist.
func respondLookupError(c *gin.Context, err error, notFound string) {
	if sheets.IsRequestError(err) {
		utils.RespondWithError(c, http.StatusNotFound, notFound)
		return
	}
	respondGatewayError(c, err, notFound)
}
