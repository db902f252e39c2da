package controllers

import (
	"net/http"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type InvoiceController struct {
	InvoiceSvc *services.InvoiceService
}

func NewInvoiceController(svc *services.InvoiceService) *InvoiceController {
	return &InvoiceController{InvoiceSvc: svc}
}

// GetInvoice returns the live snapshot for one folio. The snapshot is
// recomputed from the ledger on every call; printing clients should
// fetch it once and render from that payload.
func (ctrl *InvoiceController) GetInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	folio, ok := parseIDParam(c, "folio")
	if !ok {
		return
	}
	lang := c.DefaultQuery("lang", "en")

	snapshot, err := ctrl.InvoiceSvc.BuildSnapshot(id, int(folio), lang)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, snapshot)
}
