package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coachline.com/backoffice/pg/model"
)

type maintenanceRequest struct {
	BusID       string          `json:"bus_id" validate:"required,max=64"`
	Description string          `json:"description" validate:"required,max=5000"`
	Cost        decimal.Decimal `json:"cost" validate:"gte=0"`
	Status      string          `json:"status" validate:"required,oneof=scheduled in_progress completed"`
	PerformedAt time.Time       `json:"performed_at" validate:"required"`
}

func (r *maintenanceRequest) apply(record *model.MaintenanceRecord) {
	record.BusID = r.BusID
	record.Description = r.Description
	record.Cost = r.Cost.Round(2)
	record.Status = r.Status
	record.PerformedAt = r.PerformedAt.UTC()
}

func (h *Handlers) ListMaintenance(c *fiber.Ctx) error {
	records, err := h.maintenance.ListMaintenance(c.Context())
	if err != nil {
		return h.storeError(c, "list maintenance records", err)
	}
	return c.JSON(records)
}

func (h *Handlers) GetMaintenance(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return invalidID(c)
	}
	record, err := h.maintenance.GetMaintenance(c.Context(), id)
	if err != nil {
		return h.storeError(c, "get maintenance record", err)
	}
	return c.JSON(record)
}

func (h *Handlers) CreateMaintenance(c *fiber.Ctx) error {
	var req maintenanceRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	record := &model.MaintenanceRecord{ID: uuid.New(), CreatedBy: callerID(c)}
	req.apply(record)
	if err := h.maintenance.CreateMaintenance(c.Context(), record); err != nil {
		return h.storeError(c, "create maintenance record", err)
	}

	h.log.Info().
		Str("record_id", record.ID.String()).
		Str("bus_id", record.BusID).
		Str("cost", record.Cost.StringFixed(2)).
		Msg("maintenance record created")
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (h *Handlers) UpdateMaintenance(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return invalidID(c)
	}
	var req maintenanceRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	record := &model.MaintenanceRecord{ID: id}
	req.apply(record)
	if err := h.maintenance.UpdateMaintenance(c.Context(), record); err != nil {
		return h.storeError(c, "update maintenance record", err)
	}

	h.log.Info().Str("record_id", id.String()).Msg("maintenance record updated")
	return c.JSON(record)
}

func (h *Handlers) DeleteMaintenance(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.maintenance.DeleteMaintenance(c.Context(), id); err != nil {
		return h.storeError(c, "delete maintenance record", err)
	}

	h.log.Info().Str("record_id", id.String()).Msg("maintenance record deleted")
	return c.SendStatus(fiber.StatusNoContent)
}
