package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"coachline.com/backoffice/pg/model"
)

type jobRequest struct {
	Title          string `json:"title" validate:"required,max=200"`
	Description    string `json:"description" validate:"max=5000"`
	Location       string `json:"location" validate:"max=200"`
	EmploymentType string `json:"employment_type" validate:"required,oneof=full_time part_time contract"`
	IsActive       *bool  `json:"is_active"`
}

func (r *jobRequest) apply(job *model.Job) {
	job.Title = r.Title
	job.Description = r.Description
	job.Location = r.Location
	job.EmploymentType = r.EmploymentType
	job.IsActive = r.IsActive == nil || *r.IsActive
}

func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobs.ListJobs(c.Context())
	if err != nil {
		return h.storeError(c, "list jobs", err)
	}
	return c.JSON(jobs)
}

func (h *Handlers) GetJob(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return invalidID(c)
	}
	job, err := h.jobs.GetJob(c.Context(), id)
	if err != nil {
		return h.storeError(c, "get job", err)
	}
	return c.JSON(job)
}

func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	var req jobRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	job := &model.Job{ID: uuid.New(), CreatedBy: callerID(c)}
	req.apply(job)
	if err := h.jobs.CreateJob(c.Context(), job); err != nil {
		return h.storeError(c, "create job", err)
	}

	h.log.Info().Str("job_id", job.ID.String()).Str("created_by", job.CreatedBy).Msg("job created")
	return c.Status(fiber.StatusCreated).JSON(job)
}

func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return invalidID(c)
	}
	var req jobRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	job := &model.Job{ID: id}
	req.apply(job)
	if err := h.jobs.UpdateJob(c.Context(), job); err != nil {
		return h.storeError(c, "update job", err)
	}

	h.log.Info().Str("job_id", id.String()).Msg("job updated")
	return c.JSON(job)
}

func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.jobs.DeleteJob(c.Context(), id); err != nil {
		return h.storeError(c, "delete job", err)
	}

	h.log.Info().Str("job_id", id.String()).Msg("job deleted")
	return c.SendStatus(fiber.StatusNoContent)
}
