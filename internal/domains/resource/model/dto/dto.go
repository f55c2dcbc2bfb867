package dto

import (
	"github.com/google/uuid"

	"inspirehub/internal/domains/resource/model"
	"inspirehub/shared"
	gDto "inspirehub/shared/dto"
	gModel "inspirehub/shared/model"
	"inspirehub/shared/timezone"
)

type CreateResourceRequest struct {
	Name       string `json:"name"        validate:"required,max=100"`
	Kind       string `json:"kind"        validate:"required,oneof=meeting_room dedicated_desk private_office virtual_office"`
	Location   string `json:"location"    validate:"omitempty,max=100"`
	Capacity   int    `json:"capacity"    validate:"omitempty,gte=1"`
	HourlyRate int64  `json:"hourly_rate" validate:"required,gte=0"`
	Image      string `json:"image"       validate:"omitempty"`
}

func (c *CreateResourceRequest) ToModel(user string) model.Resource {
	return model.Resource{
		ID:         uuid.NewString(),
		Name:       c.Name,
		Kind:       c.Kind,
		Location:   c.Location,
		Capacity:   c.Capacity,
		HourlyRate: c.HourlyRate,
		Image:      c.Image,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateResourceRequest struct {
	Name       string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Location   string `db:"location"    json:"location"    validate:"omitempty,max=100"`
	Capacity   int    `db:"capacity"    json:"capacity"    validate:"omitempty,gte=1"`
	HourlyRate int64  `db:"hourly_rate" json:"hourly_rate" validate:"omitempty,gte=0"`
	Image      string `db:"image"       json:"image"       validate:"omitempty"`
	Active     *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type ResourceResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Location   string `json:"location"`
	Capacity   int    `json:"capacity"`
	HourlyRate int64  `json:"hourly_rate"`
	Image      string `json:"image,omitempty"`
	Active     bool   `json:"active"`
	gDto.Metadata
}

func (r *ResourceResponse) FromModel(model model.Resource) {
	r.ID = model.ID
	r.Name = model.Name
	r.Kind = model.Kind
	r.Location = model.Location
	r.Capacity = model.Capacity
	r.HourlyRate = model.HourlyRate
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetResourcesResponse struct {
	Resources []ResourceResponse `json:"resources"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetResourcesResponse) FromModels(models []model.Resource, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Resources = make([]ResourceResponse, len(models))
	for i, mod := range models {
		r.Resources[i].FromModel(mod)
	}
}
