package dto

import (
	"github.com/google/uuid"

	"inspirehub/internal/domains/notice/model"
	"inspirehub/shared"
	gDto "inspirehub/shared/dto"
	gModel "inspirehub/shared/model"
	"inspirehub/shared/timezone"
)

type CreateNoticeRequest struct {
	MemberID  string `json:"member_id"  validate:"required"`
	Title     string `json:"title"      validate:"required,max=255"`
	Body      string `json:"body"       validate:"required,max=2000"`
	AmountDue int64  `json:"amount_due" validate:"min=0"`
	DueDate   string `json:"due_date"   validate:"required,datetime=2006-01-02"`
}

func (c *CreateNoticeRequest) ToModel(user string) model.Notice {
	return model.Notice{
		ID:        uuid.NewString(),
		MemberID:  c.MemberID,
		Title:     c.Title,
		Body:      c.Body,
		AmountDue: c.AmountDue,
		DueDate:   c.DueDate,
		Settled:   false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateNoticeRequest struct {
	Title     string `db:"title"      json:"title"      validate:"omitempty,max=255"`
	Body      string `db:"body"       json:"body"       validate:"omitempty,max=2000"`
	AmountDue *int64 `db:"amount_due" json:"amount_due" validate:"omitempty,min=0"`
	DueDate   string `db:"due_date"   json:"due_date"   validate:"omitempty,datetime=2006-01-02"`
	Settled   *bool  `db:"settled"    json:"settled"    validate:"omitempty"`
}

type NoticeResponse struct {
	ID        string `json:"id"`
	MemberID  string `json:"member_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	AmountDue int64  `json:"amount_due"`
	DueDate   string `json:"due_date"`
	Settled   bool   `json:"settled"`
	gDto.Metadata
}

func (r *NoticeResponse) FromModel(model model.Notice) {
	r.ID = model.ID
	r.MemberID = model.MemberID
	r.Title = model.Title
	r.Body = model.Body
	r.AmountDue = model.AmountDue
	r.DueDate = model.DueDate
	r.Settled = model.Settled
	r.Metadata.FromModel(model.Metadata)
}

type GetNoticesResponse struct {
	Notices   []NoticeResponse `json:"notices"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetNoticesResponse) FromModels(models []model.Notice, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notices = make([]NoticeResponse, len(models))
	for i, mod := range models {
		r.Notices[i].FromModel(mod)
	}
}
