package dto

import (
	"github.com/google/uuid"

	"inspirehub/internal/domains/member/model"
	"inspirehub/shared"
	"inspirehub/shared/constant"
	gDto "inspirehub/shared/dto"
	gModel "inspirehub/shared/model"
	"inspirehub/shared/timezone"
)

type CreateMemberRequest struct {
	Email    string  `json:"email"     validate:"required,email"`
	Password string  `json:"password"  validate:"required,min=8"`
	FullName string  `json:"full_name" validate:"required,min=2,max=100"`
	Level    string  `json:"level"     validate:"omitempty,oneof=admin staff member"`
	Company  *string `json:"company,omitempty"`
	Phone    *string `json:"phone,omitempty"   validate:"omitempty,e164"`
	Verified *bool   `json:"verified,omitempty"`
}

func (r *CreateMemberRequest) ToModel(username, hashedPassword string) model.Member {
	level := r.Level
	if level == "" {
		level = constant.RoleMember
	}

	verified := false
	if r.Verified != nil {
		verified = *r.Verified
	}

	return model.Member{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Level:    level,
		FullName: r.FullName,
		Company:  r.Company,
		Phone:    r.Phone,
		Verified: verified,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateMemberRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	Level    *string `json:"level,omitempty"     validate:"omitempty,oneof=admin staff member"`
	Company  *string `json:"company,omitempty"`
	Phone    *string `json:"phone,omitempty"     validate:"omitempty,e164"`
	Verified *bool   `json:"verified,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

type MemberResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Level     string  `json:"level"`
	FullName  string  `json:"full_name"`
	Company   *string `json:"company,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Verified  bool    `json:"verified"`
	LastLogin *string `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *MemberResponse) FromModel(model model.Member) {
	r.ID = model.ID
	r.Email = model.Email
	r.Level = model.Level
	r.FullName = model.FullName
	r.Company = model.Company
	r.Phone = model.Phone
	r.Verified = model.Verified
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetMembersResponse struct {
	Members   []MemberResponse `json:"members"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetMembersResponse) FromModels(models []model.Member, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Members = make([]MemberResponse, len(models))
	for i, mod := range models {
		r.Members[i].FromModel(mod)
	}
}
