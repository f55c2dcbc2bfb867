package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"inspirehub/internal/domains/document/model"
	"inspirehub/shared"
	gDto "inspirehub/shared/dto"
	gModel "inspirehub/shared/model"
	"inspirehub/shared/timezone"
)

type UploadDocumentRequest struct {
	MemberID string                `json:"member_id" validate:"required"`
	Title    string                `json:"title"     validate:"required,min=3,max=255"`
	Kind     string                `json:"kind"      validate:"required,oneof=contract notice other"`
	File     *multipart.FileHeader `json:"file"      validate:"required,mimetypes=application/pdf image/png image/jpeg,maxfilesize=10"`
	FileData multipart.File        `json:"-"`
}

type UploadDocumentBase64Request struct {
	MemberID string `json:"member_id" validate:"required"`
	Title    string `json:"title"     validate:"required,min=3,max=255"`
	Kind     string `json:"kind"      validate:"required,oneof=contract notice other"`
	FileName string `json:"file_name" validate:"required,max=255"`
	File     string `json:"file"      validate:"required"`
}

func ToModel(memberID, title, kind, fileName, fileURL, contentType, user string) model.Document {
	return model.Document{
		ID:          uuid.NewString(),
		MemberID:    memberID,
		Title:       title,
		Kind:        kind,
		FileName:    fileName,
		FileURL:     fileURL,
		ContentType: contentType,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type DocumentResponse struct {
	ID          string `json:"id"`
	MemberID    string `json:"member_id"`
	Title       string `json:"title"`
	Kind        string `json:"kind"`
	FileName    string `json:"file_name"`
	FileURL     string `json:"file_url"`
	DownloadURL string `json:"download_url,omitempty"`
	ContentType string `json:"content_type"`
	gDto.Metadata
}

func (r *DocumentResponse) FromModel(model model.Document) {
	r.ID = model.ID
	r.MemberID = model.MemberID
	r.Title = model.Title
	r.Kind = model.Kind
	r.FileName = model.FileName
	r.FileURL = model.FileURL
	r.ContentType = model.ContentType
	r.Metadata.FromModel(model.Metadata)
}

type GetDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetDocumentsResponse) FromModels(models []model.Document, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Documents = make([]DocumentResponse, len(models))
	for i, mod := range models {
		r.Documents[i].FromModel(mod)
	}
}
