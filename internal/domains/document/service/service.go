package service


import (
	"context"
	stdBase64 "encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"inspirehub/config"
	"inspirehub/infras/otel"
	"inspirehub/infras/s3"
	"inspirehub/internal/domains/document/model"
	"inspirehub/internal/domains/document/model/dto"
	"inspirehub/internal/domains/document/repository"
	"inspirehub/shared"
	"inspirehub/shared/base64"
	"inspirehub/shared/constant"
	gDto "inspirehub/shared/dto"
	"inspirehub/shared/failure"
)

const downloadLinkTTL = 15 * time.Minute

type Document interface {
	Upload(ctx context.Context, req dto.UploadDocumentRequest) (dto.DocumentResponse, error)
	UploadBase64(ctx context.Context, req dto.UploadDocumentBase64Request) (dto.DocumentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDocumentsResponse, error)
	GetMyDocuments(ctx context.Context, req gDto.QueryParams) (dto.GetDocumentsResponse, error)
	Get(ctx context.Context, id string) (dto.DocumentResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Document
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(repo repository.Document, cfg *config.Config, otel otel.Otel, s3 s3.S3) Document {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

// Upload stores a multipart file in object storage and files the pointer row.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadDocumentRequest) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.FileData, req.File, req.File.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload document to S3")

		return res, fmt.Errorf("failed to upload document to S3: %w", err)
	}

	contentType := req.File.Header.Get(constant.RequestHeaderContentType)
	document := dto.ToModel(req.MemberID, req.Title, req.Kind, req.File.Filename, url, contentType, user)

	if err = s.repo.Insert(ctx, document); err != nil {
		log.Error().Err(err).Msg("failed to create document")

		return res, fmt.Errorf("failed to create document: %w", err)
	}

	res.FromModel(document)

	return res, nil
}

// UploadBase64 accepts a data-URI payload, decodes it, and stores it the same
// way as the multipart path.
func (s *serviceImpl) UploadBase64(ctx context.Context, req dto.UploadDocumentBase64Request) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadBase64")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	contentType := base64.GetContentType(req.File)
	if contentType == constant.Empty {
		return res, failure.BadRequestFromString("file must be a base64 data URI") //nolint:wrapcheck
	}

	marker := ";base64,"
	payload := req.File[strings.Index(req.File, marker)+len(marker):]

	fileData, err := stdBase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return res, failure.BadRequestFromString("file payload is not valid base64") //nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFileBytes(ctx, bucketName, model.EntityName, req.FileName, contentType, fileData)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload document to S3")

		return res, fmt.Errorf("failed to upload document to S3: %w", err)
	}

	document := dto.ToModel(req.MemberID, req.Title, req.Kind, req.FileName, url, contentType, user)

	if err = s.repo.Insert(ctx, document); err != nil {
		log.Error().Err(err).Msg("failed to create document")

		return res, fmt.Errorf("failed to create document: %w", err)
	}

	res.FromModel(document)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDocumentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count documents")

		return res, fmt.Errorf("failed to count documents: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get documents")

		return res, fmt.Errorf("failed to get documents: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// GetMyDocuments lists documents filed against the calling member.
func (s *serviceImpl) GetMyDocuments(ctx context.Context, req gDto.QueryParams) (res dto.GetDocumentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMyDocuments")
	defer scope.End()
	defer scope.TraceIfError(err)

	member, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if member == constant.Empty {
		return res, failure.Unauthorized("missing member identity") //nolint:wrapcheck
	}

	return s.GetAll(ctx, req, repository.ForMember(member))
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	document, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get document")

		return res, fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		return res, failure.NotFound("document not found") //nolint:wrapcheck
	}

	res.FromModel(document)

	// The stored URL points at a private bucket; hand out a short-lived link
	// instead. The row is still returned when presigning fails.
	bucketName := s.cfg.External.S3.BucketName
	if objectName := s.s3.GetObjectNameFromURL(bucketName, document.FileURL); objectName != constant.Empty {
		downloadURL, presignErr := s.s3.PresignDownload(ctx, bucketName, model.EntityName, objectName, downloadLinkTTL)
		if presignErr != nil {
			log.Warn().Err(presignErr).Str("id", document.ID).Msg("failed to presign document download URL")
		} else {
			res.DownloadURL = downloadURL
		}
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	document, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get document for deletion")

		return fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		return failure.NotFound("document not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete document")

		return fmt.Errorf("failed to delete document: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, document.FileURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", document.FileURL).Msg("failed to extract object name from URL")

			return
		}

		if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete document file from S3")
		}
	}()

	return nil
}
