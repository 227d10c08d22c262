package controller

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/home/media/dto"
	"schoolsite_backend/internals/features/home/media/service"
	helper "schoolsite_backend/internals/helpers"
	helperOSS "schoolsite_backend/internals/helpers/oss"
)

const (
	mediaKey = "media"
	entity   = "media"
)

type mediaService interface {
	ListPublished(ctx context.Context, q service.MediaQuery) ([]dto.MediaResponse, error)
	ListAll(ctx context.Context, q service.MediaQuery) ([]dto.MediaResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MediaResponse, error)
	Create(ctx context.Context, req dto.CreateMediaRequest) (*dto.MediaResponse, error)
	Update(ctx context.Context, id uuid.UUID, patch dto.PatchMediaRequest) (*dto.MediaResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Uploader: media host. nil → endpoint upload dimatikan.
type Uploader interface {
	Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (helperOSS.UploadResult, error)
	DeleteObject(ctx context.Context, key string) error
}

type MediaController struct {
	svc      mediaService
	uploader Uploader
	log      *zap.Logger
}

func NewMediaController(svc mediaService, uploader Uploader, log *zap.Logger) *MediaController {
	return &MediaController{svc: svc, uploader: uploader, log: log}
}

// GET ?id= | ?folder=&resourceType=&limit=
func (ctl *MediaController) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if raw := c.Query("id"); raw != "" {
		id, err := helper.ParseID(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
		item, err := ctl.svc.GetByID(ctx, id)
		if err != nil {
			return helper.WriteServiceError(c, ctl.log, entity, err)
		}
		return helper.JsonOK(c, mediaKey, item)
	}

	q := service.MediaQuery{
		Folder:       helper.QueryString(c, "folder"),
		ResourceType: helper.QueryString(c, "resourceType"),
	}
	var err error
	if q.Limit, err = helper.QueryLimit(c); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var items []dto.MediaResponse
	if helper.QueryFlag(c, "all") {
		items, err = ctl.svc.ListAll(ctx, q)
	} else {
		items, err = ctl.svc.ListPublished(ctx, q)
	}
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonOK(c, mediaKey, items)
}

func (ctl *MediaController) Create(c *fiber.Ctx) error {
	var req dto.CreateMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid request body")
	}
	item, err := ctl.svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonCreated(c, mediaKey, item)
}

/*
=========================================================

	POST /api/media/upload (multipart)
	file   : wajib
	folder : opsional
	alt    : opsional
	Gambar di-convert ke webp lalu dicatat sebagai record media.
	=========================================================
*/
func (ctl *MediaController) Upload(c *fiber.Ctx) error {
	if ctl.uploader == nil {
		return helper.JsonError(c, http.StatusServiceUnavailable, "media upload is not configured")
	}

	fh, err := helperOSS.GetFormFile(c, "file")
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, http.StatusBadRequest, "invalid multipart form")
	}
	if fh == nil {
		return helper.JsonError(c, http.StatusBadRequest, "file is required")
	}

	folder := c.FormValue("folder")
	res, err := ctl.uploader.Upload(c.UserContext(), fh, folder)
	switch {
	case errors.Is(err, helperOSS.ErrUnsupportedImage):
		return helper.JsonError(c, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, helperOSS.ErrFileTooLarge):
		return helper.JsonError(c, http.StatusRequestEntityTooLarge, err.Error())
	case err != nil:
		ctl.log.Error("media upload failed",
			zap.String("filename", fh.Filename),
			zap.Int64("size", fh.Size),
			zap.Error(err),
		)
		return helper.JsonError(c, http.StatusBadGateway, "media upload failed")
	}

	item, err := ctl.svc.Create(c.UserContext(), dto.CreateMediaRequest{
		URL:          res.URL,
		Alt:          c.FormValue("alt"),
		AssetID:      &res.Key,
		Folder:       folder,
		ResourceType: res.ResourceType,
	})
	if err != nil {
		ctl.discardUpload(c.UserContext(), res.Key)
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonCreated(c, mediaKey, item)
}

// discardUpload: record gagal dibuat → object di OSS dibuang supaya tidak yatim.
// Kalau hapus juga gagal, key dicatat untuk dibersihkan manual.
func (ctl *MediaController) discardUpload(ctx context.Context, key string) {
	if err := ctl.uploader.DeleteObject(context.WithoutCancel(ctx), key); err != nil {
		ctl.log.Error("media record not created, uploaded object left behind",
			zap.String("object_key", key),
			zap.Error(err),
		)
		return
	}
	ctl.log.Warn("media record not created, uploaded object removed", zap.String("object_key", key))
}

func (ctl *MediaController) Update(c *fiber.Ctx) error {
	var req dto.PatchMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid request body")
	}
	id, err := helper.ParseID(req.ID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	item, err := ctl.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonOK(c, mediaKey, item)
}

// DELETE hanya menghapus record; objek di media host tidak ikut dihapus.
func (ctl *MediaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c.Query("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.svc.Delete(c.UserContext(), id); err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonDeleted(c, id.String())
}
