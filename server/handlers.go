package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chaos-io/rembg-api/config"
	"github.com/chaos-io/rembg-api/util"
)

func (s *Server) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Background Removal API",
		"version": Version,
		"endpoints": gin.H{
			"health":            "GET /health",
			"remove_background": "POST /remove-background",
		},
		"usage": "Send POST request to /remove-background with image file in form-data",
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Background Removal API is running",
	})
}

func (s *Server) removeBackground(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		s.fail(c, s.classifyFormFileErr(c, err))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	if header.Filename == "" {
		s.fail(c, errNoFileSelected())
		return
	}

	if !util.AllowedFile(header.Filename, config.AllowedExtensions) {
		s.fail(c, errUnsupportedType(config.AllowedExtensions))
		return
	}

	img, err := util.DecodeImage(file)
	if err != nil {
		s.fail(c, errProcessing(err))
		return
	}

	// 同步阻塞调用，模型推理可能要几十秒
	out, err := s.remover.Remove(c.Request.Context(), img)
	if err != nil {
		s.fail(c, errProcessing(err))
		return
	}

	buf, err := util.EncodePNG(out)
	if err != nil {
		s.fail(c, errProcessing(err))
		return
	}

	s.stats.Processed.Add(1)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", util.OutputName(header.Filename)))
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// classifyFormFileErr 区分超限、字段缺失和空文件名三种拿不到文件的情况
func (s *Server) classifyFormFileErr(c *gin.Context, err error) *apiError {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
		return errPayloadTooLarge(s.cfg.MaxUploadMB())
	}

	if errors.Is(err, http.ErrMissingFile) {
		// 空文件名的 part 会被 multipart 当成普通表单值
		if form := c.Request.MultipartForm; form != nil {
			if _, ok := form.Value["image"]; ok {
				return errNoFileSelected()
			}
		}
		return errMissingFile()
	}

	return errMissingFile()
}

func (s *Server) fail(c *gin.Context, apiErr *apiError) {
	if apiErr.kind == PayloadTooLarge {
		s.stats.Rejected.Add(1)
	} else {
		s.stats.Failed.Add(1)
	}

	slog.Warn("request failed",
		"request_id", c.GetString(requestIDKey),
		"status", apiErr.status(),
		"error", apiErr.Error())

	body := gin.H{"error": apiErr.message}
	if apiErr.details != "" {
		body["details"] = apiErr.details
	}
	c.JSON(apiErr.status(), body)
}
