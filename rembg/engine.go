package rembg

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/nfnt/resize"
	"github.com/segmentio/ksuid"

	"github.com/chaos-io/rembg-api/util"
	nhttp "github.com/chaos-io/rembg-api/util/http"
)

// EngineRemover 调用外部抠图推理服务（rembg/BiRefNet 之类），
// multipart 上传 PNG，响应体就是处理后的 PNG。
type EngineRemover struct {
	endpoint string
	timeout  time.Duration
	cli      nhttp.IClient
}

func NewEngineRemover(endpoint string, timeout time.Duration) *EngineRemover {
	return &EngineRemover{
		endpoint: endpoint,
		timeout:  timeout,
		cli:      nhttp.NewHTTPClient(),
	}
}

func (e *EngineRemover) Remove(ctx context.Context, img image.Image) (image.Image, error) {
	buf, err := util.EncodePNG(img)
	if err != nil {
		return nil, err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	// image 文件字段
	part, err := writer.CreateFormFile("image", ksuid.New().String()+".png")
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, buf); err != nil {
		return nil, fmt.Errorf("copy form file: %w", err)
	}
	_ = writer.Close()

	var raw []byte
	reqParam := &nhttp.RequestParam{
		RequestURI:  e.endpoint,
		Method:      "POST",
		Header:      map[string]string{"Content-Type": writer.FormDataContentType()},
		Body:        body,
		RawResponse: &raw,
		Timeout:     e.timeout,
	}
	start := time.Now()
	if err := e.cli.DoHTTPRequest(ctx, reqParam); err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	out, err := util.DecodeImage(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode engine response: %w", err)
	}

	// 引擎可能按模型分辨率输出，缩放回原图尺寸
	if bounds, ob := img.Bounds(), out.Bounds(); ob.Dx() != bounds.Dx() || ob.Dy() != bounds.Dy() {
		out = resize.Resize(uint(bounds.Dx()), uint(bounds.Dy()), out, resize.Lanczos3)
	}

	slog.Debug("background removed", "endpoint", e.endpoint, "duration", time.Since(start))

	return out, nil
}
