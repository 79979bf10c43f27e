package util

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"strings"

	_ "golang.org/x/image/webp"
)

// DecodeImage 解码上传的图片（png/jpeg/webp）
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// EncodePNG 将图片编码为内存中的 PNG
func EncodePNG(img image.Image) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf, nil
}

// Ext 取最后一个点之后的小写扩展名，没有点返回空串
func Ext(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// AllowedFile 检查扩展名是否在允许列表里
func AllowedFile(filename string, allowed []string) bool {
	ext := Ext(filename)
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// OutputName 生成下载文件名：原文件名去掉扩展名 + _no_background.png
func OutputName(filename string) string {
	base := filename
	if idx := strings.LastIndex(base, "."); idx >= 0 {
		base = base[:idx]
	}
	if base == "" {
		base = "image"
	}
	return base + "_no_background.png"
}
