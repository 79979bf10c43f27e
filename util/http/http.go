package http

import (
	"context"
	"time"
)

type IClient interface {
	DoHTTPRequest(ctx context.Context, requestParam *RequestParam) error
}

type RequestParam struct {
	RequestURI string
	Method     string
	Header     map[string]string
	Body       interface{}
	// Response 非空时，响应体按 JSON 反序列化进去
	Response interface{}
	// RawResponse 非空时，响应体原样写入（二进制，比如 PNG）
	RawResponse *[]byte

	Timeout time.Duration
}
