package messages

import "errors"

const (
	DecodeRecordFailed   = "couldn't decode record %s: %v"
	InvalidPayloadMsg    = "invalid request payload"
	PrefetchFailedMsg    = "데이터 로딩 오류 (%s): %v"
	RedisFallbackMsg     = "redis unavailable, falling back to the database: %v"
	RedisWriteFailedMsg  = "couldn't mirror key %s on redis: %v"
	RequestFailedMsg     = "API 요청 실패: %s"
	SeedSuccessMsg       = "샘플 데이터가 생성되었습니다"
	StaleResponseDropMsg = "discarding stale response for %s"
	UnknownPageMsg       = "unknown page %q"
)

var (
	ErrInvalidPayload = errors.New(InvalidPayloadMsg)
	ErrRequestFailed  = errors.New("request failed")
)
