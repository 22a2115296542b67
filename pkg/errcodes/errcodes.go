package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	RequestTooLarge     failure.ErrorCode = "RequestTooLarge"

	// League pipeline.
	MalformedInput   failure.ErrorCode = "MalformedInput"   // line missing fields or with a non-integer value
	LimitExceeded    failure.ErrorCode = "LimitExceeded"    // more than entity.MaxTeams records
	TeamNotFound     failure.ErrorCode = "TeamNotFound"     // selected name absent from the ranked table
	InvalidSortOrder failure.ErrorCode = "InvalidSortOrder" // neither Descending nor Ascending
)
