package domain

import "github.com/go-kratos/kratos/v2/errors"

const (
	ReasonMissingID        = "MISSING_ID"
	ReasonMissingIdent     = "MISSING_IDENTIFIERS"
	ReasonMissingFocusArea = "MISSING_FOCUS_AREA_NAME"
	ReasonItemNotFound     = "ITEM_NOT_FOUND"
	ReasonFocusNotFound    = "FOCUS_AREA_NOT_FOUND"
	ReasonMissingAPIKey    = "MISSING_API_KEY"
	ReasonInvalidAPIKey    = "INVALID_API_KEY"
	ReasonRefreshFailed    = "REFRESH_FAILED"
	ReasonInvalidJSON      = "INVALID_JSON"
)

// DetailsKey 错误详情在 metadata 中的键
const DetailsKey = "details"

func ErrMissingID() *errors.Error {
	return errors.BadRequest(ReasonMissingID, "Missing ID")
}

func ErrMissingIdentifiers() *errors.Error {
	return errors.BadRequest(ReasonMissingIdent, "Missing identifiers")
}

func ErrMissingFocusAreaName() *errors.Error {
	return errors.BadRequest(ReasonMissingFocusArea, "Missing focus area name")
}

func ErrItemNotFound() *errors.Error {
	return errors.NotFound(ReasonItemNotFound, "Item not found")
}

func ErrFocusAreaNotFound() *errors.Error {
	return errors.NotFound(ReasonFocusNotFound, "Focus area not found")
}

func ErrMissingAPIKey() *errors.Error {
	return errors.InternalServer(ReasonMissingAPIKey, "Server configuration error: Missing API Key")
}

func ErrInvalidAPIKey() *errors.Error {
	return errors.InternalServer(ReasonInvalidAPIKey, "Server configuration error: Invalid API Key format")
}

// ErrRefreshFailed 刷新过程中的意外错误，details 为底层错误信息
func ErrRefreshFailed(details string) *errors.Error {
	return errors.InternalServer(ReasonRefreshFailed, "Failed to refresh data").
		WithMetadata(map[string]string{DetailsKey: details})
}

func ErrInvalidJSON() *errors.Error {
	return errors.BadRequest(ReasonInvalidJSON, "Invalid JSON body")
}
