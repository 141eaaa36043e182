package webserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeUpload     ErrorType = "upload"
	ErrorTypeFileIO     ErrorType = "file_io"
	ErrorTypeInternal   ErrorType = "internal"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	Type        ErrorType `json:"type"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Details     string    `json:"details"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

// CategorizeError analyzes an error and returns an appropriate ErrorResponse
func CategorizeError(err error) ErrorResponse {
	return CategorizeErrorWithLang(err, "en")
}

// CategorizeErrorWithLang analyzes an error and returns an appropriate
// ErrorResponse with translated title and description.
func CategorizeErrorWithLang(err error, lang string) ErrorResponse {
	if err == nil {
		return ErrorResponse{
			Type:        ErrorTypeInternal,
			Code:        "unknown_error",
			Title:       GetTranslation(lang, "error_internal_title"),
			Description: GetTranslation(lang, "error_internal_description"),
			Details:     "No error details available",
		}
	}

	errMsg := err.Error()
	errMsgLower := strings.ToLower(errMsg)

	// Policy violations detected by upload validation
	if strings.Contains(errMsgLower, "file type") ||
		strings.Contains(errMsgLower, "filename") ||
		strings.Contains(errMsgLower, "too large") ||
		strings.Contains(errMsgLower, "invalid characters") {
		return ErrorResponse{
			Type:        ErrorTypeValidation,
			Code:        "upload_rejected",
			Title:       GetTranslation(lang, "error_validation_title"),
			Description: GetTranslation(lang, "error_validation_description"),
			Details:     errMsg,
			Suggestions: []string{
				GetTranslation(lang, "error_validation_suggestion_type"),
				GetTranslation(lang, "error_validation_suggestion_name"),
			},
		}
	}

	// Broken multipart forms and missing file fields
	if strings.Contains(errMsgLower, "form") || strings.Contains(errMsgLower, "multipart") ||
		strings.Contains(errMsgLower, "retrieval") {
		return ErrorResponse{
			Type:        ErrorTypeUpload,
			Code:        "upload_form_error",
			Title:       GetTranslation(lang, "error_upload_title"),
			Description: GetTranslation(lang, "error_upload_description"),
			Details:     errMsg,
			Suggestions: []string{
				GetTranslation(lang, "error_upload_suggestion_selected"),
				GetTranslation(lang, "error_upload_suggestion_size"),
			},
		}
	}

	if strings.Contains(errMsgLower, "read") {
		return ErrorResponse{
			Type:        ErrorTypeFileIO,
			Code:        "file_read_error",
			Title:       GetTranslation(lang, "error_file_read_title"),
			Description: GetTranslation(lang, "error_file_read_description"),
			Details:     errMsg,
			Suggestions: []string{
				GetTranslation(lang, "error_file_read_suggestion_retry"),
			},
		}
	}

	return ErrorResponse{
		Type:        ErrorTypeInternal,
		Code:        "processing_error",
		Title:       GetTranslation(lang, "error_internal_title"),
		Description: GetTranslation(lang, "error_internal_description"),
		Details:     errMsg,
		Suggestions: []string{
			GetTranslation(lang, "error_internal_suggestion_retry"),
		},
	}
}

// WriteErrorResponse writes a structured error response as JSON
func WriteErrorResponse(w http.ResponseWriter, err error, statusCode int) {
	WriteErrorResponseWithLang(w, err, statusCode, "en")
}

// WriteErrorResponseWithLang writes a structured error response as JSON with language support
func WriteErrorResponseWithLang(w http.ResponseWriter, err error, statusCode int, lang string) {
	errorResp := CategorizeErrorWithLang(err, lang)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if jsonErr := json.NewEncoder(w).Encode(errorResp); jsonErr != nil {
		// Fallback to plain text if JSON encoding fails
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprintf(w, "Error: %v", err)
	}
}
