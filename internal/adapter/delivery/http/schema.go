package http

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Vaibhavmishra08/urlshortner/internal/entity"
)

const statusError = "error"

// shortenRequest represents the structure for a request to register a destination.
type shortenRequest struct {
	Destination string `json:"destination" validate:"required"`
}

// linkResponse represents the structure for a response containing a registered link.
type linkResponse struct {
	Alias       string    `json:"alias"`
	ShortURL    string    `json:"short_url"`
	Destination string    `json:"destination"`
	VisitCount  int64     `json:"visit_count"`
	SequenceID  uint64    `json:"sequence_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// toLinkResponse converts an entity.Link to a linkResponse, building the
// short URL from the configured base URL.
func toLinkResponse(baseURL string, link *entity.Link) linkResponse {
	return linkResponse{
		Alias:       link.Alias,
		ShortURL:    strings.TrimSuffix(baseURL, "/") + "/" + link.Alias,
		Destination: link.Destination,
		VisitCount:  link.VisitCount,
		SequenceID:  link.SequenceID,
		CreatedAt:   link.CreatedAt,
	}
}

// linkListResponse represents the structure for a response listing registered links.
type linkListResponse struct {
	Links []linkResponse `json:"links"`
	Count int            `json:"count"`
}

// toLinkListResponse converts a registry snapshot to a linkListResponse
// sorted by recency, most recent registration first.
func toLinkListResponse(baseURL string, links []*entity.Link) linkListResponse {
	sort.Slice(links, func(i, j int) bool {
		return links[i].SequenceID > links[j].SequenceID
	})

	resp := linkListResponse{
		Links: make([]linkResponse, 0, len(links)),
		Count: len(links),
	}
	for _, link := range links {
		resp.Links = append(resp.Links, toLinkResponse(baseURL, link))
	}

	return resp
}

// statsResponse represents the structure for a response with aggregate registry counters.
type statsResponse struct {
	TotalAliases int64 `json:"total_aliases"`
	TotalVisits  int64 `json:"total_visits"`
}

// toStatsResponse converts entity.RegistryStats to a statsResponse.
func toStatsResponse(stats entity.RegistryStats) statsResponse {
	return statsResponse{
		TotalAliases: stats.TotalAliases,
		TotalVisits:  stats.TotalVisits,
	}
}

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response.
type errorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  []validationError `json:"errors,omitempty"`
}

// Predefined error responses for common scenarios.
var (
	emptyRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "empty request body",
	}

	invalidRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "invalid request body",
	}

	aliasNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "alias not found",
	}

	serverErrorResponse = errorResponse{
		Status:  statusError,
		Message: "server error occurred",
	}
)

// messageForTag returns a user-friendly message based on the validation tag.
func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	default:
		return "invalid value"
	}
}

// getValidationErrors processes validation errors and returns a list of validationError.
func getValidationErrors(err error) []validationError {
	var validationErrs []validationError

	errs, ok := err.(validator.ValidationErrors)
	if ok {
		for _, e := range errs {
			validationErrs = append(validationErrs, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return validationErrs
}

// validationErrorResponse constructs an errorResponse for request envelope
// validation errors.
func validationErrorResponse(err error) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors:  getValidationErrors(err),
	}
}

// destinationErrorResponse constructs an errorResponse for core destination
// validation failures.
func destinationErrorResponse(err error) errorResponse {
	message := "invalid value"
	if errors.Is(err, entity.ErrEmptyDestination) {
		message = "destination is empty"
	} else if errors.Is(err, entity.ErrInvalidDestination) {
		message = "destination is not a valid url"
	}

	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors: []validationError{
			{Field: "destination", Message: message},
		},
	}
}
