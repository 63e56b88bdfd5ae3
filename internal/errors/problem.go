package errors

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
)

// Problem type URIs following RFC 7807
const (
	TypeSchema           = "/errors/schema"
	TypeParse            = "/errors/parse"
	TypeValidation       = "/errors/validation"
	TypeInsufficientData = "/errors/insufficient-data"
	TypeNotFound         = "/errors/not-found"
	TypePayloadTooLarge  = "/errors/payload-too-large"
	TypeStorage          = "/errors/storage"
	TypeTimeout          = "/errors/timeout"
	TypeInternal         = "/errors/internal"
)

// ProblemDetails implements RFC 7807 problem responses.
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	// Additional fields for extensibility
	Extensions map[string]interface{} `json:"-"`
}

// Render implements the render.Renderer interface
func (pd *ProblemDetails) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/problem+json")
	render.Status(r, pd.Status)
	return nil
}

// MarshalJSON custom marshaler to include extensions
func (pd *ProblemDetails) MarshalJSON() ([]byte, error) {
	data := make(map[string]interface{})

	data["type"] = pd.Type
	data["title"] = pd.Title
	data["status"] = pd.Status

	if pd.Detail != "" {
		data["detail"] = pd.Detail
	}
	if pd.Instance != "" {
		data["instance"] = pd.Instance
	}

	for key, value := range pd.Extensions {
		data[key] = value
	}

	return json.Marshal(data)
}

// NewProblemDetails creates a new RFC 7807 problem details response
func NewProblemDetails(status int, problemType, title, detail, instance string) *ProblemDetails {
	return &ProblemDetails{
		Type:       problemType,
		Title:      title,
		Status:     status,
		Detail:     detail,
		Instance:   instance,
		Extensions: make(map[string]interface{}),
	}
}

// WithExtension adds an extension field to the problem details
func (pd *ProblemDetails) WithExtension(key string, value interface{}) *ProblemDetails {
	pd.Extensions[key] = value
	return pd
}
