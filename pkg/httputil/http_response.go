package httputil

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

var encodingFailedBody = []byte(`{"code":500,"message":"error encoding response"}` + "\n")

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	write(w, statusCode, resp, sonic.ConfigFastest)
}

// WriteJSONResponse writes body with the status. A nil body writes the status only.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	if body == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		return
	}
	write(w, statusCode, body, sonic.ConfigDefault)
}

// write encodes the body before the status goes out, so a body that
// can't be encoded turns into a 500 instead of a cut off 2xx.
func write(w http.ResponseWriter, statusCode int, body any, api sonic.API) {
	data, err := api.Marshal(body)
	if err != nil {
		slog.Error("encoding response error", slog.Int("status", statusCode), slog.String("error", err.Error()))
		statusCode = http.StatusInternalServerError
		data = encodingFailedBody
	} else {
		data = append(data, '\n')
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err = w.Write(data); err != nil {
		slog.Warn("writing response error", slog.String("error", err.Error()))
	}
}
