package main

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// Parts above this size are spooled to temporary files by net/http.
const multipartMemory = 32 << 20

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())
}

func writeJSON(writer http.ResponseWriter, status int, data any) error {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	return json.NewEncoder(writer).Encode(data)
}

func writeEnvelope(writer http.ResponseWriter, status int, message string, data any) error {
	return writeJSON(writer, status, map[string]any{
		"success": status < 400,
		"message": message,
		"data":    data,
	})
}

func writeJSONError(writer http.ResponseWriter, status int, detail string) error {
	return writeJSON(writer, status, map[string]string{"detail": detail})
}

// readFormData caps the body at maxBytes, decodes the text fields into data
// using their `form` tags and returns the uploaded file headers.
func readFormData(writer http.ResponseWriter, request *http.Request, maxBytes int64, data any) (map[string][]*multipart.FileHeader, error) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBytes)

	files := make(map[string][]*multipart.FileHeader)

	if err := request.ParseMultipartForm(multipartMemory); err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			return nil, err
		}
		if err := request.ParseForm(); err != nil {
			return nil, err
		}
	} else {
		files = request.MultipartForm.File
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  data,
		TagName: "form",
	})
	if err != nil {
		return nil, err
	}

	values := make(map[string]any)
	for key, val := range request.Form {
		if len(val) == 1 {
			values[key] = val[0]
		} else {
			values[key] = val
		}
	}

	if err := decoder.Decode(values); err != nil {
		return nil, err
	}

	return files, nil
}
