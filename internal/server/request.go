package server

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/afsarahmad786/basicValidation/internal/validation"
	"github.com/gin-gonic/gin"
)

// bindRegistrationInput parses the multipart body into validation input. The
// first value of each form key is kept and the "file" part is read into memory.
func bindRegistrationInput(c *gin.Context) (*validation.Input, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}

	input := &validation.Input{Values: make(map[string]string, len(form.Value))}
	for key, vals := range form.Value {
		if len(vals) > 0 {
			input.Values[key] = vals[0]
		}
	}

	if headers := form.File[FormFileField]; len(headers) > 0 {
		file, err := readUploadedFile(headers[0])
		if err != nil {
			return nil, err
		}
		input.File = file
	}
	return input, nil
}

func readUploadedFile(header *multipart.FileHeader) (*validation.UploadedFile, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read uploaded file: %w", err)
	}

	return &validation.UploadedFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     content,
	}, nil
}
