// cmd/registerctl/main.go
// Command registerctl submits a registration to a running service and prints
// the outcome, one line per field error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/afsarahmad786/basicValidation/internal/client"
	"github.com/afsarahmad786/basicValidation/internal/utils"
	"go.uber.org/zap"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitError    = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("registerctl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		form     client.RegistrationForm
		baseURL  string
		filePath string
		logLevel string
		timeout  time.Duration
	)
	fs.StringVar(&baseURL, "url", "http://localhost:3000", "registration service base URL")
	fs.StringVar(&form.Username, "username", "", "username")
	fs.StringVar(&form.Email, "email", "", "email address")
	fs.StringVar(&form.Password, "password", "", "password")
	fs.StringVar(&form.DOB, "dob", "", "date of birth (YYYY-MM-DD)")
	fs.StringVar(&form.Role, "role", "", "role (admin or user)")
	fs.StringVar(&form.FileSize, "file-size", "", "declared file size in MB")
	fs.StringVar(&filePath, "file", "", "path of the file to upload")
	fs.StringVar(&logLevel, "log-level", "warn", "log level")
	fs.DurationVar(&timeout, "timeout", client.DefaultTimeout, "request timeout")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if err := utils.Init(utils.LogOptions{Level: logLevel, Console: stderr}); err != nil {
		fmt.Fprintf(stderr, "Failed to initialize logging: %v\n", err)
		return exitError
	}
	defer utils.Sync()

	if filePath != "" {
		f, err := os.Open(filePath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open file: %v\n", err)
			return exitError
		}
		defer f.Close()
		form.File = f
		form.FileName = filepath.Base(filePath)
		form.FileContentType = mime.TypeByExtension(filepath.Ext(filePath))
		if form.FileContentType == "" {
			form.FileContentType = "application/octet-stream"
		}
		form.FileType = form.FileContentType
	}

	rc := client.NewRegistrationClient(baseURL, timeout)
	defer rc.Close()

	resp, err := rc.Register(ctx, form)
	var failed *client.ValidationFailedError
	switch {
	case errors.As(err, &failed):
		for _, fe := range failed.Errors {
			fmt.Fprintf(stdout, "%s: %s\n", fe.Field, fe.Message)
		}
		return exitRejected
	case err != nil:
		utils.Logger.Error("Registration failed", zap.Error(err))
		fmt.Fprintf(stderr, "Registration failed: %v\n", err)
		return exitError
	}

	fmt.Fprintln(stdout, resp.Message)
	return exitOK
}
