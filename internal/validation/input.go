package validation

import "strings"

// UploadedFile is the in-memory copy of the multipart file part.
type UploadedFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}

// Extension returns the lowercased text after the last dot of the filename.
// A name without a dot is returned whole.
func (f *UploadedFile) Extension() string {
	name := f.Filename
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}

// Input is the data a single request offers to the rules. Rules only read it.
type Input struct {
	Values map[string]string
	File   *UploadedFile
}

// Value returns the submitted value for key, or "" when absent.
func (in *Input) Value(key string) string {
	if in == nil || in.Values == nil {
		return ""
	}
	return in.Values[key]
}
