// Package storagetest provides an in-memory AwsS3 and multipart helpers for
// tests.
package storagetest

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"recipe-catalog/internal/utils/storage"

	"github.com/stretchr/testify/require"
)

// PNG is the smallest content the sniffer recognises as image/png.
var PNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// FileHeader builds a parsed multipart file header holding content.
func FileHeader(t testing.TB, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body, contentType := MultipartBody(t, "file", map[string][]byte{filename: content})
	_, params, ok := strings.Cut(contentType, "boundary=")
	require.True(t, ok)

	form, err := multipart.NewReader(body, params).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

// MultipartBody encodes files under field and returns the body with its
// content type.
func MultipartBody(t testing.TB, field string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	return orderedBody(t, field, names, files)
}

// OrderedMultipartBody is MultipartBody with an explicit file order.
func OrderedMultipartBody(t testing.TB, field string, names []string, contents [][]byte) (*bytes.Buffer, string) {
	t.Helper()

	files := make(map[string][]byte, len(names))
	for i, n := range names {
		files[n] = contents[i]
	}
	return orderedBody(t, field, names, files)
}

func orderedBody(t testing.TB, field string, names []string, files map[string][]byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, name := range names {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, name))
		h.Set("Content-Type", "application/octet-stream")
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(files[name])
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

// Fake keeps uploaded objects in memory.
type Fake struct {
	mu      sync.Mutex
	Objects map[string][]byte
	FailOn  string
}

var _ storage.AwsS3 = (*Fake)(nil)

func NewFake() *Fake {
	return &Fake{Objects: make(map[string][]byte)}
}

func (f *Fake) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	objectKey := folder + "/" + fileName
	if f.FailOn != "" && file.Filename == f.FailOn {
		return "", fmt.Errorf("upload of %s failed", file.Filename)
	}
	ok, err := storage.IsAllowed(file, allowed...)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", storage.ErrFileTypeNotAllowed
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.Objects[objectKey] = data
	return objectKey, nil
}

func (f *Fake) DeleteFile(objectKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.Objects, objectKey)
	return nil
}

func (f *Fake) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.example.com/" + objectKey
}

