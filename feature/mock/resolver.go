package mock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mocklet/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
)

// Content types advertised for resolved responses.
const (
	ContentTypeJSON        = fiber.MIMEApplicationJSON
	ContentTypeText        = fiber.MIMETextPlain
	ContentTypeHTML        = fiber.MIMETextHTML
	ContentTypeOctetStream = fiber.MIMEOctetStream
)

// ObjectScheme prefixes specifiers that name an object in storage.
const ObjectScheme = "s3://"

var (
	// ErrInvalidJSONFile is returned when a .json source does not hold valid JSON.
	ErrInvalidJSONFile = errors.New("invalid JSON file")
	// ErrFileRead is returned when an existing source cannot be read.
	ErrFileRead = errors.New("unable to read response file")
)

// Response is the body and content type resolved for one request.
type Response struct {
	Body        []byte
	ContentType string
}

// Resolver turns a response specifier into a Response.
// The zero value resolves files and literals only.
type Resolver struct {
	objects storage.Client
	bucket  string
}

// NewResolver creates a resolver. A nil client disables s3:// specifiers.
func NewResolver(objects storage.Client, bucket string) *Resolver {
	return &Resolver{objects: objects, bucket: bucket}
}

// Resolve determines what to send for specifier. The source is probed on
// every call so edits to a response file show up on the next request.
func (r *Resolver) Resolve(ctx context.Context, specifier string) (Response, error) {
	if r.objects != nil && strings.HasPrefix(specifier, ObjectScheme) {
		res, found, err := r.resolveObject(ctx, strings.TrimPrefix(specifier, ObjectScheme))
		if found || err != nil {
			return res, err
		}
		return resolveLiteral(specifier), nil
	}

	info, err := os.Stat(specifier)
	if err != nil || !info.Mode().IsRegular() {
		return resolveLiteral(specifier), nil
	}
	return resolveFile(specifier)
}

func resolveFile(path string) (Response, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrFileRead, err)
	}
	return fromSource(path, data)
}

func (r *Resolver) resolveObject(ctx context.Context, key string) (Response, bool, error) {
	if key == "" {
		return Response{}, false, nil
	}

	if _, err := r.objects.StatObject(ctx, r.bucket, key, minio.StatObjectOptions{}); err != nil {
		if storage.IsNotFound(err) {
			return Response{}, false, nil
		}
		return Response{}, true, fmt.Errorf("%w: stat %s/%s: %v", ErrFileRead, r.bucket, key, err)
	}

	obj, err := r.objects.GetObject(ctx, r.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return Response{}, true, fmt.Errorf("%w: get %s/%s: %v", ErrFileRead, r.bucket, key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return Response{}, true, fmt.Errorf("%w: read %s/%s: %v", ErrFileRead, r.bucket, key, err)
	}

	res, err := fromSource(key, data)
	return res, true, err
}

// fromSource applies the extension rules shared by files and objects.
func fromSource(name string, data []byte) (Response, error) {
	contentType := ContentTypeForExt(filepath.Ext(name))
	if contentType == ContentTypeJSON && !json.Valid(data) {
		return Response{}, fmt.Errorf("%w: %s", ErrInvalidJSONFile, name)
	}
	return Response{Body: data, ContentType: contentType}, nil
}

func resolveLiteral(specifier string) Response {
	body := []byte(specifier)
	if json.Valid(body) {
		return Response{Body: body, ContentType: ContentTypeJSON}
	}
	return Response{Body: body, ContentType: ContentTypeText}
}

// ContentTypeForExt maps a file extension (with its dot) to a content type.
func ContentTypeForExt(ext string) string {
	switch ext {
	case ".json":
		return ContentTypeJSON
	case ".txt":
		return ContentTypeText
	case ".html":
		return ContentTypeHTML
	default:
		return ContentTypeOctetStream
	}
}
