// storage.go
//
// Content and data service for the ExpoStands exhibition stand marketing site
// Copyright (c) 2026 ExpoStands OU <dev@expostands.com> (https://www.expostands.com)
//
// This file is part of expostands-api.
// expostands-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// expostands-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with expostands-api.
// If not, see <https://www.gnu.org/licenses/>.

package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/expostands/expostands-api/internal/types"
	"github.com/google/uuid"
)

// BucketPolicy declares the upload constraints of one named bucket.
type BucketPolicy struct {
	MaxSize      int64    // bytes
	AllowedMIMEs []string // exact Content-Type matches
	Public       bool     // public buckets get a deterministic public URL
}

const defaultMaxSize = 10 << 20 // 10MB

var defaultImageMIMEs = []string{"image/jpeg", "image/png", "image/webp"}

// DefaultBuckets is the bucket set the site uses. setup-storage and the
// server boot path both ensure these exist.
func DefaultBuckets() map[string]BucketPolicy {
	return map[string]BucketPolicy{
		"contact-images":   {MaxSize: defaultMaxSize, AllowedMIMEs: defaultImageMIMEs, Public: true},
		"city-images":      {MaxSize: defaultMaxSize, AllowedMIMEs: defaultImageMIMEs, Public: true},
		"portfolio-images": {MaxSize: defaultMaxSize, AllowedMIMEs: defaultImageMIMEs, Public: true},
		"blog-images":      {MaxSize: defaultMaxSize, AllowedMIMEs: defaultImageMIMEs, Public: true},
	}
}

// Object describes one stored file.
type Object struct {
	Bucket    string `json:"bucket"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	PublicURL string `json:"public_url,omitempty"`
	Size      int64  `json:"size"`
}

// Store is a filesystem-rooted bucket store. One Store instance is shared
// across requests; all methods are safe for concurrent use because every
// call touches an independent file.
type Store struct {
	Root    string
	BaseURL string
	Buckets map[string]BucketPolicy
}

// New creates a Store over root with the default bucket set.
func New(root, baseURL string) *Store {
	return &Store{
		Root:    root,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Buckets: DefaultBuckets(),
	}
}

// EnsureBucket creates the bucket directory if it does not exist.
// Returns true when the bucket was created by this call.
func (s *Store) EnsureBucket(name string) (bool, error) {
	if _, ok := s.Buckets[name]; !ok {
		return false, fmt.Errorf("unknown bucket: %s", name)
	}
	dir := filepath.Join(s.Root, name)
	if _, err := os.Stat(dir); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create bucket %s: %w", name, err)
	}
	return true, nil
}

// Upload validates the file against the bucket policy and stores it under a
// randomized name (timestamp plus random suffix) to avoid collisions.
func (s *Store) Upload(bucket string, file *multipart.FileHeader) (*Object, error) {
	policy, ok := s.Buckets[bucket]
	if !ok {
		return nil, &types.CustomError{
			Code:    404,
			Message: fmt.Sprintf("Bucket '%s' not found", bucket),
			Type:    "storage.bucket",
		}
	}

	if file.Size > policy.MaxSize {
		return nil, &types.CustomError{
			Code:    400,
			Message: fmt.Sprintf("File size exceeds %dMB limit", policy.MaxSize>>20),
			Type:    "storage.size",
		}
	}

	contentType := file.Header.Get("Content-Type")
	if !mimeAllowed(contentType, policy.AllowedMIMEs) {
		return nil, &types.CustomError{
			Code:    400,
			Message: fmt.Sprintf("File type '%s' is not allowed", contentType),
			Type:    "storage.mime",
		}
	}

	if _, err := s.EnsureBucket(bucket); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102150405"), uuid.New().String()[:8], ext)
	dst := filepath.Join(s.Root, bucket, name)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	written, err := io.Copy(out, src)
	if err != nil {
		os.Remove(dst)
		return nil, fmt.Errorf("failed to write %s: %w", dst, err)
	}

	obj := &Object{
		Bucket: bucket,
		Name:   name,
		Path:   fmt.Sprintf("%s/%s", bucket, name),
		Size:   written,
	}
	if policy.Public {
		obj.PublicURL = s.PublicURL(bucket, name)
	}

	return obj, nil
}

// PublicURL returns the deterministic public URL of an object.
func (s *Store) PublicURL(bucket, name string) string {
	return fmt.Sprintf("%s/storage/%s/%s", s.BaseURL, bucket, name)
}

// Remove deletes an object by its stored path.
func (s *Store) Remove(bucket, name string) error {
	if _, ok := s.Buckets[bucket]; !ok {
		return &types.CustomError{
			Code:    404,
			Message: fmt.Sprintf("Bucket '%s' not found", bucket),
			Type:    "storage.bucket",
		}
	}

	// Base strips any path traversal in the requested name.
	path := filepath.Join(s.Root, bucket, filepath.Base(name))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return &types.CustomError{
				Code:    404,
				Message: fmt.Sprintf("Object '%s' not found in bucket '%s'", name, bucket),
				Type:    "storage.object",
			}
		}
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// List enumerates the objects of a bucket.
func (s *Store) List(bucket string) ([]Object, error) {
	policy, ok := s.Buckets[bucket]
	if !ok {
		return nil, &types.CustomError{
			Code:    404,
			Message: fmt.Sprintf("Bucket '%s' not found", bucket),
			Type:    "storage.bucket",
		}
	}

	dir := filepath.Join(s.Root, bucket)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Object{}, nil
		}
		return nil, fmt.Errorf("failed to read bucket %s: %w", bucket, err)
	}

	objects := make([]Object, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		obj := Object{
			Bucket: bucket,
			Name:   entry.Name(),
			Path:   fmt.Sprintf("%s/%s", bucket, entry.Name()),
			Size:   info.Size(),
		}
		if policy.Public {
			obj.PublicURL = s.PublicURL(bucket, entry.Name())
		}
		objects = append(objects, obj)
	}

	return objects, nil
}

func mimeAllowed(contentType string, allowed []string) bool {
	// Strip any charset or boundary parameters
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(strings.ToLower(contentType))
	for _, m := range allowed {
		if contentType == m {
			return true
		}
	}
	return false
}
