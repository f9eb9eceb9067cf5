package dashboard

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

// Uploader sends one image to the backend and returns its public URL.
// *Client satisfies it; tests substitute fakes.
type Uploader interface {
	UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// File is one image picked for upload.
type File struct {
	Name        string
	ContentType string
	Data        io.Reader
}

// ImageSet is the ordered image list edited while composing a listing. The
// first element is the cover. Operations mutate local order only; uploads go
// through the injected Uploader one at a time.
type ImageSet struct {
	uploader Uploader
	urls     []string
}

// NewImageSet starts a set with any already-stored image URLs (editing an
// existing listing passes its current images).
func NewImageSet(uploader Uploader, existing ...string) *ImageSet {
	urls := make([]string, len(existing))
	copy(urls, existing)
	return &ImageSet{uploader: uploader, urls: urls}
}

// Add uploads files sequentially in the order supplied and appends each
// resulting URL. Non-image files are skipped up front. A failed upload is
// recorded and does not stop the remaining files: the set ends up with
// every image that succeeded, in their original relative order. The
// returned slice holds one error per skipped or failed file.
func (s *ImageSet) Add(ctx context.Context, files ...File) []error {
	var errs []error
	for _, f := range files {
		if !strings.HasPrefix(f.ContentType, "image/") {
			errs = append(errs, fmt.Errorf("%s: not an image (%s)", f.Name, f.ContentType))
			continue
		}
		url, err := s.uploader.UploadImage(ctx, f.Name, f.ContentType, f.Data)
		if err != nil {
			log.Error().Err(err).Str("file", f.Name).Msg("image upload failed")
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
			continue
		}
		s.urls = append(s.urls, url)
	}
	return errs
}

// Remove drops the image at index i, shifting the rest left.
func (s *ImageSet) Remove(i int) error {
	if i < 0 || i >= len(s.urls) {
		return fmt.Errorf("image index %d out of range [0,%d)", i, len(s.urls))
	}
	s.urls = append(s.urls[:i], s.urls[i+1:]...)
	return nil
}

// Move shifts the image at index i by delta positions (-1 promotes toward
// the cover, +1 demotes). Moves past either end are silent no-ops, as are
// out-of-range indexes.
func (s *ImageSet) Move(i, delta int) {
	j := i + delta
	if i < 0 || i >= len(s.urls) || j < 0 || j >= len(s.urls) {
		return
	}
	s.urls[i], s.urls[j] = s.urls[j], s.urls[i]
}

// Cover returns the first image URL, or "" for an empty set.
func (s *ImageSet) Cover() string {
	if len(s.urls) == 0 {
		return ""
	}
	return s.urls[0]
}

// URLs returns a copy of the current order.
func (s *ImageSet) URLs() []string {
	out := make([]string, len(s.urls))
	copy(out, s.urls)
	return out
}

// Len returns the number of images in the set.
func (s *ImageSet) Len() int { return len(s.urls) }
