package storage

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// AssetClass is one upload validation policy: a content-type allow-list and
// a size cap, parameterized per asset class rather than hard-coded per
// endpoint.
type AssetClass struct {
	Name     string
	MaxBytes int64
	// Types maps accepted content types to the file extension used in the
	// generated name.
	Types map[string]string
}

var assetClasses = map[string]AssetClass{
	"image": {
		Name:     "image",
		MaxBytes: 2 * 1024 * 1024,
		Types: map[string]string{
			"image/jpeg": "jpg",
			"image/png":  "png",
			"image/webp": "webp",
		},
	},
	"resume": {
		Name:     "resume",
		MaxBytes: 5 * 1024 * 1024,
		Types: map[string]string{
			"application/pdf": "pdf",
		},
	},
}

// ClassFor looks up the policy for an asset class name.
func ClassFor(kind string) (AssetClass, bool) {
	class, ok := assetClasses[kind]
	return class, ok
}

// Validate checks a prospective upload against the class policy. The error
// text is shown to the admin user as-is.
func (c AssetClass) Validate(contentType string, size int64) error {
	if _, ok := c.Types[contentType]; !ok {
		return fmt.Errorf("Only %s files are allowed", c.allowedList())
	}
	if size > c.MaxBytes {
		return fmt.Errorf("File size should be less than %dMB", c.MaxBytes/(1024*1024))
	}
	return nil
}

// Filename generates a unique name for the asset, timestamped so successive
// uploads never collide.
func (c AssetClass) Filename(contentType string) string {
	return fmt.Sprintf("%s-%d.%s", c.Name, time.Now().UnixMilli(), c.Types[contentType])
}

func (c AssetClass) allowedList() string {
	exts := make([]string, 0, len(c.Types))
	for _, ext := range c.Types {
		exts = append(exts, strings.ToUpper(ext))
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}
