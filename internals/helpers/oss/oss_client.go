// internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"go.uber.org/zap"

	"schoolsite_backend/internals/configs"
)

// batas ukuran file upload
const MaxUploadSize = int64(10 * 1024 * 1024)

var ErrFileTooLarge = fmt.Errorf("file too large (max %d bytes)", MaxUploadSize)

// objectStore: subset *oss.Bucket yang dipakai (bisa di-fake di test).
type objectStore interface {
	PutObject(objectKey string, reader io.Reader, options ...oss.Option) error
	DeleteObject(objectKey string, options ...oss.Option) error
}

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	bucket     objectStore
	Endpoint   string
	BucketName string
	PublicBase string
	Prefix     string
	WebP       WebPOptions
}

// UploadResult: hasil upload (Key = asset id di record media).
type UploadResult struct {
	Key          string
	URL          string
	ContentType  string
	ResourceType string
}

func NewOSSService(cfg configs.OSSConfig, log *zap.Logger) (*OSSService, error) {
	if !cfg.Enabled() {
		return nil, errors.New("missing env: OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET_NAME")
	}
	client, err := oss.New(normalizeEndpoint(cfg.Endpoint), cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	// Verifikasi ringan lokasi bucket
	if loc, err := client.GetBucketLocation(cfg.Bucket); err != nil {
		var se oss.ServiceError
		if errors.As(err, &se) && se.StatusCode == http.StatusForbidden {
			log.Warn("oss: skip location check", zap.String("bucket", cfg.Bucket), zap.String("code", se.Code))
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Info("oss bucket ready", zap.String("bucket", cfg.Bucket), zap.String("location", loc))
	}

	return newOSSService(bkt, cfg), nil
}

func newOSSService(bucket objectStore, cfg configs.OSSConfig) *OSSService {
	return &OSSService{
		bucket:     bucket,
		Endpoint:   normalizeEndpoint(cfg.Endpoint),
		BucketName: cfg.Bucket,
		PublicBase: strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/"),
		Prefix:     strings.Trim(cfg.Prefix, "/"),
		WebP:       DefaultWebPOptions(),
	}
}

/* =======================================================================
   Upload
   - gambar (jpeg/png/webp) → recompress ke .webp
   - selain itu → upload apa adanya
======================================================================= */

func (s *OSSService) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (UploadResult, error) {
	if fh == nil {
		return UploadResult{}, errors.New("nil file header")
	}
	if fh.Size > MaxUploadSize {
		return UploadResult{}, ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return UploadResult{}, fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(io.LimitReader(src, MaxUploadSize+1))
	if err != nil {
		return UploadResult{}, fmt.Errorf("read file: %w", err)
	}
	if int64(len(all)) > MaxUploadSize {
		return UploadResult{}, ErrFileTooLarge
	}

	ct := detectContentType(all, fh.Filename)
	name := fh.Filename
	body := all

	if convertible(ct) {
		body, err = ConvertToWebP(bytes.NewReader(all), fh.Filename, s.WebP)
		if err != nil {
			return UploadResult{}, err
		}
		ct = "image/webp"
		name = strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename)) + ".webp"
	}

	key := s.buildObjectKey(folder, name)
	if err := s.PutObject(ctx, key, bytes.NewReader(body), ct); err != nil {
		return UploadResult{}, err
	}
	return UploadResult{
		Key:          key,
		URL:          s.PublicURL(key),
		ContentType:  ct,
		ResourceType: ResourceTypeFor(ct),
	}, nil
}

func (s *OSSService) PutObject(ctx context.Context, key string, r io.Reader, contentType string) error {
	if key == "" {
		return errors.New("empty key")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.bucket.PutObject(key, r,
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	)
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.bucket.DeleteObject(key, oss.WithContext(ctx))
}

/* =======================================================================
   Public URL & Key utils
======================================================================= */

func (s *OSSService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if s.PublicBase != "" {
		return s.PublicBase + "/" + key
	}
	host := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, host, key)
}

func (s *OSSService) KeyFromPublicURL(publicURL string) (string, error) {
	if publicURL == "" {
		return "", errors.New("empty url")
	}
	if s.PublicBase != "" && strings.HasPrefix(publicURL, s.PublicBase+"/") {
		return strings.TrimPrefix(publicURL, s.PublicBase+"/"), nil
	}
	u := publicURL
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	if i := strings.Index(u, "/"); i >= 0 && i < len(u)-1 {
		return u[i+1:], nil
	}
	return "", fmt.Errorf("cannot extract key from url: %s", publicURL)
}

/* =======================================================================
   Misc utils
======================================================================= */

func normalizeEndpoint(ep string) string {
	ep = strings.TrimSpace(ep)
	if ep == "" || strings.HasPrefix(ep, "http://") || strings.HasPrefix(ep, "https://") {
		return ep
	}
	return "https://" + ep
}

// <prefix>/<folder>/<slug>_<yyyymmdd_hhmmss>_<rand><ext>
func (s *OSSService) buildObjectKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	parts := make([]string, 0, 3)
	if s.Prefix != "" {
		parts = append(parts, s.Prefix)
	}
	for _, p := range strings.Split(strings.Trim(folder, "/"), "/") {
		if p = slugify(p); p != "" {
			parts = append(parts, p)
		}
	}
	name := fmt.Sprintf("%s_%s_%s%s", orDefault(slugify(base), "file"), time.Now().Format("20060102_150405"), randHex(3), ext)
	return strings.Join(append(parts, name), "/")
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// detectContentType: ekstensi dulu, lalu sniff 512B, override utk format modern.
func detectContentType(all []byte, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	}
	ct := mime.TypeByExtension(ext)
	if ct == "" || ct == "application/octet-stream" {
		head := all
		if len(head) > 512 {
			head = head[:512]
		}
		ct = http.DetectContentType(head)
	}
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}

func convertible(ct string) bool {
	switch ct {
	case "image/jpeg", "image/png", "image/webp":
		return true
	}
	return false
}

// ResourceTypeFor: image | video | document.
func ResourceTypeFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return "document"
	}
}
