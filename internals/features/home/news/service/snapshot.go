package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bytedance/sonic"

	"schoolsite_backend/internals/features/home/news/dto"
)

// SnapshotSource membaca snapshot JSON yang ikut di-bundle bersama aplikasi.
// Read-only: file tidak pernah ditulis dari jalur request.
type SnapshotSource struct {
	path string
}

func NewSnapshotSource(path string) *SnapshotSource {
	return &SnapshotSource{path: path}
}

func (s *SnapshotSource) FetchNews(ctx context.Context, q NewsQuery) ([]dto.NewsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read news snapshot: %w", err)
	}
	items, err := DecodeSnapshot(raw)
	if err != nil {
		return nil, fmt.Errorf("decode news snapshot %s: %w", s.path, err)
	}
	return ApplyNewsQuery(items, q), nil
}

type snapshotEnvelope struct {
	News []dto.NewsResponse `json:"news"`
}

// DecodeSnapshot menerima array polos atau envelope {"news": [...]}.
func DecodeSnapshot(raw []byte) ([]dto.NewsResponse, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []dto.NewsResponse{}, nil
	}
	if trimmed[0] == '[' {
		var items []dto.NewsResponse
		if err := sonic.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var env snapshotEnvelope
	if err := sonic.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	if env.News == nil {
		env.News = []dto.NewsResponse{}
	}
	return env.News, nil
}

// EncodeSnapshot: format yang ditulis oleh `admin export-news-snapshot`.
func EncodeSnapshot(items []dto.NewsResponse) ([]byte, error) {
	if items == nil {
		items = []dto.NewsResponse{}
	}
	return sonic.ConfigStd.MarshalIndent(snapshotEnvelope{News: items}, "", "  ")
}

// WriteSnapshotFile: tulis ke file sementara di folder yang sama lalu rename,
// jadi pembaca tidak pernah melihat file setengah jadi. Hanya dipanggil dari CLI admin.
func WriteSnapshotFile(path string, items []dto.NewsResponse) error {
	raw, err := EncodeSnapshot(items)
	if err != nil {
		return fmt.Errorf("encode news snapshot: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".news-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(raw, '\n')); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ApplyNewsQuery: predikat, urutan, dan limit yang identik dengan query SQL di NewsService.
func ApplyNewsQuery(items []dto.NewsResponse, q NewsQuery) []dto.NewsResponse {
	out := make([]dto.NewsResponse, 0, len(items))
	for _, it := range items {
		if !q.IncludeUnpublished && !it.Published {
			continue
		}
		if q.Category != nil && it.Category != strings.TrimSpace(*q.Category) {
			continue
		}
		if q.Featured != nil && it.Featured != *q.Featured {
			continue
		}
		if it.Tags == nil {
			it.Tags = []string{}
		}
		out = append(out, it)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PublishedAt.Equal(out[j].PublishedAt) {
			return out[i].PublishedAt.After(out[j].PublishedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}
