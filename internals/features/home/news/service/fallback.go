package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	database "schoolsite_backend/internals/databases"
	"schoolsite_backend/internals/features/home/news/dto"
	"schoolsite_backend/internals/middlewares/metrics"
)

// NewsSource: kapabilitas "ambil berita terfilter/tersortir/terbatas".
type NewsSource interface {
	FetchNews(ctx context.Context, q NewsQuery) ([]dto.NewsResponse, error)
}

// FallbackReader mencoba primary dulu; kalau store tidak tersedia / query ditolak,
// request ini saja yang turun ke snapshot. Tidak ada state yang dibawa antar request.
type FallbackReader struct {
	primary  NewsSource
	degraded NewsSource
	log      *zap.Logger
}

func NewFallbackReader(primary, degraded NewsSource, log *zap.Logger) *FallbackReader {
	return &FallbackReader{primary: primary, degraded: degraded, log: log}
}

func (r *FallbackReader) FetchNews(ctx context.Context, q NewsQuery) ([]dto.NewsResponse, error) {
	items, err := r.primary.FetchNews(ctx, q)
	if err == nil {
		return items, nil
	}
	if !database.IsFallbackable(err) || r.degraded == nil {
		return nil, err
	}

	r.log.Warn("news: record store failed, serving snapshot", zap.Error(err))
	// deadline request bisa jadi sudah habis karena DB menggantung; snapshot tetap dibaca
	items, snapErr := r.degraded.FetchNews(context.WithoutCancel(ctx), q)
	if snapErr != nil {
		metrics.FallbackRead("news", "error")
		// error primary tetap disertakan supaya log di controller lengkap
		return nil, errors.Join(err, snapErr)
	}
	metrics.FallbackRead("news", "ok")
	return items, nil
}
