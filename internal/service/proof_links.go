package service

import (
	"context"
	"log"

	"renty/internal/config"
	"renty/internal/domain"
	"renty/internal/port"
)

const defaultPresignExpirySecs = 3600

// attachProofURLs fills in presigned download links for stored proof files.
// A failed presign leaves that file's URL empty; the listing itself still
// succeeds.
func attachProofURLs(ctx context.Context, storage port.ObjectStorage, cfg *config.S3Config, files []domain.ProofFile) {
	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = defaultPresignExpirySecs
	}
	for i := range files {
		if files[i].StorageKey == "" {
			continue
		}
		url, err := storage.GetPresignedURL(ctx, cfg.Bucket, files[i].StorageKey, expiry)
		if err != nil {
			log.Printf("service.attachProofURLs: presigning %s: %v", files[i].StorageKey, err)
			continue
		}
		files[i].URL = url
	}
}
