// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	fabsdk "github.com/s7santosh/fabricops/pkg/sdk"
	"github.com/s7santosh/fabricops/rotation"
)

var _ rotation.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    rotation.Service
}

// NewLogging adds logging facilities to the rotation service.
func NewLogging(svc rotation.Service, logger *slog.Logger) rotation.Service {
	return &loggingMiddleware{
		logger: logger,
		svc:    svc,
	}
}

func (lm *loggingMiddleware) RenewAllCATLS(ctx context.Context) (report rotation.Report, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("certificate_authorities",
				slog.Int("total", report.Total),
				slog.Int("renewed", len(report.Renewed)),
			),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Renew CA TLS certificates failed", args...)
			return
		}
		lm.logger.Info("Renew CA TLS certificates completed successfully", args...)
	}(time.Now())

	return lm.svc.RenewAllCATLS(ctx)
}

func (lm *loggingMiddleware) RotatePeerCrypto(ctx context.Context, name string, crypto fabsdk.Crypto) (peer fabsdk.Peer, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("peer",
				slog.String("name", name),
				slog.String("id", peer.ID),
			),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Rotate peer crypto failed", args...)
			return
		}
		lm.logger.Info("Rotate peer crypto completed successfully", args...)
	}(time.Now())

	return lm.svc.RotatePeerCrypto(ctx, name, crypto)
}
