package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/storage"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type cleanupResult struct {
	Scanned    int
	Stale      int
	StaleBytes int64
	Deleted    int
	Failed     []string
}

func newCleanupGeneratedCmd(a *app) *cobra.Command {
	var (
		prefix    string
		olderThan time.Duration
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "cleanup-generated",
		Short: "Delete stale campaign composites left behind by interrupted sends",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.storage(cmd.Context())
			if err != nil {
				return err
			}
			result, err := cleanupGenerated(cmd.Context(), files, prefix, olderThan, time.Now(), dryRun)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scanned=%d stale=%d (%s) deleted=%d failed=%d\n",
				result.Scanned, result.Stale, humanize.Bytes(uint64(result.StaleBytes)), result.Deleted, len(result.Failed))
			for _, p := range result.Failed {
				fmt.Fprintf(cmd.OutOrStdout(), "  failed: %s\n", p)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&prefix, "prefix", storage.GeneratedFolder+"/", "object prefix to scan, must stay under generated/")
	flags.DurationVar(&olderThan, "older-than", 24*time.Hour, "minimum age of deleted files")
	flags.BoolVar(&dryRun, "dry-run", false, "list stale files without deleting")
	return cmd
}

// cleanupGenerated removes generated files last updated before now-olderThan.
// Only prefixes inside the generated folder are accepted.
func cleanupGenerated(ctx context.Context, files storage.Storage, prefix string, olderThan time.Duration, now time.Time, dryRun bool) (cleanupResult, error) {
	var result cleanupResult
	if !strings.HasPrefix(prefix, storage.GeneratedFolder+"/") {
		return result, fmt.Errorf("prefix는 %s/ 아래여야 합니다: %q", storage.GeneratedFolder, prefix)
	}
	if olderThan < 0 {
		return result, fmt.Errorf("older-than은 0 이상이어야 합니다: %s", olderThan)
	}

	objects, err := files.List(ctx, prefix)
	if err != nil {
		return result, fmt.Errorf("파일 목록 조회 실패: %w", err)
	}
	result.Scanned = len(objects)

	cutoff := now.Add(-olderThan)
	var stale []string
	for _, obj := range objects {
		if obj.Updated.Before(cutoff) {
			stale = append(stale, obj.Path)
			result.StaleBytes += obj.Size
		}
	}
	result.Stale = len(stale)

	log := logger.FromContext(ctx)
	if dryRun {
		for _, p := range stale {
			log.Info("삭제 대상", "path", p)
		}
		return result, nil
	}

	result.Deleted, result.Failed = storage.RemoveQuietly(ctx, files, stale...)
	log.Info("생성 파일 정리 완료",
		"prefix", prefix,
		"scanned", result.Scanned,
		"size", humanize.Bytes(uint64(result.StaleBytes)),
		"deleted", result.Deleted,
		"failed", len(result.Failed),
	)
	return result, nil
}
