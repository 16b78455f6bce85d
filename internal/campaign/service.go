package campaign

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/agent"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/poster"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/imaging"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/mail"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/markdown"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/storage"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const entityType = "poster"

// Options configures the fan-out and logo placement
type Options struct {
	Concurrency int
	Logo        imaging.Options
}

type CampaignService struct {
	db               *gorm.DB
	posterRepository *poster.PosterRepository
	agentRepository  *agent.AgentRepository
	storage          storage.Storage
	sender           mail.Sender
	recorder         activity.Recorder
	opts             Options
}

func NewCampaignService(
	db *gorm.DB,
	posterRepository *poster.PosterRepository,
	agentRepository *agent.AgentRepository,
	files storage.Storage,
	sender mail.Sender,
	recorder activity.Recorder,
	opts Options,
) *CampaignService {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &CampaignService{
		db:               db,
		posterRepository: posterRepository,
		agentRepository:  agentRepository,
		storage:          files,
		sender:           sender,
		recorder:         recorder,
		opts:             opts,
	}
}

// GeneratedPath is where the composited poster for one agent is stored during a send
func GeneratedPath(batchID string, agentID uint32) string {
	return path.Join(storage.GeneratedFolder, batchID, fmt.Sprintf("%d.png", agentID))
}

// batch is the state shared by every recipient of one send
type batch struct {
	id         string
	poster     *model.Poster
	posterData []byte
	subject    string
	html       string
	attachPDF  bool
}

// Send mails the poster to each selected active agent. One agent failing does not stop the others.
// Generated files are removed once every send has finished.
func (s *CampaignService) Send(ctx context.Context, request *SendRequest) (*SendResponse, error) {
	log := logger.FromContext(ctx)

	p, err := s.posterRepository.FindByID(ctx, s.db, request.PosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("포스터를 찾을 수 없습니다 posterID=%d %w", request.PosterID, poster.ErrPosterNotFound)
		}
		return nil, fmt.Errorf("포스터 조회 실패: %w", err)
	}
	if p.Image.Path == "" {
		return nil, fmt.Errorf("posterID=%d %w", p.ID, ErrPosterWithoutImage)
	}

	agentIDs := uniqueIDs(request.AgentIDs)
	agents, err := s.agentRepository.FindActiveByIDs(ctx, s.db, agentIDs)
	if err != nil {
		return nil, fmt.Errorf("여행사 조회 실패: %w", err)
	}
	if len(agents) == 0 {
		return nil, fmt.Errorf("requested=%d %w", len(agentIDs), ErrNoRecipients)
	}

	posterData, err := storage.ReadAll(ctx, s.storage, p.Image.Path)
	if err != nil {
		return nil, fmt.Errorf("포스터 이미지 다운로드 실패 path=%s: %w", p.Image.Path, err)
	}

	html, err := markdown.ToHTML(request.Body)
	if err != nil {
		return nil, err
	}

	b := &batch{
		id:         uuid.NewString(),
		poster:     p,
		posterData: posterData,
		subject:    request.Subject,
		html:       html,
		attachPDF:  request.AttachPDF && p.PDF.URL != "",
	}
	ctx = logger.With(ctx, "batch_id", b.id)
	log = logger.FromContext(ctx)

	log.Info("여행사 메일 발송 시작",
		"poster_id", p.ID,
		"recipients", len(agents),
		"concurrency", s.opts.Concurrency,
	)
	start := time.Now()

	results := make([]RecipientResult, len(agents))
	var g errgroup.Group
	g.SetLimit(s.opts.Concurrency)
	for i := range agents {
		a := &agents[i]
		g.Go(func() error {
			results[i] = s.sendOne(ctx, b, a)
			return nil
		})
	}
	_ = g.Wait()

	s.cleanup(ctx, results)

	response := &SendResponse{
		BatchID:   b.id,
		Requested: len(agentIDs),
		Skipped:   len(agentIDs) - len(agents),
		Results:   results,
	}
	for _, r := range results {
		if r.Status == StatusSent {
			response.Sent++
		} else {
			response.Failed++
		}
	}

	log.Info("여행사 메일 발송 완료",
		"sent", response.Sent,
		"failed", response.Failed,
		"skipped", response.Skipped,
		"elapsed", time.Since(start),
	)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionSendEmail,
		EntityType: entityType,
		EntityID:   activity.ID(p.ID),
		Summary:    fmt.Sprintf("batch=%s sent=%d failed=%d", b.id, response.Sent, response.Failed),
	})

	return response, nil
}

func (s *CampaignService) sendOne(ctx context.Context, b *batch, a *model.TravelAgent) RecipientResult {
	log := logger.FromContext(ctx)
	result := RecipientResult{AgentID: a.ID, Email: a.Email}

	attachment, err := s.posterFor(ctx, b, a, &result)
	if err != nil {
		log.Warn("포스터 합성 실패", "agent_id", a.ID, "error", err)
		result.Status = StatusFailed
		result.Error = err.Error()
		return result
	}

	msg := mail.Message{
		To:          []string{a.Email},
		Subject:     b.subject,
		HTML:        b.html,
		Attachments: []mail.Attachment{attachment},
	}
	if b.attachPDF {
		msg.Attachments = append(msg.Attachments, mail.Attachment{
			Filename:    path.Base(b.poster.PDF.Path),
			ContentType: "application/pdf",
			URL:         b.poster.PDF.URL,
		})
	}

	messageID, err := s.sender.Send(ctx, msg)
	if err != nil {
		log.Warn("여행사 메일 발송 실패",
			"agent_id", a.ID,
			"email", logger.MaskEmail(a.Email),
			"error", err,
		)
		result.Status = StatusFailed
		result.Error = err.Error()
		return result
	}

	result.Status = StatusSent
	result.MessageID = messageID
	return result
}

// posterFor returns the attachment for one agent: the poster with the agent logo
// composited, or the poster itself when the agent has no logo.
func (s *CampaignService) posterFor(ctx context.Context, b *batch, a *model.TravelAgent, result *RecipientResult) (mail.Attachment, error) {
	if a.Logo.Path == "" {
		return mail.Attachment{
			Filename: path.Base(b.poster.Image.Path),
			URL:      b.poster.Image.URL,
		}, nil
	}

	logoData, err := storage.ReadAll(ctx, s.storage, a.Logo.Path)
	if err != nil {
		return mail.Attachment{}, fmt.Errorf("로고 다운로드 실패: %w", err)
	}

	composed, err := imaging.CompositePNG(b.posterData, logoData, s.opts.Logo)
	if err != nil {
		return mail.Attachment{}, err
	}

	// 업로드가 중간에 실패해도 정리 대상에 포함
	result.generatedPath = GeneratedPath(b.id, a.ID)
	obj, err := s.storage.Upload(ctx, result.generatedPath, bytes.NewReader(composed), "image/png")
	if err != nil {
		return mail.Attachment{}, fmt.Errorf("합성 이미지 업로드 실패: %w", err)
	}

	return mail.Attachment{
		Filename:    fmt.Sprintf("poster-%d.png", a.ID),
		ContentType: "image/png",
		URL:         obj.URL,
	}, nil
}

// cleanup deletes every generated file of the batch. Failures are only logged.
func (s *CampaignService) cleanup(ctx context.Context, results []RecipientResult) {
	paths := make([]string, 0, len(results))
	for _, r := range results {
		if r.generatedPath != "" {
			paths = append(paths, r.generatedPath)
		}
	}
	if len(paths) == 0 {
		return
	}

	// 요청이 취소되어도 정리는 진행
	deleted, failed := storage.RemoveQuietly(context.WithoutCancel(ctx), s.storage, paths...)
	if len(failed) > 0 {
		logger.FromContext(ctx).Warn("생성 파일 정리 실패 (무시)",
			"deleted", deleted,
			"failed", failed,
		)
	}
}

// uniqueIDs drops repeated ids, keeping the first occurrence
func uniqueIDs(ids []uint32) []uint32 {
	seen := make(map[uint32]struct{}, len(ids))
	unique := make([]uint32, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
