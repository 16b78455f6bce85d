package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/product"
	sharedContext "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

const entityType = "booking"

type BookingService struct {
	db                *gorm.DB
	bookingRepository *BookingRepository
	productRepository *product.ProductRepository
	recorder          activity.Recorder
}

func NewBookingService(db *gorm.DB, bookingRepository *BookingRepository, productRepository *product.ProductRepository, recorder activity.Recorder) *BookingService {
	return &BookingService{
		db:                db,
		bookingRepository: bookingRepository,
		productRepository: productRepository,
		recorder:          recorder,
	}
}

func (s *BookingService) List(ctx context.Context, query *ListBookingsQuery, page handler.Page) (*handler.PageResponse[BookingResponse], error) {
	filter, err := toFilter(query)
	if err != nil {
		return nil, err
	}

	bookings, total, err := s.bookingRepository.FindPage(ctx, s.db, filter, page.Offset(), page.Size)
	if err != nil {
		return nil, fmt.Errorf("예약 목록 조회 실패: %w", err)
	}

	items := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, toBookingResponse(&bookings[i]))
	}

	response := handler.NewPageResponse(items, total, page)
	return &response, nil
}

func (s *BookingService) Get(ctx context.Context, id uint32) (*BookingResponse, error) {
	booking, err := s.find(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	response := toBookingResponse(booking)
	return &response, nil
}

// Create stores a pending booking. Public bookings cannot name an agent and
// must target an active product.
func (s *BookingService) Create(ctx context.Context, request *BookingRequest, public bool) (uint32, error) {
	log := logger.FromContext(ctx)

	booking := &model.Booking{Status: model.BookingPending}
	if err := request.apply(booking); err != nil {
		return 0, fmt.Errorf("여행일 파싱 실패: %w", err)
	}
	if public {
		booking.AgentID = nil
	}
	booking.StampCreated(sharedContext.ActorUserID(ctx))

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		p, err := s.findProduct(ctx, tx, booking.ProductID)
		if err != nil {
			return err
		}
		if public && !p.IsActive {
			return fmt.Errorf("비활성 상품 예약 시도 productID=%d %w", p.ID, product.ErrProductNotFound)
		}
		booking.ProductTitle = p.Title.Ko

		if err := s.bookingRepository.Create(ctx, tx, booking); err != nil {
			return fmt.Errorf("예약 생성 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("예약 생성 완료",
		"booking_id", booking.ID,
		"product_id", booking.ProductID,
		"public", public,
		"email", logger.MaskEmail(booking.CustomerEmail),
		"phone", logger.MaskPhone(booking.CustomerPhone),
	)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionCreate,
		EntityType: entityType,
		EntityID:   activity.ID(booking.ID),
		Summary:    fmt.Sprintf("%s %s", booking.ProductTitle, booking.TravelDate.Format(dateLayout)),
	})
	return booking.ID, nil
}

// Update changes booking details. The status is changed through ChangeStatus only.
func (s *BookingService) Update(ctx context.Context, id uint32, request *BookingRequest) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		booking, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}

		productChanged := booking.ProductID != request.ProductID
		if err := request.apply(booking); err != nil {
			return fmt.Errorf("여행일 파싱 실패: %w", err)
		}
		if productChanged {
			p, err := s.findProduct(ctx, tx, booking.ProductID)
			if err != nil {
				return err
			}
			booking.ProductTitle = p.Title.Ko
		}
		booking.StampUpdated(sharedContext.ActorUserID(ctx))

		if err := s.bookingRepository.Save(ctx, tx, booking); err != nil {
			return fmt.Errorf("예약 수정 실패 bookingID=%d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("예약 수정 완료", "booking_id", id)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionUpdate,
		EntityType: entityType,
		EntityID:   activity.ID(id),
	})
	return nil
}

func (s *BookingService) ChangeStatus(ctx context.Context, id uint32, status string) error {
	log := logger.FromContext(ctx)

	var from string
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		booking, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}

		from = booking.Status
		if !booking.CanTransitionTo(status) {
			log.Warn("허용되지 않은 예약 상태 변경", "booking_id", id, "from", from, "to", status)
			return fmt.Errorf("bookingID=%d %s->%s %w", id, from, status, ErrInvalidTransition)
		}

		booking.Status = status
		booking.StampUpdated(sharedContext.ActorUserID(ctx))
		if err := s.bookingRepository.Save(ctx, tx, booking); err != nil {
			return fmt.Errorf("예약 상태 변경 실패 bookingID=%d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("예약 상태 변경 완료", "booking_id", id, "from", from, "to", status)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionUpdate,
		EntityType: entityType,
		EntityID:   activity.ID(id),
		Summary:    from + " -> " + status,
	})
	return nil
}

func (s *BookingService) Delete(ctx context.Context, id uint32) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.find(ctx, tx, id); err != nil {
			return err
		}
		if err := s.bookingRepository.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("예약 삭제 실패 bookingID=%d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("예약 삭제 완료", "booking_id", id)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionDelete,
		EntityType: entityType,
		EntityID:   activity.ID(id),
	})
	return nil
}

func (s *BookingService) find(ctx context.Context, db *gorm.DB, id uint32) (*model.Booking, error) {
	booking, err := s.bookingRepository.FindByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("예약을 찾을 수 없습니다 bookingID=%d %w", id, ErrBookingNotFound)
		}
		return nil, fmt.Errorf("예약 조회 실패: %w", err)
	}
	return booking, nil
}

func (s *BookingService) findProduct(ctx context.Context, db *gorm.DB, id uint32) (*model.Product, error) {
	p, err := s.productRepository.FindByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("상품을 찾을 수 없습니다 productID=%d %w", id, product.ErrProductNotFound)
		}
		return nil, fmt.Errorf("상품 조회 실패: %w", err)
	}
	return p, nil
}

// toFilter converts the inclusive from/to dates into a half-open travel date range
func toFilter(query *ListBookingsQuery) (BookingFilter, error) {
	filter := BookingFilter{Status: query.Status, ProductID: query.ProductID}

	if query.From != "" {
		from, err := time.Parse(dateLayout, query.From)
		if err != nil {
			return filter, fmt.Errorf("from=%q: %w", query.From, err)
		}
		filter.From = &from
	}
	if query.To != "" {
		to, err := time.Parse(dateLayout, query.To)
		if err != nil {
			return filter, fmt.Errorf("to=%q: %w", query.To, err)
		}
		end := to.AddDate(0, 0, 1)
		filter.To = &end
	}

	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return filter, fmt.Errorf("from=%s to=%s %w", query.From, query.To, ErrInvalidDateRange)
	}
	return filter, nil
}
