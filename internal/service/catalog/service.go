package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	catalogRepo "github.com/blackrooms/BR-ReservationService/internal/infra/storage/catalog"
)

// Service кешированное read-only представление каталога (комнаты и квесты)
//
// Справочные данные меняются редко относительно потока бронирований,
// поэтому читаются через redis с ограниченным TTL. При недоступном redis
// сервис деградирует до прямых чтений из БД - кеш никогда не является
// причиной отказа
type Service struct {
	repo   CatalogRepository
	cache  *redis.Client // nil, если кеш выключен
	ttl    time.Duration
	logger Logger
}

// NewService создает сервис каталога
// cache может быть nil - тогда все чтения идут напрямую в БД
func NewService(repo CatalogRepository, cache *redis.Client, ttl time.Duration, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// GetRoom получает комнату по ID (через кеш)
func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	key := fmt.Sprintf("catalog:room:%d", id)

	if room, ok := cacheGet[domain.Room](ctx, s, key); ok {
		return room, nil
	}

	room, err := s.repo.GetRoomByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoom: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetRoom - repository error: %w", ErrInternal, err)
	}

	cacheSet(ctx, s, key, room)
	return room, nil
}

// GetQuest получает квест по ID (через кеш)
func (s *Service) GetQuest(ctx context.Context, id int64) (*domain.Quest, error) {
	key := fmt.Sprintf("catalog:quest:%d", id)

	if quest, ok := cacheGet[domain.Quest](ctx, s, key); ok {
		return quest, nil
	}

	quest, err := s.repo.GetQuestByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrQuestNotFound) {
			return nil, ErrQuestNotFound
		}
		s.logger.Error("GetQuest: repository error for quest id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetQuest - repository error: %w", ErrInternal, err)
	}

	cacheSet(ctx, s, key, quest)
	return quest, nil
}

// IsRoomOpen возвращает административный флаг доступности комнаты
// Флаг не зависит от занятости по расписанию (закрытие на обслуживание)
func (s *Service) IsRoomOpen(ctx context.Context, id int64) (bool, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return false, err
	}
	return room.IsAvailable, nil
}

// InvalidateRoom сбрасывает кеш комнаты (вызывается при административных правках)
func (s *Service) InvalidateRoom(ctx context.Context, id int64) {
	s.invalidate(ctx, fmt.Sprintf("catalog:room:%d", id))
}

// InvalidateQuest сбрасывает кеш квеста
func (s *Service) InvalidateQuest(ctx context.Context, id int64) {
	s.invalidate(ctx, fmt.Sprintf("catalog:quest:%d", id))
}

func (s *Service) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("catalog cache: failed to invalidate %s: %v", key, err)
	}
}

// cacheGet читает значение из кеша; любая ошибка кеша трактуется как промах
func cacheGet[T any](ctx context.Context, s *Service, key string) (*T, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("catalog cache: get %s failed, falling back to db: %v", key, err)
		}
		return nil, false
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.Warn("catalog cache: corrupt entry %s, falling back to db: %v", key, err)
		return nil, false
	}

	return &value, true
}

// cacheSet пишет значение в кеш; ошибки записи не прерывают запрос
func cacheSet[T any](ctx context.Context, s *Service, key string, value *T) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.logger.Warn("catalog cache: set %s failed: %v", key, err)
	}
}
