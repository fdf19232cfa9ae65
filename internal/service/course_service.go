package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"nura_backend/internal/model"
	"nura_backend/internal/repository"
	"nura_backend/internal/util"
	"nura_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	courseCacheTTL       = time.Minute
	courseCacheKeyPrefix = "courses:published:"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
	Tags       *TagService
	Storage    *StorageService
	Redis      *redis.Client
}

func NewCourseService(courseRepo *repository.CourseRepository, tags *TagService, storage *StorageService, rdb *redis.Client) *CourseService {
	return &CourseService{CourseRepo: courseRepo, Tags: tags, Storage: storage, Redis: rdb}
}

// Create persists the course and kicks off tagging in the background. The
// caller gets the course back immediately; tag links appear shortly after.
func (s *CourseService) Create(course *model.Course, manualTags []string) error {
	if course.Status == "" {
		course.Status = model.CourseDraft
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return err
	}
	s.tagInBackground(course, manualTags)
	s.invalidateListCache(context.Background())
	return nil
}

func (s *CourseService) Get(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

func (s *CourseService) Update(userID uint, updated *model.Course, manualTags []string) (*model.Course, error) {
	course, err := s.Get(updated.ID)
	if err != nil {
		return nil, err
	}
	if course.OwnerID != userID {
		return nil, util.ErrPermissionDenied
	}

	course.Title = updated.Title
	course.Description = updated.Description
	course.Content = updated.Content
	if updated.Status != "" {
		course.Status = updated.Status
	}
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}

	s.tagInBackground(course, manualTags)
	s.invalidateListCache(context.Background())
	return course, nil
}

func (s *CourseService) Delete(userID uint, role model.UserRole, id uint) error {
	course, err := s.Get(id)
	if err != nil {
		return err
	}
	if course.OwnerID != userID && role != model.Admin {
		return util.ErrPermissionDenied
	}
	if err := s.CourseRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateListCache(context.Background())
	return nil
}

// ListPublished serves the public catalog page, cached briefly in redis. A
// cache failure silently degrades to the database.
func (s *CourseService) ListPublished(ctx context.Context, page, limit int) ([]model.Course, int64, error) {
	type cachedPage struct {
		Courses []model.Course `json:"courses"`
		Total   int64          `json:"total"`
	}

	key := fmt.Sprintf("%sp%d:l%d", courseCacheKeyPrefix, page, limit)
	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var cached cachedPage
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached.Courses, cached.Total, nil
			}
		}
	}

	courses, total, err := s.CourseRepo.ListPublished(page, limit)
	if err != nil {
		return nil, 0, err
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(cachedPage{Courses: courses, Total: total}); err == nil {
			if err := s.Redis.Set(ctx, key, raw, courseCacheTTL).Err(); err != nil {
				logger.Log.Debug("course cache write failed", zap.Error(err))
			}
		}
	}
	return courses, total, nil
}

func (s *CourseService) ListMine(ownerID uint, page, limit int) ([]model.Course, int64, error) {
	return s.CourseRepo.ListByOwner(ownerID, page, limit)
}

// UploadVideo stores a lecture video, probes its duration and extracts a
// thumbnail frame, then records the metadata on the course.
func (s *CourseService) UploadVideo(ctx context.Context, userID, courseID uint, localPath, filename string) (*model.Course, error) {
	course, err := s.Get(courseID)
	if err != nil {
		return nil, err
	}
	if course.OwnerID != userID {
		return nil, util.ErrPermissionDenied
	}

	info, err := util.ProbeVideo(localPath)
	if err != nil {
		return nil, fmt.Errorf("invalid video file: %w", err)
	}

	thumbPath := localPath + ".thumb.jpg"
	thumbnailURL := ""
	if err := util.ExtractThumbnail(localPath, thumbPath, "00:00:01"); err != nil {
		logger.Log.Warn("thumbnail extraction failed", zap.Uint("courseId", courseID), zap.Error(err))
	} else {
		defer os.Remove(thumbPath)
		thumbName := fmt.Sprintf("courses/%d/thumbnails/%s.jpg", courseID, uuid.NewString())
		thumbnailURL, err = s.Storage.UploadFile(ctx, thumbName, thumbPath, "image/jpeg")
		if err != nil {
			logger.Log.Warn("thumbnail upload failed", zap.Uint("courseId", courseID), zap.Error(err))
			thumbnailURL = ""
		}
	}

	videoName := fmt.Sprintf("courses/%d/videos/%s%s", courseID, uuid.NewString(), filepath.Ext(filename))
	videoURL, err := s.Storage.UploadFile(ctx, videoName, localPath, "video/mp4")
	if err != nil {
		return nil, err
	}

	if thumbnailURL == "" {
		thumbnailURL = course.ThumbnailURL
	}
	if err := s.CourseRepo.UpdateVideoMetadata(courseID, videoURL, thumbnailURL, info.Duration); err != nil {
		return nil, err
	}

	course.VideoURL = videoURL
	course.ThumbnailURL = thumbnailURL
	course.VideoDuration = info.Duration
	return course, nil
}

func (s *CourseService) tagInBackground(course *model.Course, manualTags []string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := s.Tags.AutoTag(ctx, course.ID, course.Title, course.Description, course.Content, manualTags); err != nil {
			logger.Log.Warn("auto tagging failed", zap.Uint("courseId", course.ID), zap.Error(err))
		}
	}()
}

func (s *CourseService) invalidateListCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	keys, err := s.Redis.Keys(ctx, courseCacheKeyPrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := s.Redis.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Debug("course cache invalidation failed", zap.Error(err))
	}
}
