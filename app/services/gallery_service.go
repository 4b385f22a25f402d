package services

import (
	"fmt"
	"io"
	"path"
	"time"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/app/repositories"
	"github.com/jackmarxreacher-creator/rby-sub000/config"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/logger"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/orm"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/storage"
)

// GalleryService owns media records. Files live on a storage disk; the
// database row points at them.
type GalleryService struct {
	repo     *repositories.GalleryRepository
	activity *ActivityService
}

func NewGalleryService() *GalleryService {
	return &GalleryService{
		repo:     repositories.NewGalleryRepository(),
		activity: NewActivityService(),
	}
}

// List returns one page of gallery items.
func (s *GalleryService) List(page, limit int) ([]models.GalleryItem, orm.Pagination, error) {
	return s.repo.All(page, limit)
}

// Get loads one gallery item.
func (s *GalleryService) Get(id uint) (models.GalleryItem, error) {
	return s.repo.FindByID(id)
}

// Upload streams the file onto the default disk and stores the record.
func (s *GalleryService) Upload(title, caption, filename string, file io.Reader, actor *Actor) Result {
	if actor == nil {
		return fail("Unauthorized: sign in to upload media")
	}
	if title == "" {
		return fail("a gallery item needs a title")
	}

	key := fmt.Sprintf("gallery/%d%s", time.Now().UnixNano(), path.Ext(filename))
	if err := storage.PutStream(key, file); err != nil {
		logger.Error("gallery: upload failed", "key", key, "error", err)
		return fail("could not store the file")
	}

	item := models.GalleryItem{
		Title:   title,
		Caption: caption,
		Path:    key,
		Disk:    config.StorageDefault(),
		URL:     storage.URL(key),
	}
	if err := s.repo.Create(&item); err != nil {
		// Roll the orphaned file back best-effort.
		if derr := storage.Delete(key); derr != nil {
			logger.Warn("gallery: orphan cleanup failed", "key", key, "error", derr)
		}
		logger.Error("gallery: record failed", "key", key, "error", err)
		return fail("could not save the gallery item")
	}

	s.activity.Record(&actor.ID, "gallery.create", fmt.Sprintf("Media %q uploaded", title),
		map[string]interface{}{"galleryId": item.ID, "path": key})
	return ok(fmt.Sprintf("Media %q uploaded", title))
}

// Update stores changes to a gallery item's title/caption.
func (s *GalleryService) Update(g *models.GalleryItem, actor *Actor) Result {
	if actor == nil {
		return fail("Unauthorized: sign in to edit media")
	}

	if err := s.repo.Update(g); err != nil {
		logger.Error("gallery: update failed", "id", g.ID, "error", err)
		return fail("could not update the gallery item")
	}

	s.activity.Record(&actor.ID, "gallery.update", fmt.Sprintf("Media %q updated", g.Title),
		map[string]interface{}{"galleryId": g.ID})
	return ok(fmt.Sprintf("Media %q updated", g.Title))
}

// Delete removes the record and, best-effort, the stored file. A failure to
// remove the file never fails the mutation.
func (s *GalleryService) Delete(id uint, actor *Actor) Result {
	if actor == nil {
		return fail("Unauthorized: sign in to delete media")
	}

	item, err := s.repo.FindByID(id)
	if err != nil {
		return fail("gallery item not found")
	}

	if err := s.repo.Delete(id); err != nil {
		logger.Error("gallery: delete failed", "id", id, "error", err)
		return fail("could not delete the gallery item")
	}

	if disk, found := storage.Lookup(item.Disk); found {
		if err := disk.Delete(item.Path); err != nil {
			logger.Warn("gallery: file removal failed", "path", item.Path, "error", err)
		}
	}

	s.activity.Record(&actor.ID, "gallery.delete", fmt.Sprintf("Media %q deleted", item.Title),
		map[string]interface{}{"galleryId": id, "path": item.Path})
	return ok(fmt.Sprintf("Media %q deleted", item.Title))
}
