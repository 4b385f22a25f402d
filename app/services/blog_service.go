package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/app/repositories"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/logger"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/orm"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL slug.
func Slugify(title string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// BlogService owns blog post reads and staff mutations.
type BlogService struct {
	repo     *repositories.BlogRepository
	activity *ActivityService
}

func NewBlogService() *BlogService {
	return &BlogService{
		repo:     repositories.NewBlogRepository(),
		activity: NewActivityService(),
	}
}

// List returns one page of posts.
func (s *BlogService) List(page, limit int) ([]models.Blog, orm.Pagination, error) {
	return s.repo.All(page, limit)
}

// Get loads one post by id.
func (s *BlogService) Get(id uint) (models.Blog, error) {
	return s.repo.FindByID(id)
}

// Create stores a post. The slug derives from the title and must be unique.
func (s *BlogService) Create(b *models.Blog, actor *Actor) Result {
	if actor == nil {
		return fail("Unauthorized: sign in to write posts")
	}
	if b.Title == "" {
		return fail("a post needs a title")
	}

	if b.Slug == "" {
		b.Slug = Slugify(b.Title)
	}
	if _, err := s.repo.FindBySlug(b.Slug); err == nil {
		return fail(fmt.Sprintf("a post with slug %q already exists", b.Slug))
	}

	b.AuthorID = actor.ID
	if err := s.repo.Create(b); err != nil {
		logger.Error("blog: create failed", "slug", b.Slug, "error", err)
		return fail("could not save the post")
	}

	s.activity.Record(&actor.ID, "blog.create", fmt.Sprintf("Post %q published", b.Title),
		map[string]interface{}{"blogId": b.ID})
	return ok(fmt.Sprintf("Post %q published", b.Title))
}

// Update stores changes to a post.
func (s *BlogService) Update(b *models.Blog, actor *Actor) Result {
	if actor == nil {
		return fail("Unauthorized: sign in to edit posts")
	}

	if existing, err := s.repo.FindBySlug(b.Slug); err == nil && existing.ID != b.ID {
		return fail(fmt.Sprintf("a post with slug %q already exists", b.Slug))
	}

	if err := s.repo.Update(b); err != nil {
		logger.Error("blog: update failed", "id", b.ID, "error", err)
		return fail("could not update the post")
	}

	s.activity.Record(&actor.ID, "blog.update", fmt.Sprintf("Post %q updated", b.Title),
		map[string]interface{}{"blogId": b.ID})
	return ok(fmt.Sprintf("Post %q updated", b.Title))
}

// Delete removes a post.
func (s *BlogService) Delete(id uint, actor *Actor) Result {
	if actor == nil {
		return fail("Unauthorized: sign in to delete posts")
	}

	if err := s.repo.Delete(id); err != nil {
		logger.Error("blog: delete failed", "id", id, "error", err)
		return fail("could not delete the post")
	}

	s.activity.Record(&actor.ID, "blog.delete", fmt.Sprintf("Post #%d deleted", id),
		map[string]interface{}{"blogId": id})
	return ok("Post deleted")
}
