package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/overtime-api/internal/domain"
	"github.com/overtime-api/internal/dto"
	"github.com/overtime-api/internal/repository"
)

// PostService определяет интерфейс бизнес-логики для должностей
type PostService interface {
	Create(ctx context.Context, req *dto.CreatePostRequest) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, id int64, req *dto.CreatePostRequest) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
}

type postService struct {
	tx       repository.Transactor
	postRepo repository.PostRepository
}

// NewPostService создаёт новый экземпляр сервиса
func NewPostService(tx repository.Transactor, postRepo repository.PostRepository) PostService {
	return &postService{
		tx:       tx,
		postRepo: postRepo,
	}
}

func (s *postService) Create(ctx context.Context, req *dto.CreatePostRequest) (*domain.Post, error) {
	post := &domain.Post{Name: strings.TrimSpace(req.Name)}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.postRepo.ExistsByName(ctx, post.Name)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicatePostName
		}
		return s.postRepo.Create(ctx, post)
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return post, nil
}

func (s *postService) List(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *postService) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// Update переименовывает должность
func (s *postService) Update(ctx context.Context, id int64, req *dto.CreatePostRequest) (*domain.Post, error) {
	var post *domain.Post

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		post, err = s.postRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		post.Name = strings.TrimSpace(req.Name)
		return s.postRepo.Update(ctx, post)
	})
	if err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}

	return post, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}
