package repository

import (
	"context"
	"errors"

	"github.com/overtime-api/internal/domain"
	"gorm.io/gorm"
)

// PostRepository определяет интерфейс для работы с должностями
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	List(ctx context.Context) ([]domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository создаёт новый экземпляр репозитория
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	return conn(ctx, r.db).Create(post).Error
}

func (r *postRepository) List(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	err := conn(ctx, r.db).Order("id ASC").Find(&posts).Error
	return posts, err
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	err := conn(ctx, r.db).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	return conn(ctx, r.db).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Delete(&domain.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &domain.Post{}, id)
}

func (r *postRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&domain.Post{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}
