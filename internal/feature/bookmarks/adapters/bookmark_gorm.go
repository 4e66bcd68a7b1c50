package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/neswanths/Blinky/internal/feature/bookmarks/domain/entity"
	"github.com/neswanths/Blinky/internal/feature/bookmarks/usecase"
)

// bookmarkGorm はBookmarkRepositoryインターフェースのgorm実装です。
type bookmarkGorm struct {
	db *gorm.DB
}

// bookmarkGormがBookmarkRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.BookmarkRepository = (*bookmarkGorm)(nil)

// NewBookmarkGorm は指定されたgorm.DB接続でbookmarkGormの新しいインスタンスを生成します。
func NewBookmarkGorm(db *gorm.DB) *bookmarkGorm {
	return &bookmarkGorm{db: db}
}

// Create はブックマークをデータベースに追加します。
func (r *bookmarkGorm) Create(ctx context.Context, b *entity.Bookmark) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// FindByID はIDでブックマークを取得します。
// 存在しない場合、usecase.ErrBookmarkNotFoundを返します。
func (r *bookmarkGorm) FindByID(ctx context.Context, id uint) (*entity.Bookmark, error) {
	var b entity.Bookmark
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrBookmarkNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindByDomainID は指定ドメインの全ブックマークを返します。
func (r *bookmarkGorm) FindByDomainID(ctx context.Context, domainID uint) ([]entity.Bookmark, error) {
	var bookmarks []entity.Bookmark
	err := r.db.WithContext(ctx).
		Where("domain_id = ?", domainID).
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// Save はブックマークの変更を永続化します。
func (r *bookmarkGorm) Save(ctx context.Context, b *entity.Bookmark) error {
	return r.db.WithContext(ctx).Model(b).Update("title", b.Title).Error
}

// Delete はブックマークを削除します。
func (r *bookmarkGorm) Delete(ctx context.Context, b *entity.Bookmark) error {
	return r.db.WithContext(ctx).Delete(&entity.Bookmark{}, b.ID).Error
}
