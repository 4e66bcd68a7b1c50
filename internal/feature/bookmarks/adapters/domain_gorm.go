// Package adapters はbookmarksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/neswanths/Blinky/internal/feature/bookmarks/domain/entity"
	"github.com/neswanths/Blinky/internal/feature/bookmarks/usecase"
)

// domainGorm はDomainRepositoryインターフェースのgorm実装です。
type domainGorm struct {
	db *gorm.DB
}

// domainGormがDomainRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.DomainRepository = (*domainGorm)(nil)

// NewDomainGorm は指定されたgorm.DB接続でdomainGormの新しいインスタンスを生成します。
func NewDomainGorm(db *gorm.DB) *domainGorm {
	return &domainGorm{db: db}
}

// Create はドメインをデータベースに追加します。
func (r *domainGorm) Create(ctx context.Context, d *entity.Domain) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// FindByID はIDでドメインを取得します。
// 存在しない場合、usecase.ErrDomainNotFoundを返します。
func (r *domainGorm) FindByID(ctx context.Context, id uint) (*entity.Domain, error) {
	var d entity.Domain
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrDomainNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindByUserID は指定ユーザーの全ドメインをブックマークを先読みして返します。
func (r *domainGorm) FindByUserID(ctx context.Context, userID uint) ([]entity.Domain, error) {
	var domains []entity.Domain
	err := r.db.WithContext(ctx).
		Preload("Bookmarks").
		Where("user_id = ?", userID).
		Find(&domains).Error
	if err != nil {
		return nil, err
	}
	return domains, nil
}

// Save はドメインの変更を永続化します。
func (r *domainGorm) Save(ctx context.Context, d *entity.Domain) error {
	return r.db.WithContext(ctx).Model(d).Update("name", d.Name).Error
}

// Delete はドメインを削除します。配下のブックマークは外部キーの
// ON DELETE CASCADEで同一ステートメント内で削除されます。
func (r *domainGorm) Delete(ctx context.Context, d *entity.Domain) error {
	return r.db.WithContext(ctx).Delete(&entity.Domain{}, d.ID).Error
}
