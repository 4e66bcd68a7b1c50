// Package usecase はbookmarksフィーチャーのビジネスロジックを実装します。
// ドメインとブックマークの全操作はここで所有権チェックを通過します。
package usecase

import (
	"context"
	"errors"

	"github.com/neswanths/Blinky/internal/feature/bookmarks/domain/entity"
)

// DomainRepository はドメインエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type DomainRepository interface {
	// Create は新しいドメインをストレージに永続化します。
	Create(ctx context.Context, domain *entity.Domain) error

	// FindByID はIDでドメインを取得します。
	// 存在しない場合、ErrDomainNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Domain, error)

	// FindByUserID は指定ユーザーの全ドメインをブックマーク込みで取得します。
	FindByUserID(ctx context.Context, userID uint) ([]entity.Domain, error)

	// Save はドメインの変更を永続化します。
	Save(ctx context.Context, domain *entity.Domain) error

	// Delete はドメインを削除します。配下のブックマークは外部キーの
	// カスケードで同時に削除されます。
	Delete(ctx context.Context, domain *entity.Domain) error
}

// BookmarkRepository はブックマークエンティティの永続化層を抽象化します。
type BookmarkRepository interface {
	// Create は新しいブックマークをストレージに永続化します。
	Create(ctx context.Context, bookmark *entity.Bookmark) error

	// FindByID はIDでブックマークを取得します。
	// 存在しない場合、ErrBookmarkNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Bookmark, error)

	// FindByDomainID は指定ドメインの全ブックマークを取得します。
	FindByDomainID(ctx context.Context, domainID uint) ([]entity.Bookmark, error)

	// Save はブックマークの変更を永続化します。
	Save(ctx context.Context, bookmark *entity.Bookmark) error

	// Delete はブックマークを削除します。
	Delete(ctx context.Context, bookmark *entity.Bookmark) error
}

// bookmarkUsecase はドメインとブックマークのCRUDと所有権チェックを実装します。
type bookmarkUsecase struct {
	domains   DomainRepository
	bookmarks BookmarkRepository
}

// NewBookmarkUsecase はbookmarkUsecaseの新しいインスタンスを生成します。
func NewBookmarkUsecase(domains DomainRepository, bookmarks BookmarkRepository) *bookmarkUsecase {
	return &bookmarkUsecase{
		domains:   domains,
		bookmarks: bookmarks,
	}
}

// requireDomainOwnership はドメインを取得し、userIDが所有者であることを検証します。
// 「存在しない」と「他人の所有」はどちらもErrDomainNotFoundに畳み込まれます。
// 所有権はキャッシュせず、リクエストごとに再評価します。
func (u *bookmarkUsecase) requireDomainOwnership(ctx context.Context, domainID, userID uint) (*entity.Domain, error) {
	domain, err := u.domains.FindByID(ctx, domainID)
	if err != nil {
		return nil, err
	}
	if domain.UserID != userID {
		return nil, ErrDomainNotFound
	}
	return domain, nil
}

// requireBookmarkAccess はブックマークを取得し、親ドメインの所有者がuserIDで
// あることを検証します。ブックマーク自体が存在しない場合はErrBookmarkNotFound、
// 親ドメインが他人の所有（または欠落）の場合はErrNotDomainOwnerを返します。
func (u *bookmarkUsecase) requireBookmarkAccess(ctx context.Context, bookmarkID, userID uint) (*entity.Bookmark, error) {
	bookmark, err := u.bookmarks.FindByID(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}

	// 所有権は親ドメイン経由で毎回ライブに辿る
	domain, err := u.domains.FindByID(ctx, bookmark.DomainID)
	if err != nil {
		if errors.Is(err, ErrDomainNotFound) {
			return nil, ErrNotDomainOwner
		}
		return nil, err
	}
	if domain.UserID != userID {
		return nil, ErrNotDomainOwner
	}

	return bookmark, nil
}

// CreateDomain は指定ユーザー所有の新しいドメインを作成します。
func (u *bookmarkUsecase) CreateDomain(ctx context.Context, name string, userID uint) (*entity.Domain, error) {
	domain := &entity.Domain{Name: name, UserID: userID}
	if err := u.domains.Create(ctx, domain); err != nil {
		return nil, err
	}
	return domain, nil
}

// ListDomains は指定ユーザーの全ドメインをブックマーク込みで返します。
func (u *bookmarkUsecase) ListDomains(ctx context.Context, userID uint) ([]entity.Domain, error) {
	return u.domains.FindByUserID(ctx, userID)
}

// RenameDomain はドメイン名を変更します。所有者以外にはErrDomainNotFoundを返します。
func (u *bookmarkUsecase) RenameDomain(ctx context.Context, id uint, name string, userID uint) (*entity.Domain, error) {
	domain, err := u.requireDomainOwnership(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	domain.Name = name
	if err := u.domains.Save(ctx, domain); err != nil {
		return nil, err
	}
	return domain, nil
}

// DeleteDomain はドメインと配下の全ブックマークを削除します。
func (u *bookmarkUsecase) DeleteDomain(ctx context.Context, id, userID uint) error {
	domain, err := u.requireDomainOwnership(ctx, id, userID)
	if err != nil {
		return err
	}
	return u.domains.Delete(ctx, domain)
}

// CreateBookmark は指定ドメイン配下に新しいブックマークを作成します。
// ドメインが存在しないか他人の所有の場合、ErrDomainNotFoundを返します。
func (u *bookmarkUsecase) CreateBookmark(ctx context.Context, url, title string, domainID, userID uint) (*entity.Bookmark, error) {
	if _, err := u.requireDomainOwnership(ctx, domainID, userID); err != nil {
		return nil, err
	}

	bookmark := &entity.Bookmark{URL: url, Title: title, DomainID: domainID}
	if err := u.bookmarks.Create(ctx, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

// ListBookmarks は指定ドメインの全ブックマークを返します。
func (u *bookmarkUsecase) ListBookmarks(ctx context.Context, domainID, userID uint) ([]entity.Bookmark, error) {
	if _, err := u.requireDomainOwnership(ctx, domainID, userID); err != nil {
		return nil, err
	}
	return u.bookmarks.FindByDomainID(ctx, domainID)
}

// RetitleBookmark はブックマークのタイトルを変更します。
func (u *bookmarkUsecase) RetitleBookmark(ctx context.Context, id uint, title string, userID uint) (*entity.Bookmark, error) {
	bookmark, err := u.requireBookmarkAccess(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	bookmark.Title = title
	if err := u.bookmarks.Save(ctx, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

// DeleteBookmark はブックマークを削除します。
func (u *bookmarkUsecase) DeleteBookmark(ctx context.Context, id, userID uint) error {
	bookmark, err := u.requireBookmarkAccess(ctx, id, userID)
	if err != nil {
		return err
	}
	return u.bookmarks.Delete(ctx, bookmark)
}
