// Package handler はbookmarksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/neswanths/Blinky/internal/feature/bookmarks/domain/entity"
	"github.com/neswanths/Blinky/internal/feature/bookmarks/transport/http/dto"
	"github.com/neswanths/Blinky/internal/feature/bookmarks/usecase"
	jwtmw "github.com/neswanths/Blinky/internal/platform/jwt"
)

// BookmarkUsecase はドメインとブックマーク操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type BookmarkUsecase interface {
	CreateDomain(ctx context.Context, name string, userID uint) (*entity.Domain, error)
	ListDomains(ctx context.Context, userID uint) ([]entity.Domain, error)
	RenameDomain(ctx context.Context, id uint, name string, userID uint) (*entity.Domain, error)
	DeleteDomain(ctx context.Context, id, userID uint) error
	CreateBookmark(ctx context.Context, url, title string, domainID, userID uint) (*entity.Bookmark, error)
	ListBookmarks(ctx context.Context, domainID, userID uint) ([]entity.Bookmark, error)
	RetitleBookmark(ctx context.Context, id uint, title string, userID uint) (*entity.Bookmark, error)
	DeleteBookmark(ctx context.Context, id, userID uint) error
}

// DomainHandler はドメイン操作のHTTPリクエストを処理します。
type DomainHandler struct {
	bookmarks BookmarkUsecase
}

// NewDomainHandler はDomainHandlerの新しいインスタンスを生成します。
func NewDomainHandler(bookmarks BookmarkUsecase) *DomainHandler {
	return &DomainHandler{bookmarks: bookmarks}
}

// currentUserID extracts the authenticated user's ID set by the auth
// middleware. A missing user means the route was wired without AuthRequired.
func currentUserID(c *gin.Context) (uint, bool) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return 0, false
	}
	return user.ID, true
}

// pathID parses the named numeric path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps usecase errors onto the HTTP contract: absent or foreign
// domains are 404, absent bookmarks are 404, foreign bookmarks are 403.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrDomainNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Domain not found"})
	case errors.Is(err, usecase.ErrBookmarkNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Bookmark not found"})
	case errors.Is(err, usecase.ErrNotDomainOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
	default:
		slog.Error("bookmark operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// toDomainRes maps a domain entity onto its response shape. Bookmarks always
// serialize as an array, never null.
func toDomainRes(d *entity.Domain) dto.DomainRes {
	bookmarks := make([]dto.BookmarkRes, 0, len(d.Bookmarks))
	for _, b := range d.Bookmarks {
		bookmarks = append(bookmarks, dto.BookmarkRes{ID: b.ID, URL: b.URL, Title: b.Title})
	}
	return dto.DomainRes{ID: d.ID, Name: d.Name, Bookmarks: bookmarks}
}

// Create はドメイン作成エンドポイント POST /domains を処理します。
// 成功時は201で空のbookmarks配列を持つドメインを返却します。
func (h *DomainHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.DomainCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("domain create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	domain, err := h.bookmarks.CreateDomain(c.Request.Context(), req.Name, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toDomainRes(domain))
}

// List はドメイン一覧エンドポイント GET /domains を処理します。
// 各ドメインはブックマークをネストして返します。
func (h *DomainHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	domains, err := h.bookmarks.ListDomains(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]dto.DomainRes, 0, len(domains))
	for i := range domains {
		res = append(res, toDomainRes(&domains[i]))
	}
	c.JSON(http.StatusOK, res)
}

// Rename はドメイン名変更エンドポイント PUT /domains/:id を処理します。
func (h *DomainHandler) Rename(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.DomainRenameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("domain rename validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	domain, err := h.bookmarks.RenameDomain(c.Request.Context(), id, req.Name, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDomainRes(domain))
}

// Delete はドメイン削除エンドポイント DELETE /domains/:id を処理します。
// 配下のブックマークもまとめて削除され、成功時は204を返却します。
func (h *DomainHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.bookmarks.DeleteDomain(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
