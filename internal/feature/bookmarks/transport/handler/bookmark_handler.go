package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neswanths/Blinky/internal/feature/bookmarks/transport/http/dto"
)

// BookmarkHandler はブックマーク操作のHTTPリクエストを処理します。
type BookmarkHandler struct {
	bookmarks BookmarkUsecase
}

// NewBookmarkHandler はBookmarkHandlerの新しいインスタンスを生成します。
func NewBookmarkHandler(bookmarks BookmarkUsecase) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

// Create はブックマーク作成エンドポイント POST /bookmarks を処理します。
// 対象ドメインが存在しないか他人の所有の場合は404を返却します。
func (h *BookmarkHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.BookmarkCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("bookmark create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	bookmark, err := h.bookmarks.CreateBookmark(c.Request.Context(), req.URL, req.Title, req.DomainID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BookmarkRes{ID: bookmark.ID, URL: bookmark.URL, Title: bookmark.Title})
}

// ListByDomain はブックマーク一覧エンドポイント GET /bookmarks/:domain_id を処理します。
func (h *BookmarkHandler) ListByDomain(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	domainID, ok := pathID(c, "domain_id")
	if !ok {
		return
	}

	bookmarks, err := h.bookmarks.ListBookmarks(c.Request.Context(), domainID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]dto.BookmarkRes, 0, len(bookmarks))
	for _, b := range bookmarks {
		res = append(res, dto.BookmarkRes{ID: b.ID, URL: b.URL, Title: b.Title})
	}
	c.JSON(http.StatusOK, res)
}

// Retitle はブックマークのタイトル変更エンドポイント PUT /bookmarks/:id を処理します。
// ブックマークが存在しない場合は404、他人のドメイン配下の場合は403を返却します。
func (h *BookmarkHandler) Retitle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.BookmarkRetitleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("bookmark retitle validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	bookmark, err := h.bookmarks.RetitleBookmark(c.Request.Context(), id, req.Title, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookmarkRes{ID: bookmark.ID, URL: bookmark.URL, Title: bookmark.Title})
}

// Delete はブックマーク削除エンドポイント DELETE /bookmarks/:id を処理します。
func (h *BookmarkHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.bookmarks.DeleteBookmark(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
