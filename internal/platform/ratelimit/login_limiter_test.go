package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestLoginLimiter_Allow(t *testing.T) {
	t.Run("first attempt starts a new window", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectIncr("login_attempts:1.2.3.4").SetVal(1)
		mock.ExpectExpire("login_attempts:1.2.3.4", time.Minute).SetVal(true)

		limiter := NewLoginLimiter(db, 10, time.Minute)

		assert.True(t, limiter.Allow(context.Background(), "1.2.3.4"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("attempts within the limit are allowed", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectIncr("login_attempts:1.2.3.4").SetVal(10)

		limiter := NewLoginLimiter(db, 10, time.Minute)

		assert.True(t, limiter.Allow(context.Background(), "1.2.3.4"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("attempts over the limit are blocked", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectIncr("login_attempts:1.2.3.4").SetVal(11)

		limiter := NewLoginLimiter(db, 10, time.Minute)

		assert.False(t, limiter.Allow(context.Background(), "1.2.3.4"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil client fails open", func(t *testing.T) {
		limiter := NewLoginLimiter(nil, 10, time.Minute)

		assert.True(t, limiter.Allow(context.Background(), "1.2.3.4"))
	})

	t.Run("redis error fails open", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectIncr("login_attempts:1.2.3.4").SetErr(errors.New("connection refused"))

		limiter := NewLoginLimiter(db, 10, time.Minute)

		assert.True(t, limiter.Allow(context.Background(), "1.2.3.4"))
	})
}

func TestLoginLimiter_Middleware(t *testing.T) {
	t.Run("allowed request passes through", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.Regexp().ExpectIncr(`login_attempts:.+`).SetVal(1)
		mock.Regexp().ExpectExpire(`login_attempts:.+`, time.Minute).SetVal(true)

		limiter := NewLoginLimiter(db, 10, time.Minute)

		r := gin.New()
		r.POST("/token", limiter.Middleware(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/token", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("blocked request yields 429 and aborts", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.Regexp().ExpectIncr(`login_attempts:.+`).SetVal(11)

		limiter := NewLoginLimiter(db, 10, time.Minute)

		handlerCalled := false
		r := gin.New()
		r.POST("/token", limiter.Middleware(), func(c *gin.Context) {
			handlerCalled = true
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/token", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.False(t, handlerCalled, "handler must not run for a blocked request")
	})
}
