package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jihanurrahman33/BREMS/internal/config"
	"github.com/jihanurrahman33/BREMS/internal/database"
	"github.com/jihanurrahman33/BREMS/internal/ledger"
	"github.com/jihanurrahman33/BREMS/internal/router"
	"github.com/jihanurrahman33/BREMS/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	adminAddr    = "0x1111111111111111111111111111111111111111"
	ownerAddr    = "0x2222222222222222222222222222222222222222"
	investorAddr = "0x3333333333333333333333333333333333333333"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	issuer := token.NewIssuer(db)
	l, err := ledger.New(db, issuer, config.PlatformConfig{
		Admin:      adminAddr,
		FeeRate:    2,
		RewardRate: 1000,
	})
	require.NoError(t, err)
	issuer.AuthorizeMinter(ledger.MinterID)
	t.Cleanup(l.Close)

	return router.Setup(l, issuer)
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProperty(t *testing.T, r *gin.Engine) {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/v1/properties", gin.H{
		"owner":          ownerAddr,
		"title":          "Luxury Apartment Complex",
		"description":    "A modern luxury apartment complex",
		"location":       "Downtown",
		"total_value":    1000,
		"min_investment": 10,
		"max_investment": 500,
		"target_funding": 500,
		"deadline":       time.Now().Add(30 * 24 * time.Hour).Unix(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreatePropertyEndpoint(t *testing.T) {
	r := newTestServer(t)
	createProperty(t, r)

	w := doRequest(t, r, http.MethodGet, "/api/v1/properties/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			IsActive    bool `json:"is_active"`
			IsFunded    bool `json:"is_funded"`
			IsCompleted bool `json:"is_completed"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Data.IsActive)
	assert.False(t, resp.Data.IsFunded)
	assert.False(t, resp.Data.IsCompleted)
}

func TestCreatePropertyInvalidAddress(t *testing.T) {
	r := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/properties", gin.H{
		"owner":          "not-an-address",
		"title":          "t",
		"total_value":    1000,
		"min_investment": 10,
		"max_investment": 500,
		"target_funding": 500,
		"deadline":       time.Now().Add(time.Hour).Unix(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvestEndpoint(t *testing.T) {
	r := newTestServer(t)
	createProperty(t, r)

	w := doRequest(t, r, http.MethodPost, "/api/v1/properties/1/invest", gin.H{
		"investor": investorAddr,
		"amount":   100,
		"value":    100,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// 低于下限映射到 400
	w = doRequest(t, r, http.MethodPost, "/api/v1/properties/1/invest", gin.H{
		"investor": investorAddr,
		"amount":   9,
		"value":    9,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 不存在的项目映射到 404
	w = doRequest(t, r, http.MethodPost, "/api/v1/properties/99/invest", gin.H{
		"investor": investorAddr,
		"amount":   100,
		"value":    100,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 奖励代币立即可查
	w = doRequest(t, r, http.MethodGet, "/api/v1/token/balances/"+investorAddr, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var balResp struct {
		Data struct {
			Balance int64 `json:"balance"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &balResp))
	assert.Equal(t, int64(100000), balResp.Data.Balance)
}

func TestCompleteFlowEndpoint(t *testing.T) {
	r := newTestServer(t)
	createProperty(t, r)

	w := doRequest(t, r, http.MethodPost, "/api/v1/properties/1/invest", gin.H{
		"investor": investorAddr,
		"amount":   500,
		"value":    500,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// 达标后继续投资映射到 409
	w = doRequest(t, r, http.MethodPost, "/api/v1/properties/1/invest", gin.H{
		"investor": investorAddr,
		"amount":   10,
		"value":    10,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// 非业主完成映射到 403
	w = doRequest(t, r, http.MethodPost, "/api/v1/properties/1/complete", gin.H{
		"caller": investorAddr,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/v1/properties/1/complete", gin.H{
		"caller": ownerAddr,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 完成后投资人可以退出
	w = doRequest(t, r, http.MethodPost, "/api/v1/investments/1/withdraw", gin.H{
		"caller": investorAddr,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 重复退出映射到 409
	w = doRequest(t, r, http.MethodPost, "/api/v1/investments/1/withdraw", gin.H{
		"caller": investorAddr,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPlatformFeeEndpoint(t *testing.T) {
	r := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/platform/fee", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var feeResp struct {
		Data struct {
			FeeRate int64 `json:"fee_rate"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feeResp))
	assert.Equal(t, int64(2), feeResp.Data.FeeRate)

	// 非管理员更新映射到 403
	w = doRequest(t, r, http.MethodPut, "/api/v1/platform/fee", gin.H{
		"caller":   investorAddr,
		"fee_rate": 5,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 超过上限映射到 400
	w = doRequest(t, r, http.MethodPut, "/api/v1/platform/fee", gin.H{
		"caller":   adminAddr,
		"fee_rate": 15,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPut, "/api/v1/platform/fee", gin.H{
		"caller":   adminAddr,
		"fee_rate": 5,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListPropertiesEndpoint(t *testing.T) {
	r := newTestServer(t)
	createProperty(t, r)

	w := doRequest(t, r, http.MethodGet, "/api/v1/properties?status=active&search=Luxury", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Total int64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Data.Total)

	w = doRequest(t, r, http.MethodGet, "/api/v1/properties?search=nomatch", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(0), resp.Data.Total)
}
