package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"go-doormint-ledger/internal/auth"
	"go-doormint-ledger/internal/cache"
	"go-doormint-ledger/internal/handler"
	"go-doormint-ledger/internal/model"
	"go-doormint-ledger/internal/queue"
	"go-doormint-ledger/internal/repository"
	"go-doormint-ledger/internal/service"
	"go-doormint-ledger/internal/worker"
	"go-doormint-ledger/internal/clock"
	"go-doormint-ledger/test/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB  *pgxpool.Pool
	testRdb *redis.Client
)

func TestMain(m *testing.M) {
	db, rdb, cleanup, err := testutil.Setup()
	if err != nil {
		log.Fatalf("Failed to setup test environment: %v", err)
	}
	defer cleanup()
	testDB = db
	testRdb = rdb

	code := m.Run()
	os.Exit(code)
}

func setupIntegrationTest(t *testing.T, clk clock.Clock) (*gin.Engine, cache.RedisSupplyCache, func()) {
	t.Helper()
	ctx := context.Background()

	cleanupDB(ctx, t)
	cleanupRedis(ctx, t)

	// 初始化所有真實組件
	eventRepo := repository.NewEventRepository(testDB)
	issuanceRepo := repository.NewIssuanceRepository(testDB)
	tokenRepo := repository.NewTokenRepository(testDB)
	supplyCache := cache.NewRedisSupplyCache(testRdb)
	policy := auth.NewRBACPolicy(eventRepo, []string{"admin"})
	ledgerQueue := queue.NewMemoryLedgerEventQueue(1000)

	eventService := service.NewEventService(eventRepo, ledgerQueue, clk)
	entryService := service.NewEntryService(testDB, eventRepo, issuanceRepo, policy, ledgerQueue, clk)
	tokenService := service.NewTokenService(testDB, tokenRepo, eventRepo, policy, ledgerQueue, clk)

	// 初始化 Worker：消費帳本通知維護供給鏡像、執行 sweep
	workerCtx, workerCancel := context.WithCancel(context.Background())
	ledgerWorker := worker.NewLedgerWorker(entryService, supplyCache, ledgerQueue)
	if err := ledgerWorker.Start(workerCtx); err != nil {
		workerCancel()
		t.Fatalf("Failed to start worker: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handler.CallerIdentity())
	handler.NewEventHandler(eventService, supplyCache).RegisterRoutes(router)
	handler.NewEntryHandler(entryService).RegisterRoutes(router)
	handler.NewTokenHandler(tokenService).RegisterRoutes(router)

	cleanup := func() {
		workerCancel()
		time.Sleep(100 * time.Millisecond) // 等待 worker 停止
		cleanupDB(ctx, t)
		cleanupRedis(ctx, t)
	}

	return router, supplyCache, cleanup
}

func cleanupDB(ctx context.Context, t *testing.T) {
	t.Helper()
	_, err := testDB.Exec(ctx, "TRUNCATE token_allocations, token_ledgers, issuances, events CASCADE")
	if err != nil {
		t.Logf("Warning: failed to truncate tables: %v", err)
	}
}

func cleanupRedis(ctx context.Context, t *testing.T) {
	t.Helper()
	err := testRdb.FlushDB(ctx).Err()
	if err != nil {
		t.Logf("Warning: failed to flush redis: %v", err)
	}
}

func createJSONRequest(data interface{}) *bytes.Buffer {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

func createHTTPRequest(method, url, caller string, body interface{}) *http.Request {
	var req *http.Request
	var err error

	if body != nil {
		req, err = http.NewRequest(method, url, createJSONRequest(body))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}

	if err != nil {
		return nil
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if caller != "" {
		req.Header.Set(handler.CallerHeader, caller)
	}
	return req
}

// waitForMirror 輪詢 Redis 供給鏡像直到條件成立（鏡像透過佇列非同步更新，可能落後）
func waitForMirror(t *testing.T, supplyCache cache.RedisSupplyCache, eventID string, check func(model.SupplyCounters) bool) model.SupplyCounters {
	t.Helper()
	ctx := context.Background()

	var counters model.SupplyCounters
	for i := 0; i < 20; i++ {
		time.Sleep(100 * time.Millisecond)
		c, err := supplyCache.GetCounters(ctx, eventID)
		if err != nil {
			continue
		}
		counters = c
		if check(c) {
			return c
		}
	}
	return counters
}

// TestLedger_Integration_EndToEnd 測試完整流程：
// HTTP → Handler → Service → Database，通知經佇列由 Worker 套用到 Redis 供給鏡像
func TestLedger_Integration_EndToEnd(t *testing.T) {
	clk := clock.NewFixed(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	router, supplyCache, cleanup := setupIntegrationTest(t, clk)
	defer cleanup()

	// 1. 建立活動
	createReq := model.CreateEventRequest{EventID: "vibe-party", Capacity: 100, Organizer: "org-a"}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, createHTTPRequest("POST", "/api/v1/events", "org-a", createReq))
	require.Equal(t, http.StatusCreated, w.Code)

	// 2. 鑄造三張入場憑證，核銷第一張
	for _, attendee := range []string{"alice", "bob", "carol"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, createHTTPRequest("POST", "/api/v1/events/vibe-party/entries", "org-a", model.MintEntryRequest{Attendee: attendee}))
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w = httptest.NewRecorder()
	router.ServeHTTP(w, createHTTPRequest("PUT", "/api/v1/events/vibe-party/entries/1/claim", "org-a", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// 3. 驗證權威統計（Postgres）
	w = httptest.NewRecorder()
	router.ServeHTTP(w, createHTTPRequest("GET", "/api/v1/events/vibe-party/stats", "", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var stats model.EventStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalMinted)
	assert.Equal(t, 1, stats.TotalClaimed)
	assert.Equal(t, 0, stats.TotalBurned)

	// 4. 驗證 Redis 供給鏡像追上（mirror 經佇列非同步套用）
	counters := waitForMirror(t, supplyCache, "vibe-party", func(c model.SupplyCounters) bool {
		return c.Minted == 3 && c.Claimed == 1
	})
	assert.Equal(t, int64(100), counters.Capacity)
	assert.Equal(t, int64(3), counters.Minted)
	assert.Equal(t, int64(1), counters.Claimed)

	// 5. 截止前的銷毀請求被拒絕
	w = httptest.NewRecorder()
	router.ServeHTTP(w, createHTTPRequest("POST", "/api/v1/events/vibe-party/burn", "org-a", nil))
	assert.Equal(t, http.StatusConflict, w.Code)

	// 6. 跨過 24 小時銷毀窗後掃除整個活動：只有未核銷的兩張被銷毀
	clk.Advance(24 * time.Hour)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, createHTTPRequest("POST", "/api/v1/events/vibe-party/burn", "org-a", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var burnResult model.BurnResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &burnResult))
	assert.Equal(t, 2, burnResult.Burned)

	// 7. live supply = 已核銷數
	w = httptest.NewRecorder()
	router.ServeHTTP(w, createHTTPRequest("GET", "/api/v1/events/vibe-party/supply", "", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"event_id":"vibe-party","total_supply":1}`, w.Body.String())

	// 8. 鏡像最終收斂到 burned=2
	counters = waitForMirror(t, supplyCache, "vibe-party", func(c model.SupplyCounters) bool {
		return c.Burned == 2
	})
	assert.Equal(t, int64(2), counters.Burned)
}

// TestLedger_Integration_SweepViaWorker 測試非同步 sweep：
// HTTP 202 受理後由 Worker 分批掃除
func TestLedger_Integration_SweepViaWorker(t *testing.T) {
	clk := clock.NewFixed(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	router, _, cleanup := setupIntegrationTest(t, clk)
	defer cleanup()

	createReq := model.CreateEventRequest{EventID: "ev-sweep", Capacity: 200, Organizer: "org-a"}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, createHTTPRequest("POST", "/api/v1/events", "org-a", createReq))
	require.Equal(t, http.StatusCreated, w.Code)

	// 鑄造 120 張（超過一個 sweep 批次），核銷前 20 張
	for i := 0; i < 120; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, createHTTPRequest("POST", "/api/v1/events/ev-sweep/entries", "org-a", model.MintEntryRequest{Attendee: "guest"}))
		require.Equal(t, http.StatusCreated, w.Code)
	}
	for id := 1; id <= 20; id++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, createHTTPRequest("PUT", "/api/v1/events/ev-sweep/entries/"+strconv.Itoa(id)+"/claim", "org-a", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	clk.Advance(24 * time.Hour)

	// admin 請求 sweep，受理後由 worker 非同步執行
	w = httptest.NewRecorder()
	router.ServeHTTP(w, createHTTPRequest("POST", "/api/v1/events/ev-sweep/sweep", "admin", nil))
	require.Equal(t, http.StatusAccepted, w.Code)

	// 輪詢權威統計直到 100 張未核銷的全被銷毀
	var stats model.EventStats
	for i := 0; i < 30; i++ {
		time.Sleep(100 * time.Millisecond)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, createHTTPRequest("GET", "/api/v1/events/ev-sweep/stats", "", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		if stats.TotalBurned == 100 {
			break
		}
	}
	assert.Equal(t, 120, stats.TotalMinted)
	assert.Equal(t, 20, stats.TotalClaimed)
	assert.Equal(t, 100, stats.TotalBurned)
	assert.Equal(t, 20, stats.LiveSupply)
}

// TestLedger_Integration_ConcurrentMint 測試高併發搶鑄場景
func TestLedger_Integration_ConcurrentMint(t *testing.T) {
	router, _, cleanup := setupIntegrationTest(t, clock.NewSystem())
	defer cleanup()

	createReq := model.CreateEventRequest{EventID: "ev-rush", Capacity: 10, Organizer: "org-a"}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, createHTTPRequest("POST", "/api/v1/events", "org-a", createReq))
	require.Equal(t, http.StatusCreated, w.Code)

	// 併發發送 30 個請求（超過容量）
	var wg sync.WaitGroup
	successCount := 0
	conflictCount := 0
	var mu sync.Mutex

	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := createHTTPRequest("POST", "/api/v1/events/ev-rush/entries", "org-a", model.MintEntryRequest{Attendee: "guest"})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			mu.Lock()
			if w.Code == http.StatusCreated {
				successCount++
			}
			if w.Code == http.StatusConflict {
				conflictCount++
			}
			mu.Unlock()
		}()
	}

	wg.Wait()

	// 只有 10 個請求成功（容量只有 10）
	assert.Equal(t, 10, successCount, "應該只有 10 個請求成功")
	assert.Equal(t, 20, conflictCount, "超過容量的請求應該回 409")

	// 權威統計與容量一致
	w = httptest.NewRecorder()
	router.ServeHTTP(w, createHTTPRequest("GET", "/api/v1/events/ev-rush/stats", "", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var stats model.EventStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 10, stats.TotalMinted)
}

// TestLedger_Integration_TokenLifecycle 測試代幣帳本：建檔、配額鑄造防重、統計
func TestLedger_Integration_TokenLifecycle(t *testing.T) {
	clk := clock.NewFixed(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	router, _, cleanup := setupIntegrationTest(t, clk)
	defer cleanup()

	createReq := model.CreateEventRequest{EventID: "ev-token", Capacity: 50, Organizer: "org-a"}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, createHTTPRequest("POST", "/api/v1/events", "org-a", createReq))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, createHTTPRequest("POST", "/api/v1/tokens", "org-a", model.CreateTokenRequest{EventID: "ev-token", EventName: "Vibe Party 2026"}))
	require.Equal(t, http.StatusCreated, w.Code)

	var ledger model.TokenLedger
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ledger))
	assert.Equal(t, "VIBEPARTY2026", ledger.Symbol)

	// 同一參加者只能領一次
	w = httptest.NewRecorder()
	router.ServeHTTP(w, createHTTPRequest("POST", "/api/v1/tokens/ev-token/mint", "org-a", model.MintTokensRequest{Attendee: "alice", Amount: 100}))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, createHTTPRequest("POST", "/api/v1/tokens/ev-token/mint", "org-a", model.MintTokensRequest{Attendee: "alice", Amount: 100}))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, createHTTPRequest("GET", "/api/v1/tokens/ev-token/stats", "", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var stats model.TokenStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(100), stats.TotalMinted)
	assert.Equal(t, int64(100), stats.ScarcityRatio)
}
