package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/fifahub/liga-tracker/internal/infrastructure/repository/memory"
	"github.com/fifahub/liga-tracker/internal/platform/logging"
	"github.com/fifahub/liga-tracker/internal/usecase"
)

const testAdminToken = "test-admin-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	matchRepo := memory.NewMatchRepository()
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	banRepo := memory.NewBanRepository()
	financeRepo := memory.NewFinanceRepository()
	motmRepo := memory.NewMotmRepository()
	logger := logging.NewNop()

	settlementService := usecase.NewSettlementService(
		matchRepo, playerRepo, banRepo, financeRepo, motmRepo,
		nil, nil, logger,
	)
	handler := NewHandler(
		usecase.NewMatchService(matchRepo),
		settlementService,
		usecase.NewPlayerService(playerRepo, financeRepo),
		usecase.NewBanService(banRepo, playerRepo),
		usecase.NewFinanceService(financeRepo),
		usecase.NewStatsService(matchRepo, playerRepo, motmRepo, time.Minute),
		usecase.NewAuditService(matchRepo, playerRepo, financeRepo, motmRepo),
		logger,
	)
	return NewRouter(handler, logger, []string{"*"}, testAdminToken)
}

func settleBody() string {
	return `{
		"date": "2026-03-07",
		"scoreAek": 3,
		"scoreReal": 1,
		"scorersAek": [{"player": "Pavlidis", "goals": 2}, {"player": "Szymanski", "goals": 1}],
		"scorersReal": [{"player": "Vinicius", "goals": 1}],
		"yellowAek": 1,
		"yellowReal": 2,
		"redReal": 1,
		"manOfTheMatch": "Pavlidis"
	}`
}

func TestSettleMatchEndpoint_RoundTrip(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/matches", strings.NewReader(settleBody()))
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Data matchDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal settle response: %v", err)
	}
	if created.Data.ID == 0 {
		t.Fatalf("expected settled match to carry an id")
	}
	if created.Data.PrizeAEK != 930_000 || created.Data.PrizeReal != -740_000 {
		t.Fatalf("unexpected prizes: %+v", created.Data)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/v1/matches", nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, listReq)

	if listRec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", listRec.Code)
	}
	var listed struct {
		Data []matchDTO `json:"data"`
	}
	if err := sonic.Unmarshal(listRec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("unmarshal list response: %v", err)
	}
	if len(listed.Data) != 1 || listed.Data[0].ID != created.Data.ID {
		t.Fatalf("unexpected match list: %+v", listed.Data)
	}

	financeReq := httptest.NewRequest(http.MethodGet, "/v1/finances/AEK", nil)
	financeRec := httptest.NewRecorder()
	router.ServeHTTP(financeRec, financeReq)

	var financeResp struct {
		Data teamFinanceDTO `json:"data"`
	}
	if err := sonic.Unmarshal(financeRec.Body.Bytes(), &financeResp); err != nil {
		t.Fatalf("unmarshal finance response: %v", err)
	}
	if financeResp.Data.Balance != 1_030_000 {
		t.Fatalf("expected AEK balance 1030000 (prize plus bonus), got %d", financeResp.Data.Balance)
	}
}

func TestSettleMatchEndpoint_ManOfTheMatchOptional(t *testing.T) {
	router := newTestRouter(t)

	// No award named, and an untouched picker row left empty.
	body := `{
		"date": "2026-03-07",
		"scoreAek": 2,
		"scoreReal": 0,
		"scorersAek": [{"player": "Pavlidis", "goals": 2}, {"player": "", "goals": 0}],
		"scorersReal": [],
		"yellowAek": 1
	}`

	req := httptest.NewRequest(http.MethodPost, "/v1/matches", strings.NewReader(body))
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Data matchDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal settle response: %v", err)
	}
	if created.Data.ManOfTheMatch != "" {
		t.Fatalf("expected no award, got %q", created.Data.ManOfTheMatch)
	}
	if len(created.Data.ScorersAEK) != 1 || created.Data.ScorersAEK[0].Player != "Pavlidis" {
		t.Fatalf("empty scorer rows must be dropped: %+v", created.Data.ScorersAEK)
	}
}

func TestSettleMatchEndpoint_RequiresAdminToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/matches", strings.NewReader(settleBody()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestSettleMatchEndpoint_RejectsInvalidPayload(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/matches", strings.NewReader(`{"date": ""}`))
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetMatchEndpoint_NotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/matches/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
