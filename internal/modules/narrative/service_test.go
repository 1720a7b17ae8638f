package narrative

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/investment-advisor/internal/clients/openrouter"
	"github.com/aristath/investment-advisor/internal/domain"
	"github.com/aristath/investment-advisor/internal/modules/allocation"
	"github.com/aristath/investment-advisor/internal/modules/comparison"
	"github.com/aristath/investment-advisor/internal/modules/projection"
)

// stubCompleter returns a canned response or error
type stubCompleter struct {
	text    string
	err     error
	calls   int
	lastSys string
	lastUsr string
}

func (s *stubCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.calls++
	s.lastSys = systemPrompt
	s.lastUsr = userPrompt
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func fixtures(t *testing.T) (*domain.FinancialProfile, *allocation.Plan, *projection.Result, *comparison.Result) {
	t.Helper()

	profile := &domain.FinancialProfile{
		Age:                 30,
		AnnualIncome:        100000,
		HorizonYears:        10,
		MonthlyContribution: 5000,
		CurrentSavings:      50000,
		Goal:                "Wealth Creation",
		RiskTier:            domain.RiskMedium,
	}

	plan, err := allocation.NewService(zerolog.Nop()).PlanFor(domain.RiskMedium)
	require.NoError(t, err)

	engine := projection.NewService(zerolog.Nop())
	proj, err := engine.Project(profile, plan.ExpectedAnnualReturn)
	require.NoError(t, err)

	comp, err := comparison.NewService(engine, zerolog.Nop()).Project(profile)
	require.NoError(t, err)

	return profile, plan, proj, comp
}

func TestAdvise_Success(t *testing.T) {
	profile, plan, proj, comp := fixtures(t)
	stub := &stubCompleter{text: "A thorough advisor note."}
	service := NewService(stub, zerolog.Nop())

	note := service.Advise(context.Background(), profile, plan, proj, comp)

	assert.Equal(t, "A thorough advisor note.", note.Text)
	assert.Equal(t, SourceLLM, note.Source)
	assert.Empty(t, note.Warning)
	assert.Equal(t, 1, stub.calls)
	assert.Contains(t, stub.lastSys, "fiduciary financial advisor")
}

func TestAdvise_ExternalFailureFallsBack(t *testing.T) {
	profile, plan, proj, comp := fixtures(t)
	stub := &stubCompleter{err: fmt.Errorf("status 503")}
	service := NewService(stub, zerolog.Nop())

	note := service.Advise(context.Background(), profile, plan, proj, comp)

	assert.Equal(t, FallbackNote(profile, plan), note.Text)
	assert.Equal(t, SourceFallback, note.Source)
	assert.NotEmpty(t, note.Warning)
}

func TestAdvise_Non2xxEndpointFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := openrouter.NewClient(openrouter.Config{
		URL:     srv.URL,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: time.Second,
	}, zerolog.Nop())

	profile, plan, proj, comp := fixtures(t)
	service := NewService(client, zerolog.Nop())

	note := service.Advise(context.Background(), profile, plan, proj, comp)

	assert.Equal(t, FallbackNote(profile, plan), note.Text)
	assert.Equal(t, SourceFallback, note.Source)
	assert.NotEmpty(t, note.Warning)
}

func TestAdvise_MissingCredentialFallsBack(t *testing.T) {
	profile, plan, proj, comp := fixtures(t)
	service := NewService(nil, zerolog.Nop())

	note := service.Advise(context.Background(), profile, plan, proj, comp)

	assert.Equal(t, FallbackNote(profile, plan), note.Text)
	assert.Equal(t, SourceFallback, note.Source)
	assert.Contains(t, note.Warning, "credential")
}

func TestBuildPrompt_EmbedsSalientFigures(t *testing.T) {
	profile, plan, proj, comp := fixtures(t)

	prompt, err := BuildPrompt(profile, plan, proj, comp)
	require.NoError(t, err)

	assert.Contains(t, prompt, `"age":30`)
	assert.Contains(t, prompt, `"horizon_years":10`)
	assert.Contains(t, prompt, `"top_goal":"Wealth Creation"`)
	assert.Contains(t, prompt, `"risk_tier":"Medium"`)
	assert.Contains(t, prompt, `"nominal_future_value":`+strconv.FormatFloat(proj.NominalFutureValue, 'f', -1, 64))
	assert.Contains(t, prompt, `"real_future_value":`+strconv.FormatFloat(proj.RealFutureValue, 'f', -1, 64))
	assert.Contains(t, prompt, `"fd_future_value":`+strconv.FormatFloat(comp.NominalFutureValue, 'f', -1, 64))
	assert.Contains(t, prompt, `"Equity":50`)
	assert.Contains(t, prompt, "plain text")
}

func TestFallbackNote_Deterministic(t *testing.T) {
	profile, plan, _, _ := fixtures(t)

	want := "Based on your age (30), monthly investment of roughly 5000, " +
		"current savings of about 50000, and a 10-year horizon, " +
		"this preview assumes a medium risk profile with an expected CAGR " +
		"of around 9.3% per year. Use this purely as research, not as a guarantee."

	assert.Equal(t, want, FallbackNote(profile, plan))
	assert.Equal(t, FallbackNote(profile, plan), FallbackNote(profile, plan))
	assert.True(t, strings.Contains(FallbackNote(profile, plan), "not as a guarantee"))
}
