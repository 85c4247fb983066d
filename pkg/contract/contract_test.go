package contract_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/gymbuddy/gymbuddy/pkg/api"
	"github.com/gymbuddy/gymbuddy/pkg/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContract_LoadsAndValidates(t *testing.T) {
	doc, err := contract.Load(context.Background())
	require.NoError(t, err)

	for _, path := range []string{api.PathProfile, api.PathOnboarding, api.PathChat} {
		assert.NotNil(t, doc.Paths.Find(path), "missing path %s", path)
	}
}

func TestValidator_ChatRequest(t *testing.T) {
	v, err := contract.NewValidator(context.Background())
	require.NoError(t, err)

	t.Run("valid message", func(t *testing.T) {
		req := postJSON(t, api.PathChat, `{"message":"hello"}`)
		assert.NoError(t, v.ValidateRequest(context.Background(), req))
	})

	t.Run("missing message field", func(t *testing.T) {
		req := postJSON(t, api.PathChat, `{}`)
		assert.Error(t, v.ValidateRequest(context.Background(), req))
	})
}

func TestValidator_OnboardingRequest(t *testing.T) {
	v, err := contract.NewValidator(context.Background())
	require.NoError(t, err)

	full := `{"weight_kg":70,"height_cm":175,"age":25,"gender":"male",` +
		`"main_goal":"hypertrophy","experience":"beginner","days_per_week":4,` +
		`"minutes_per_workout":60,"injuries_yes_no":false,"injuries_details":""}`

	req := postJSON(t, api.PathOnboarding, full)
	assert.NoError(t, v.ValidateRequest(context.Background(), req))

	partial := postJSON(t, api.PathOnboarding, `{"weight_kg":70}`)
	assert.Error(t, v.ValidateRequest(context.Background(), partial))
}

func TestValidator_ProfileResponse(t *testing.T) {
	v, err := contract.NewValidator(context.Background())
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "http://coach.local"+api.PathProfile, nil)
	require.NoError(t, err)

	header := http.Header{"Content-Type": []string{"application/json"}}

	ok := []byte(`{"ok":true,"profile":{},"profile_summary":"5x/week hypertrophy plan"}`)
	assert.NoError(t, v.ValidateResponse(context.Background(), req, 200, header, ok))

	empty := []byte(`{"ok":false}`)
	assert.NoError(t, v.ValidateResponse(context.Background(), req, 200, header, empty))

	malformed := []byte(`{"profile_summary":12}`)
	assert.Error(t, v.ValidateResponse(context.Background(), req, 200, header, malformed))
}

func postJSON(t *testing.T, path, body string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "http://coach.local"+path, bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}
