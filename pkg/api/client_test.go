package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gymbuddy/gymbuddy/internal/apitest"
	"github.com/gymbuddy/gymbuddy/pkg/api"
	"github.com/gymbuddy/gymbuddy/pkg/contract"
	"github.com/gymbuddy/gymbuddy/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contractTransport runs every round trip through the OpenAPI contract
// validator, so a client change that drifts from the documented wire
// shapes fails these tests even when the stub server tolerates it.
type contractTransport struct {
	t    *testing.T
	v    *contract.Validator
	next http.RoundTripper
}

func (ct *contractTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := context.Background()

	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		require.NoError(ct.t, err)
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	check := req.Clone(ctx)
	check.Body = io.NopCloser(bytes.NewReader(body))
	require.NoError(ct.t, ct.v.ValidateRequest(ctx, check))

	resp, err := ct.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(ct.t, err)
	resp.Body.Close()
	require.NoError(ct.t, ct.v.ValidateResponse(ctx, check, resp.StatusCode, resp.Header, respBody))

	resp.Body = io.NopCloser(bytes.NewReader(respBody))
	return resp, nil
}

func newClient(t *testing.T, coach *apitest.CoachServer) (*api.Client, func()) {
	t.Helper()
	srv := httptest.NewServer(coach.Handler())

	v, err := contract.NewValidator(context.Background())
	require.NoError(t, err)

	hc := &http.Client{Transport: &contractTransport{t: t, v: v, next: http.DefaultTransport}}
	return api.NewClient(srv.URL, api.WithHTTPClient(hc)), srv.Close
}

func TestFetchProfile(t *testing.T) {
	coach := apitest.NewCoachServer()
	client, stop := newClient(t, coach)
	defer stop()

	t.Run("no stored profile", func(t *testing.T) {
		lookup, err := client.FetchProfile(context.Background())
		require.NoError(t, err)
		assert.False(t, lookup.OK)
		assert.Nil(t, lookup.Profile)
	})

	t.Run("stored profile decodes", func(t *testing.T) {
		coach.SetBodies(`{"ok":true,"profile":{"weight_kg":70,"height_cm":175,"age":25,`+
			`"gender":"male","main_goal":"hypertrophy","experience":"beginner",`+
			`"days_per_week":4,"minutes_per_workout":60,"injuries_yes_no":false,`+
			`"injuries_details":""},"profile_summary":"70kg, 175cm, age 25"}`, "", "")

		lookup, err := client.FetchProfile(context.Background())
		require.NoError(t, err)
		require.True(t, lookup.OK)
		require.NotNil(t, lookup.Profile)
		assert.Equal(t, 70, lookup.Profile.WeightKg)
		assert.Equal(t, "hypertrophy", lookup.Profile.MainGoal)
		assert.Equal(t, "70kg, 175cm, age 25", lookup.Summary)
	})
}

func TestSubmitOnboarding(t *testing.T) {
	coach := apitest.NewCoachServer()
	client, stop := newClient(t, coach)
	defer stop()

	payload := domain.Profile{
		WeightKg: 70, HeightCm: 175, Age: 25,
		Gender: "male", MainGoal: "hypertrophy", Experience: "beginner",
		DaysPerWeek: 4, MinutesPerWorkout: 60,
	}

	t.Run("success returns summary", func(t *testing.T) {
		coach.SetBodies("", `{"ok":true,"profile_summary":"4x/week hypertrophy plan"}`, "")

		summary, err := client.SubmitOnboarding(context.Background(), payload)
		require.NoError(t, err)
		assert.Equal(t, "4x/week hypertrophy plan", summary)

		require.NotEmpty(t, coach.OnboardingRequests)
		sent := coach.OnboardingRequests[len(coach.OnboardingRequests)-1]
		assert.EqualValues(t, 70, sent["weight_kg"])
		assert.Equal(t, "male", sent["gender"])
		assert.Equal(t, false, sent["injuries_yes_no"])
	})

	t.Run("rejection surfaces verbatim error", func(t *testing.T) {
		coach.SetBodies("", `{"ok":false,"error":"Age is required"}`, "")

		_, err := client.SubmitOnboarding(context.Background(), payload)
		se := domain.AsServerError(err)
		require.NotNil(t, se)
		assert.Equal(t, "Age is required", se.Message)
	})
}

func TestSendChat(t *testing.T) {
	coach := apitest.NewCoachServer()
	client, stop := newClient(t, coach)
	defer stop()

	t.Run("round trip", func(t *testing.T) {
		coach.SetBodies("", "", `{"ok":true,"reply":"Hi there"}`)

		reply, err := client.SendChat(context.Background(), "hello")
		require.NoError(t, err)
		assert.Equal(t, "Hi there", reply)
		assert.Equal(t, []string{"hello"}, coach.ChatMessages)
	})

	t.Run("server failure", func(t *testing.T) {
		coach.SetBodies("", "", `{"ok":false,"error":"Message is required."}`)

		_, err := client.SendChat(context.Background(), "hello")
		se := domain.AsServerError(err)
		require.NotNil(t, se)
		assert.Equal(t, "Message is required.", se.Message)
	})
}

func TestTransportFailurePropagates(t *testing.T) {
	// Point at a closed server: the round trip never completes and the
	// error is not a ServerError.
	srv := httptest.NewServer(apitest.NewCoachServer().Handler())
	url := srv.URL
	srv.Close()

	client := api.NewClient(url)

	_, err := client.SendChat(context.Background(), "hello")
	require.Error(t, err)
	assert.Nil(t, domain.AsServerError(err))

	var se *domain.ServerError
	assert.False(t, errors.As(err, &se))
}
